package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lunjingjie/midway-base-framework/pkg/utils"
)

// Gin 上下文中身份信息的键
const (
	ContextUserIDKey   = "userID"
	ContextUsernameKey = "username"
)

// Identity 是认证通过后附加到请求上下文的身份信息
type Identity struct {
	UserID   int64
	Username string
}

// JWTAuthMiddleware 是认证网关中间件。
// 先查免认证路由表：命中则不触碰凭证直接放行；
// 否则从 Authorization 请求头提取 Bearer Token 并验证，
// 验证通过后将身份信息写入 Gin 上下文供后续处理程序使用。
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsSkipped(c.Request.Method, c.FullPath()) {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondUnauthorizedError(c, "未授权")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.RespondUnauthorizedError(c, "无效的token格式，应为 Bearer {token}")
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			// 使用 errors.Is 来判断特定的JWT错误类型
			switch {
			case errors.Is(err, jwt.ErrTokenMalformed):
				utils.RespondUnauthorizedError(c, "token格式不正确")
			case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
				utils.RespondUnauthorizedError(c, "token已过期或尚未生效")
			case errors.Is(err, jwt.ErrTokenSignatureInvalid):
				utils.RespondUnauthorizedError(c, "token签名无效")
			default:
				utils.RespondUnauthorizedError(c, "无效的token")
			}
			return
		}

		// 将身份信息存储在Gin上下文中，以便后续处理程序使用
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)

		c.Next()
	}
}

// CurrentUser 从 Gin 上下文读取认证身份。
// 在非免认证路由上取不到身份说明中间件没有生效，属于编程错误。
func CurrentUser(c *gin.Context) (Identity, bool) {
	userIDVal, ok := c.Get(ContextUserIDKey)
	if !ok {
		return Identity{}, false
	}
	userID, ok := userIDVal.(int64)
	if !ok {
		return Identity{}, false
	}
	username := c.GetString(ContextUsernameKey)
	return Identity{UserID: userID, Username: username}, true
}
