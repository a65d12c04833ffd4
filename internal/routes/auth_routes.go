package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunjingjie/midway-base-framework/internal/auth"
	"github.com/lunjingjie/midway-base-framework/internal/handlers"
)

// SetupAuthRoutes 设置认证相关路由。
// 登录路由免认证，其余路由需要携带有效 Token。
func SetupAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth.SkipRoute(http.MethodPost, "/api/v1/auth/login")

	authGroup := rg.Group("/auth")
	{
		// POST /api/v1/auth/login
		authGroup.POST("/login", h.Login)
		// GET /api/v1/auth/current-user
		authGroup.GET("/current-user", h.CurrentUser)
	}
}
