package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lunjingjie/midway-base-framework/internal/auth"
	"github.com/lunjingjie/midway-base-framework/internal/services"
	"github.com/lunjingjie/midway-base-framework/pkg/utils"
)

// AuthHandler 封装了认证相关的 HTTP 处理逻辑
type AuthHandler struct {
	svc *services.AuthService
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// LoginPayload 定义了登录请求的 JSON 结构体
type LoginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 验证用户名密码并返回 JWT 与用户信息
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginPayload true "登录凭证"
// @Success 200 {object} utils.Response{data=services.LoginResult} "登录成功"
// @Failure 401 {object} utils.Response "用户名或密码错误"
// @Failure 403 {object} utils.Response "用户已被禁用"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	result, err := h.svc.Login(payload.Username, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, utils.Message{Zh: "登录成功", En: "Login successful"})
}

// CurrentUser godoc
// @Summary 获取当前登录用户信息
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Response{data=services.UserInfo}
// @Failure 401 {object} utils.Response "未认证"
// @Router /auth/current-user [get]
// @Security BearerAuth
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	identity, ok := auth.CurrentUser(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}
	info, err := h.svc.GetCurrentUser(identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, info)
}
