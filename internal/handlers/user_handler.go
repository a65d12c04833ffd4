package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lunjingjie/midway-base-framework/internal/models"
	"github.com/lunjingjie/midway-base-framework/internal/services"
	"github.com/lunjingjie/midway-base-framework/pkg/utils"
)

// UserHandler 封装了用户管理相关的 HTTP 处理逻辑
type UserHandler struct {
	*BaseHandler[models.User]
	svc *services.UserService
}

// NewUserHandler 创建一个新的 UserHandler 实例
func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler[models.User](svc),
		svc:         svc,
	}
}

// CreateUserPayload 定义了创建用户请求的 JSON 结构体
type CreateUserPayload struct {
	Username string  `json:"username" binding:"required,max=50"`
	Password string  `json:"password" binding:"required,min=6,max=64"`
	RealName *string `json:"realName,omitempty" binding:"omitempty,max=50"`
	Email    *string `json:"email,omitempty" binding:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Status   *int    `json:"status,omitempty" binding:"omitempty,oneof=0 1"`
	RoleIds  []int64 `json:"roleIds,omitempty"`
}

// UpdateUserPayload 定义了更新用户请求的 JSON 结构体，
// 省略的字段不参与更新；RoleIds 不为 null 时整体替换用户角色。
type UpdateUserPayload struct {
	Password *string `json:"password,omitempty" binding:"omitempty,min=6,max=64"`
	RealName *string `json:"realName,omitempty" binding:"omitempty,max=50"`
	Email    *string `json:"email,omitempty" binding:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	RoleIds  []int64 `json:"roleIds,omitempty"`
}

// AssignRolesPayload 定义了为用户分配角色请求的 JSON 结构体
type AssignRolesPayload struct {
	RoleIds []int64 `json:"roleIds" binding:"required"`
}

// Create godoc
// @Summary 创建用户
// @Description 创建用户，密码在服务端加密存储；可同时指定角色
// @Tags User
// @Accept json
// @Produce json
// @Param user body CreateUserPayload true "用户信息"
// @Success 200 {object} utils.Response{data=models.User} "创建成功的用户"
// @Failure 400 {object} utils.Response "请求参数错误"
// @Failure 409 {object} utils.Response "用户名已存在"
// @Router /user/create [post]
// @Security BearerAuth
func (h *UserHandler) Create(c *gin.Context) {
	var payload CreateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	status := models.UserStatusEnabled
	if payload.Status != nil {
		status = *payload.Status
	}
	user := &models.User{
		Username: payload.Username,
		Password: payload.Password,
		RealName: payload.RealName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Status:   status,
	}

	created, err := h.svc.Create(user, payload.RoleIds)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, utils.MsgCreated)
}

// Update godoc
// @Summary 更新用户
// @Description 按字段合并更新用户；携带密码时重新加密
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param user body UpdateUserPayload true "更新内容"
// @Success 200 {object} utils.Response{data=models.User} "更新后的用户"
// @Failure 404 {object} utils.Response "用户不存在"
// @Router /user/update/{id} [put]
// @Security BearerAuth
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload UpdateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	partial := &models.User{
		RealName: payload.RealName,
		Email:    payload.Email,
		Phone:    payload.Phone,
	}
	if payload.Password != nil {
		partial.Password = *payload.Password
	}

	updated, err := h.svc.Update(id, partial, payload.RoleIds)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, utils.MsgUpdated)
}

// ChangeStatus godoc
// @Summary 修改用户状态
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param status body ChangeStatusPayload true "状态 (0禁用 1启用)"
// @Success 200 {object} utils.Response{data=models.User}
// @Router /user/change-status/{id} [post]
// @Security BearerAuth
func (h *UserHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload ChangeStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	updated, err := h.svc.ChangeStatus(id, *payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, utils.MsgUpdated)
}

// AssignRoles godoc
// @Summary 为用户分配角色（整体替换）
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param roles body AssignRolesPayload true "角色ID列表"
// @Success 200 {object} utils.Response{data=bool}
// @Router /user/assign-roles/{id} [post]
// @Security BearerAuth
func (h *UserHandler) AssignRoles(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload AssignRolesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.svc.AssignRoles(id, payload.RoleIds); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, true, utils.MsgUpdated)
}

// RoleIds godoc
// @Summary 获取用户的角色ID列表
// @Tags User
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} utils.Response{data=[]int64}
// @Router /user/role-ids/{id} [get]
// @Security BearerAuth
func (h *UserHandler) RoleIds(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	roleIDs, err := h.svc.GetUserRoleIds(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, roleIDs)
}

// FindByUsername godoc
// @Summary 根据用户名查找用户
// @Tags User
// @Produce json
// @Param username query string true "用户名"
// @Success 200 {object} utils.Response{data=models.User}
// @Failure 404 {object} utils.Response "用户不存在"
// @Router /user/find-by-username [get]
// @Security BearerAuth
func (h *UserHandler) FindByUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		utils.RespondValidationError(c, "username不能为空")
		return
	}
	user, err := h.svc.FindByUsername(username)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user)
}
