package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lunjingjie/midway-base-framework/internal/models"
	"github.com/lunjingjie/midway-base-framework/internal/services"
	"github.com/lunjingjie/midway-base-framework/pkg/utils"
)

// RoleHandler 封装了角色管理相关的 HTTP 处理逻辑
type RoleHandler struct {
	*BaseHandler[models.Role]
	svc *services.RoleService
}

// NewRoleHandler 创建一个新的 RoleHandler 实例
func NewRoleHandler(svc *services.RoleService) *RoleHandler {
	return &RoleHandler{
		BaseHandler: NewBaseHandler[models.Role](svc),
		svc:         svc,
	}
}

// CreateRolePayload 定义了创建角色请求的 JSON 结构体
type CreateRolePayload struct {
	Name        string  `json:"name" binding:"required,max=50"`
	Code        string  `json:"code" binding:"required,max=50"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=200"`
	Status      *int    `json:"status,omitempty" binding:"omitempty,oneof=0 1"`
	MenuIds     []int64 `json:"menuIds,omitempty"`
}

// UpdateRolePayload 定义了更新角色请求的 JSON 结构体
type UpdateRolePayload struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=50"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=200"`
	MenuIds     []int64 `json:"menuIds,omitempty"`
}

// AssignMenusPayload 定义了为角色分配菜单请求的 JSON 结构体
type AssignMenusPayload struct {
	MenuIds []int64 `json:"menuIds" binding:"required"`
}

// Create godoc
// @Summary 创建角色
// @Description 创建角色，编码需唯一；可同时授权菜单
// @Tags Role
// @Accept json
// @Produce json
// @Param role body CreateRolePayload true "角色信息"
// @Success 200 {object} utils.Response{data=models.Role} "创建成功的角色"
// @Failure 409 {object} utils.Response "角色编码已存在"
// @Router /role/create [post]
// @Security BearerAuth
func (h *RoleHandler) Create(c *gin.Context) {
	var payload CreateRolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	status := models.RoleStatusEnabled
	if payload.Status != nil {
		status = *payload.Status
	}
	role := &models.Role{
		Name:        payload.Name,
		Code:        payload.Code,
		Description: payload.Description,
		Status:      status,
	}

	created, err := h.svc.Create(role, payload.MenuIds)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, utils.MsgCreated)
}

// Update godoc
// @Summary 更新角色
// @Description 按字段合并更新角色；menuIds 不为 null 时整体替换菜单授权
// @Tags Role
// @Accept json
// @Produce json
// @Param id path int true "角色ID"
// @Param role body UpdateRolePayload true "更新内容"
// @Success 200 {object} utils.Response{data=models.Role}
// @Failure 404 {object} utils.Response "角色不存在"
// @Router /role/update/{id} [put]
// @Security BearerAuth
func (h *RoleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload UpdateRolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	partial := &models.Role{Description: payload.Description}
	if payload.Name != nil {
		partial.Name = *payload.Name
	}

	updated, err := h.svc.Update(id, partial, payload.MenuIds)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, utils.MsgUpdated)
}

// ChangeStatus godoc
// @Summary 修改角色状态
// @Tags Role
// @Accept json
// @Produce json
// @Param id path int true "角色ID"
// @Param status body ChangeStatusPayload true "状态 (0禁用 1启用)"
// @Success 200 {object} utils.Response{data=models.Role}
// @Router /role/change-status/{id} [post]
// @Security BearerAuth
func (h *RoleHandler) ChangeStatus(c *gin.Context) {
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

// AssignMenus godoc
// @Summary 为角色分配菜单（整体替换）
// @Tags Role
// @Accept json
// @Produce json
// @Param id path int true "角色ID"
// @Param menus body AssignMenusPayload true "菜单ID列表"
// @Success 200 {object} utils.Response{data=bool}
// @Router /role/assign-menus/{id} [post]
// @Security BearerAuth
func (h *RoleHandler) AssignMenus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload AssignMenusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.svc.AssignMenus(id, payload.MenuIds); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, true, utils.MsgUpdated)
}

// MenuIds godoc
// @Summary 获取角色的菜单ID列表
// @Tags Role
// @Produce json
// @Param id path int true "角色ID"
// @Success 200 {object} utils.Response{data=[]int64}
// @Router /role/menu-ids/{id} [get]
// @Security BearerAuth
func (h *RoleHandler) MenuIds(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	menuIDs, err := h.svc.GetRoleMenuIds(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, menuIDs)
}

// UserIds godoc
// @Summary 获取角色下的用户ID列表
// @Tags Role
// @Produce json
// @Param id path int true "角色ID"
// @Success 200 {object} utils.Response{data=[]int64}
// @Router /role/user-ids/{id} [get]
// @Security BearerAuth
func (h *RoleHandler) UserIds(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	userIDs, err := h.svc.GetRoleUserIds(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, userIDs)
}
