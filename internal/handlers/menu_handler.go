package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lunjingjie/midway-base-framework/internal/auth"
	"github.com/lunjingjie/midway-base-framework/internal/models"
	"github.com/lunjingjie/midway-base-framework/internal/services"
	"github.com/lunjingjie/midway-base-framework/pkg/utils"
)

// MenuHandler 封装了菜单管理相关的 HTTP 处理逻辑
type MenuHandler struct {
	*BaseHandler[models.Menu]
	svc       *services.MenuService
	userRoles *services.UserRoleService
}

// NewMenuHandler 创建一个新的 MenuHandler 实例
func NewMenuHandler(svc *services.MenuService, userRoles *services.UserRoleService) *MenuHandler {
	return &MenuHandler{
		BaseHandler: NewBaseHandler[models.Menu](svc),
		svc:         svc,
		userRoles:   userRoles,
	}
}

// MenuPayload 定义了创建/更新菜单请求的 JSON 结构体
type MenuPayload struct {
	ParentID   *int64  `json:"parentId,omitempty" binding:"omitempty,min=0"`
	Name       string  `json:"name" binding:"required,max=50"`
	Path       *string `json:"path,omitempty" binding:"omitempty,max=200"`
	Component  *string `json:"component,omitempty" binding:"omitempty,max=200"`
	Icon       *string `json:"icon,omitempty" binding:"omitempty,max=50"`
	Sort       *int    `json:"sort,omitempty"`
	Type       *int    `json:"type,omitempty" binding:"omitempty,oneof=0 1 2"`
	Permission *string `json:"permission,omitempty" binding:"omitempty,max=100"`
	Status     *int    `json:"status,omitempty" binding:"omitempty,oneof=0 1"`
}

// UpdateMenuPayload 定义了更新菜单请求的 JSON 结构体，全部字段可选。
// 状态变更走独立的 change-status 端点，不参与字段合并。
type UpdateMenuPayload struct {
	ParentID   *int64  `json:"parentId,omitempty" binding:"omitempty,min=0"`
	Name       *string `json:"name,omitempty" binding:"omitempty,max=50"`
	Path       *string `json:"path,omitempty" binding:"omitempty,max=200"`
	Component  *string `json:"component,omitempty" binding:"omitempty,max=200"`
	Icon       *string `json:"icon,omitempty" binding:"omitempty,max=50"`
	Sort       *int    `json:"sort,omitempty"`
	Type       *int    `json:"type,omitempty" binding:"omitempty,oneof=0 1 2"`
	Permission *string `json:"permission,omitempty" binding:"omitempty,max=100"`
}

// toUpdates 将更新请求体转换为按列名的更新集合。
// 只收集请求中实际携带的字段，显式携带的零值
// （如 parentId=0 将菜单移到根节点）同样参与更新。
func (p *UpdateMenuPayload) toUpdates() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.ParentID != nil {
		fields["parent_id"] = *p.ParentID
	}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Path != nil {
		fields["path"] = *p.Path
	}
	if p.Component != nil {
		fields["component"] = *p.Component
	}
	if p.Icon != nil {
		fields["icon"] = *p.Icon
	}
	if p.Sort != nil {
		fields["sort"] = *p.Sort
	}
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	if p.Permission != nil {
		fields["permission"] = *p.Permission
	}
	return fields
}

// toModel 将请求体转换为菜单模型，未提供的字段取默认值
func (p *MenuPayload) toModel() *models.Menu {
	menu := &models.Menu{
		Name:       p.Name,
		Path:       p.Path,
		Component:  p.Component,
		Icon:       p.Icon,
		Permission: p.Permission,
		Type:       models.MenuTypeItem,
		Status:     models.MenuStatusEnabled,
	}
	if p.ParentID != nil {
		menu.ParentID = *p.ParentID
	}
	if p.Sort != nil {
		menu.Sort = *p.Sort
	}
	if p.Type != nil {
		menu.Type = *p.Type
	}
	if p.Status != nil {
		menu.Status = *p.Status
	}
	return menu
}

// Create godoc
// @Summary 创建菜单
// @Tags Menu
// @Accept json
// @Produce json
// @Param menu body MenuPayload true "菜单信息"
// @Success 200 {object} utils.Response{data=models.Menu}
// @Router /menu/create [post]
// @Security BearerAuth
func (h *MenuHandler) Create(c *gin.Context) {
	var payload MenuPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	created, err := h.svc.BaseService.Create(payload.toModel())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, utils.MsgCreated)
}

// CreateMany godoc
// @Summary 批量创建菜单
// @Description 整批在一个事务中创建，任一条失败则全部回滚
// @Tags Menu
// @Accept json
// @Produce json
// @Param menus body []MenuPayload true "菜单列表"
// @Success 200 {object} utils.Response{data=[]models.Menu}
// @Router /menu/create-many [post]
// @Security BearerAuth
func (h *MenuHandler) CreateMany(c *gin.Context) {
	var payloads []MenuPayload
	if err := c.ShouldBindJSON(&payloads); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if len(payloads) == 0 {
		utils.RespondValidationError(c, "菜单列表不能为空")
		return
	}
	menus := make([]*models.Menu, 0, len(payloads))
	for i := range payloads {
		menus = append(menus, payloads[i].toModel())
	}
	created, err := h.svc.CreateMany(menus)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, created, utils.MsgCreated)
}

// Update godoc
// @Summary 更新菜单
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path int true "菜单ID"
// @Param menu body UpdateMenuPayload true "更新内容"
// @Success 200 {object} utils.Response{data=models.Menu}
// @Failure 404 {object} utils.Response "菜单不存在"
// @Router /menu/update/{id} [put]
// @Security BearerAuth
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var payload UpdateMenuPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	updated, err := h.svc.UpdateFields(id, payload.toUpdates())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, utils.MsgUpdated)
}

// ChangeStatus godoc
// @Summary 修改菜单状态
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path int true "菜单ID"
// @Param status body ChangeStatusPayload true "状态 (0禁用 1启用)"
// @Success 200 {object} utils.Response{data=models.Menu}
// @Router /menu/change-status/{id} [post]
// @Security BearerAuth
func (h *MenuHandler) ChangeStatus(c *gin.Context) {
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

// Tree godoc
// @Summary 获取完整菜单树
// @Tags Menu
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.MenuTreeNode}
// @Router /menu/tree [get]
// @Security BearerAuth
func (h *MenuHandler) Tree(c *gin.Context) {
	tree, err := h.svc.GetMenuTree()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tree)
}

// UserTree godoc
// @Summary 获取当前用户可见的菜单树
// @Description 按认证身份解析用户角色，返回其可见菜单组成的树
// @Tags Menu
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.MenuTreeNode}
// @Failure 401 {object} utils.Response "未认证"
// @Router /menu/user-tree [get]
// @Security BearerAuth
func (h *MenuHandler) UserTree(c *gin.Context) {
	identity, ok := auth.CurrentUser(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}
	roleIDs, err := h.userRoles.GetRoleIdsByUserId(identity.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	tree, err := h.svc.GetMenuTreeByRoleIds(roleIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tree)
}

// RoleIds godoc
// @Summary 获取菜单关联的角色ID列表
// @Tags Menu
// @Produce json
// @Param id path int true "菜单ID"
// @Success 200 {object} utils.Response{data=[]int64}
// @Router /menu/role-ids/{id} [get]
// @Security BearerAuth
func (h *MenuHandler) RoleIds(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	roleIDs, err := h.svc.GetMenuRoleIds(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, roleIDs)
}
