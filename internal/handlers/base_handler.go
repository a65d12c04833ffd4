package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lunjingjie/midway-base-framework/internal/models"
	"github.com/lunjingjie/midway-base-framework/internal/services"
	"github.com/lunjingjie/midway-base-framework/pkg/utils"
)

// CrudService 是 BaseHandler 对实体服务的依赖。
// 各实体服务组合 BaseService 即满足此接口；覆盖了删除级联的服务
// （如用户、角色）以自己的实现参与，级联逻辑对处理器透明。
type CrudService[T models.Entity] interface {
	FindByID(id int64, withDeleted bool) (*T, error)
	FindAll(filter services.Filter, withDeleted bool) ([]T, error)
	FindByPage(page, pageSize int, filter services.Filter, withDeleted bool) (*services.PageResult[T], error)
	Count(filter services.Filter, withDeleted bool) (int64, error)
	Delete(id int64) error
	DeleteMany(ids []int64) error
	Restore(id int64) error
	RestoreMany(ids []int64) error
}

// BaseHandler 提供实体通用的 HTTP 处理逻辑：
// 详情、列表、分页、计数、软删除、批量删除、恢复、批量恢复。
// 实体处理器组合 BaseHandler 并补充各自的创建/更新等端点。
type BaseHandler[T models.Entity] struct {
	svc CrudService[T]
}

// NewBaseHandler 创建一个绑定到指定实体服务的 BaseHandler
func NewBaseHandler[T models.Entity](svc CrudService[T]) *BaseHandler[T] {
	return &BaseHandler[T]{svc: svc}
}

// Detail 根据ID查询单条记录，withDeleted=true 时包含已删除记录
func (h *BaseHandler[T]) Detail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	entity, err := h.svc.FindByID(id, parseWithDeleted(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entity)
}

// List 查询全部记录
func (h *BaseHandler[T]) List(c *gin.Context) {
	entities, err := h.svc.FindAll(nil, parseWithDeleted(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entities)
}

// Page 分页查询
func (h *BaseHandler[T]) Page(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	result, err := h.svc.FindByPage(page, pageSize, nil, parseWithDeleted(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result)
}

// Count 统计记录总数
func (h *BaseHandler[T]) Count(c *gin.Context) {
	total, err := h.svc.Count(nil, parseWithDeleted(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, total)
}

// Delete 软删除单条记录
func (h *BaseHandler[T]) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, true, utils.MsgDeleted)
}

// DeleteMany 批量软删除。未命中存活记录的ID被忽略，全部未命中返回404。
func (h *BaseHandler[T]) DeleteMany(c *gin.Context) {
	var payload IDsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.svc.DeleteMany(payload.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, true, utils.MsgDeleted)
}

// Restore 恢复单条已软删除的记录
func (h *BaseHandler[T]) Restore(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Restore(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, true, utils.MsgRestored)
}

// RestoreMany 批量恢复，容错策略与 DeleteMany 相同
func (h *BaseHandler[T]) RestoreMany(c *gin.Context) {
	var payload IDsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.svc.RestoreMany(payload.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, true, utils.MsgRestored)
}

// RegisterCrudRoutes 在路由组上注册通用CRUD端点
func (h *BaseHandler[T]) RegisterCrudRoutes(rg *gin.RouterGroup) {
	rg.GET("/detail/:id", h.Detail)
	rg.GET("/list", h.List)
	rg.GET("/page", h.Page)
	rg.GET("/count", h.Count)
	rg.POST("/delete/:id", h.Delete)
	rg.POST("/delete-many", h.DeleteMany)
	rg.PATCH("/restore/:id", h.Restore)
	rg.PATCH("/restore-many", h.RestoreMany)
}
