package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lunjingjie/midway-base-framework/internal/services"
	"github.com/lunjingjie/midway-base-framework/pkg/utils"
)

// IDsPayload 是批量删除/恢复请求的 JSON 结构体
type IDsPayload struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// ChangeStatusPayload 是修改状态请求的 JSON 结构体
type ChangeStatusPayload struct {
	Status *int `json:"status" binding:"required,oneof=0 1"`
}

// parseIDParam 解析路径参数中的记录ID
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondValidationError(c, "无效的记录ID")
		return 0, false
	}
	return id, true
}

// parseWithDeleted 解析 withDeleted 查询参数，缺省为 false
func parseWithDeleted(c *gin.Context) bool {
	return c.Query("withDeleted") == "true"
}

// parsePageQuery 解析分页查询参数，缺省 page=1、pageSize=10
func parsePageQuery(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return page, pageSize
}

// respondServiceError 将服务层错误映射为统一响应。
// 未被识别的错误一律按服务器内部错误处理，不向客户端泄露细节。
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRecordNotFound):
		utils.RespondNotFoundError(c, err.Error())
	case errors.Is(err, services.ErrUsernameExists),
		errors.Is(err, services.ErrRoleCodeExists),
		errors.Is(err, services.ErrRecordConflict):
		utils.RespondConflictError(c, err.Error())
	case errors.Is(err, services.ErrRecordNotDeleted),
		errors.Is(err, services.ErrCityIDRequired),
		errors.Is(err, utils.ErrInvalidEmailFormat),
		errors.Is(err, utils.ErrInvalidPhoneNumberFormat),
		errors.Is(err, utils.ErrInvalidPhoneNumberPrefix):
		utils.RespondError(c, utils.CodeBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondError(c, utils.CodeUnauthorized, err.Error())
	case errors.Is(err, services.ErrUserDisabled):
		utils.RespondError(c, utils.CodeForbidden, err.Error())
	default:
		utils.RespondInternalServerError(c, "服务器内部错误")
	}
}
