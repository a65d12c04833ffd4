package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// 响应码，与 HTTP 状态码保持一致
const (
	CodeSuccess       = 200
	CodeBadRequest    = 400
	CodeUnauthorized  = 401
	CodeForbidden     = 403
	CodeNotFound      = 404
	CodeConflict      = 409
	CodeInternalError = 500
)

// Response 定义了统一的响应结构 {code, data, message}
type Response struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// Message 是一条中英双语的响应消息，按请求的 Accept-Language 选择语言
type Message struct {
	Zh string
	En string
}

var (
	MsgSuccess  = Message{Zh: "操作成功", En: "Operation successful"}
	MsgCreated  = Message{Zh: "创建成功", En: "Created successfully"}
	MsgUpdated  = Message{Zh: "更新成功", En: "Updated successfully"}
	MsgDeleted  = Message{Zh: "删除成功", En: "Deleted successfully"}
	MsgRestored = Message{Zh: "恢复成功", En: "Restored successfully"}
)

// 支持的响应语言，中文为默认语言
var langMatcher = language.NewMatcher([]language.Tag{
	language.Chinese,
	language.English,
})

// pickMessage 根据请求头 Accept-Language 选择消息语言
func pickMessage(c *gin.Context, m Message) string {
	tags, _, err := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return m.Zh
	}
	_, index, _ := langMatcher.Match(tags...)
	if index == 1 && m.En != "" {
		return m.En
	}
	return m.Zh
}

// RespondSuccess 发送统一格式的成功响应
func RespondSuccess(c *gin.Context, data interface{}, message ...Message) {
	msg := MsgSuccess
	if len(message) > 0 {
		msg = message[0]
	}
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Data:    data,
		Message: pickMessage(c, msg),
	})
}

// RespondError 发送统一格式的错误响应，code 同时作为 HTTP 状态码
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Data:    nil,
		Message: message,
	})
}

// RespondAbortError 发送错误响应并中断后续处理（用于中间件）
func RespondAbortError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{
		Code:    code,
		Data:    nil,
		Message: message,
	})
}

// RespondValidationError 发送请求参数校验失败的响应
func RespondValidationError(c *gin.Context, message string) {
	if message == "" {
		message = "请求参数错误"
	}
	RespondError(c, CodeBadRequest, message)
}

// RespondUnauthorizedError 发送未授权错误并中断请求
func RespondUnauthorizedError(c *gin.Context, message ...string) {
	errMsg := "未授权"
	if len(message) > 0 && message[0] != "" {
		errMsg = message[0]
	}
	RespondAbortError(c, CodeUnauthorized, errMsg)
}

// RespondNotFoundError 发送资源未找到错误
func RespondNotFoundError(c *gin.Context, message string) {
	if message == "" {
		message = "未找到指定记录"
	}
	RespondError(c, CodeNotFound, message)
}

// RespondConflictError 发送冲突错误 (例如，资源已存在)
func RespondConflictError(c *gin.Context, message string) {
	RespondError(c, CodeConflict, message)
}

// RespondInternalServerError 发送服务器内部错误
func RespondInternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "服务器内部错误"
	}
	RespondError(c, CodeInternalError, message)
}
