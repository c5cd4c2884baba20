package response

import (
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestIDKey gin 上下文中请求 ID 的键
const RequestIDKey = "request_id"

// FieldError 单个字段的校验失败
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ErrorBody 统一错误响应结构
type ErrorBody struct {
	Message   string       `json:"message"`
	Errors    []FieldError `json:"errors,omitempty"`
	Redirect  string       `json:"redirect,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

// OK 200，直接输出数据本身
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应，status 即 HTTP 状态码
func Error(c *gin.Context, status int, msg string) {
	Abort(c, status, ErrorBody{Message: msg})
}

// ValidationError 400 并附带字段错误
func ValidationError(c *gin.Context, msg string, fields []FieldError) {
	Abort(c, http.StatusBadRequest, ErrorBody{Message: msg, Errors: fields})
}

// Abort 终止请求并输出错误体，自动补充 request_id
func Abort(c *gin.Context, status int, body ErrorBody) {
	if body.RequestID == "" {
		body.RequestID = requestID(c)
	}
	c.AbortWithStatusJSON(status, body)
}

// RedirectPage 以非 3xx 状态结束整页跳转：带 Location 头并输出 meta refresh 页面
func RedirectPage(c *gin.Context, status int, location string) {
	escaped := html.EscapeString(location)
	page := `<!DOCTYPE html><html><head><meta charset="utf-8">` +
		`<meta http-equiv="refresh" content="0;url=` + escaped + `"></head>` +
		`<body><a href="` + escaped + `">` + escaped + `</a></body></html>`
	c.Header("Location", location)
	c.Header("Cache-Control", "no-store")
	c.Data(status, "text/html; charset=utf-8", []byte(page))
	c.Abort()
}

// NotFound 404响应
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}

// Unauthorized 401响应
func Unauthorized(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, msg)
}

// Forbidden 403响应
func Forbidden(c *gin.Context, msg string) {
	Error(c, http.StatusForbidden, msg)
}

// BadRequest 400响应
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get(RequestIDKey); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
