package shared

import (
	"errors"

	"github.com/David-iadg/consult-ia/internal/http/response"
	"github.com/David-iadg/consult-ia/internal/i18n"
	"github.com/David-iadg/consult-ia/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get(response.RequestIDKey); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, status int, key string, err error) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	RespondErrorWithMsg(c, status, msg, err)
}

// RespondErrorWithMsg 返回自定义消息错误响应，并在有原始错误时记录日志。
func RespondErrorWithMsg(c *gin.Context, status int, msg string, err error) {
	appErr := response.WrapError(status, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"status", appErr.Status,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Status, appErr.Message)
}

// RespondBindError 请求体绑定失败：校验错误附带字段列表，其余按格式错误处理。
func RespondBindError(c *gin.Context, err error) {
	RespondBindErrorWithKey(c, err, "error.bad_request")
}

// RespondBindErrorWithKey 同 RespondBindError，使用指定的消息 key。
func RespondBindErrorWithKey(c *gin.Context, err error, key string) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]response.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, response.FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		response.ValidationError(c, msg, fields)
		return
	}
	RequestLog(c).Debugw("handler_bind_failed", "error", err)
	response.BadRequest(c, msg)
}
