package public

import (
	"errors"

	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, key string, err error) {
	handlershared.RespondError(c, status, key, err)
}

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	status int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackStatus int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.status, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackStatus, fallbackKey, err)
}
