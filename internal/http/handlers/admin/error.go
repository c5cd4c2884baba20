package admin

import (
	"errors"
	"net/http"

	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, status int, key string, err error) {
	handlershared.RespondError(c, status, key, err)
}

func respondErrorWithMsg(c *gin.Context, status int, msg string, err error) {
	handlershared.RespondErrorWithMsg(c, status, msg, err)
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

// currentIdentity 读取鉴权中间件写入的身份，缺失时返回 401
func currentIdentity(c *gin.Context) (session.Identity, bool) {
	identity, ok := handlershared.CurrentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "error.unauthorized", nil)
		return session.Identity{}, false
	}
	return identity, true
}
