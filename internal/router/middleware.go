package router

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/David-iadg/consult-ia/internal/config"
	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/http/response"
	"github.com/David-iadg/consult-ia/internal/i18n"
	"github.com/David-iadg/consult-ia/internal/service"
	"github.com/David-iadg/consult-ia/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = response.RequestIDKey
const requestIDHeader = "X-Request-ID"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{"Content-Type", "Accept-Language", "X-Requested-With", "X-Locale"}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", requestIDHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// resolveAllowedOrigin 带凭据时不能返回 *，改为回显来源
func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化访问日志
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		switch {
		case len(c.Errors) > 0:
			log.Errorw("request", "errors", c.Errors.String())
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Warnw("request")
		default:
			log.Infow("request")
		}
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// SessionMiddleware 解析会话 Cookie，已登录时把身份放入上下文
func SessionMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if manager != nil {
			if identity := manager.Identity(c.Request); identity.Authenticated() {
				handlershared.SetIdentity(c, identity)
			}
		}
		c.Next()
	}
}

// RequireAuth 后台鉴权：会话中的用户必须仍然存在，否则统一返回 401
// 通过校验后续签 Cookie，实现空闲过期
func RequireAuth(manager *session.Manager, auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := handlershared.CurrentIdentity(c)
		if !ok || auth == nil {
			unauthorized(c)
			return
		}

		user, err := auth.CurrentUser(identity.UserID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				handlershared.RequestLog(c).Infow("auth_session_user_missing", "user_id", identity.UserID)
				if manager != nil {
					_ = manager.Logout(c.Writer, c.Request)
				}
				unauthorized(c)
				return
			}
			handlershared.RespondError(c, http.StatusInternalServerError, "error.internal", err)
			return
		}

		identity = session.Identity{UserID: user.ID, Username: user.Username}
		handlershared.SetIdentity(c, identity)
		if manager != nil {
			if err := manager.Touch(c.Writer, c.Request); err != nil {
				handlershared.RequestLog(c).Warnw("auth_session_touch_failed", "error", err)
			}
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	response.Unauthorized(c, i18n.T(i18n.ResolveLocale(c), "error.unauthorized"))
}
