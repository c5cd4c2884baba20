package shared

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/David-iadg/consult-ia/internal/session"

	"github.com/gin-gonic/gin"
)

// IdentityKey gin 上下文中会话身份的键
const IdentityKey = "session_identity"

// SetIdentity 由会话中间件写入当前身份。
func SetIdentity(c *gin.Context, identity session.Identity) {
	c.Set(IdentityKey, identity)
}

// CurrentIdentity 读取当前请求的会话身份，匿名时 ok 为 false。
func CurrentIdentity(c *gin.Context) (session.Identity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return session.Identity{}, false
	}
	identity, ok := value.(session.Identity)
	if !ok || !identity.Authenticated() {
		return session.Identity{}, false
	}
	return identity, true
}

// ParseIDParam 解析路径中的数字 ID，非数字时直接返回 400。
// 0 视为合法 ID，由后续查询返回 404。
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "error.invalid_id", nil)
		return 0, false
	}
	return uint(id), true
}

// QueryLanguage 读取 lang 或 language 查询参数（小写、去空白）。
func QueryLanguage(c *gin.Context) string {
	value := c.Query("lang")
	if strings.TrimSpace(value) == "" {
		value = c.Query("language")
	}
	return strings.ToLower(strings.TrimSpace(value))
}
