package session

import (
	"net/http"
	"strings"

	"github.com/David-iadg/consult-ia/internal/config"
	"github.com/David-iadg/consult-ia/internal/constants"

	"github.com/gorilla/sessions"
)

const (
	defaultName   = "consult_session"
	defaultMaxAge = 86400
)

// Identity 会话中的登录身份
type Identity struct {
	UserID   uint
	Username string
}

// Authenticated 是否已登录
func (i Identity) Authenticated() bool {
	return i.UserID != 0
}

// Manager 基于签名 Cookie 的会话管理
type Manager struct {
	store *sessions.CookieStore
	name  string
}

// NewManager 创建会话管理器，MaxAge 同时作为空闲过期时间
func NewManager(cfg config.SessionConfig) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	maxAge := cfg.MaxAgeSeconds
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}
	store.MaxAge(maxAge)

	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		path = "/"
	}
	store.Options.Path = path
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.Secure
	store.Options.SameSite = parseSameSite(cfg.SameSite)

	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = defaultName
	}
	return &Manager{store: store, name: name}
}

// Name Cookie 名称
func (m *Manager) Name() string {
	return m.name
}

// Get 读取当前请求的会话，Cookie 无效时返回空会话
func (m *Manager) Get(r *http.Request) *sessions.Session {
	sess, err := m.store.Get(r, m.name)
	if sess == nil {
		sess = sessions.NewSession(m.store, m.name)
		opts := *m.store.Options
		sess.Options = &opts
		sess.IsNew = true
	}
	if err != nil {
		// 签名不匹配或已过期，丢弃旧值
		for key := range sess.Values {
			delete(sess.Values, key)
		}
	}
	return sess
}

// Identity 解析会话中的身份，未登录返回零值
func (m *Manager) Identity(r *http.Request) Identity {
	sess := m.Get(r)
	id, _ := sess.Values[constants.SessionKeyUserID].(uint)
	username, _ := sess.Values[constants.SessionKeyUsername].(string)
	if id == 0 {
		return Identity{}
	}
	return Identity{UserID: id, Username: username}
}

// Login 写入身份并下发 Cookie
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, identity Identity) error {
	sess := m.Get(r)
	sess.Values[constants.SessionKeyUserID] = identity.UserID
	sess.Values[constants.SessionKeyUsername] = identity.Username
	return sess.Save(r, w)
}

// Logout 清空会话并让浏览器删除 Cookie
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	sess := m.Get(r)
	for key := range sess.Values {
		delete(sess.Values, key)
	}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// Touch 重新签发 Cookie，刷新空闲过期时间
func (m *Manager) Touch(w http.ResponseWriter, r *http.Request) error {
	return m.Get(r).Save(r, w)
}

// SetLinkedInState 保存 OAuth 防伪 state
func (m *Manager) SetLinkedInState(w http.ResponseWriter, r *http.Request, state string) error {
	sess := m.Get(r)
	sess.Values[constants.SessionKeyLinkedInState] = state
	return sess.Save(r, w)
}

// LinkedInState 读取 OAuth 防伪 state，回调后不清除
func (m *Manager) LinkedInState(r *http.Request) string {
	state, _ := m.Get(r).Values[constants.SessionKeyLinkedInState].(string)
	return state
}

func parseSameSite(raw string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "lax", "":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteDefaultMode
	}
}
