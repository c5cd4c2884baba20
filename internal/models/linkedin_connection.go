package models

import "time"

// LinkedIn 连接状态
const (
	LinkedInStateNotConnected    = "not_connected"
	LinkedInStatePendingCallback = "pending_callback"
	LinkedInStateConnected       = "connected"
	LinkedInStateInvalid         = "invalid"
)

// LinkedInConnection 管理员的 LinkedIn 授权状态，不落库
type LinkedInConnection struct {
	State       string    `json:"state"`
	AccessToken string    `json:"access_token,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasToken 是否持有访问令牌
func (c *LinkedInConnection) HasToken() bool {
	return c != nil && c.AccessToken != ""
}
