package public

import "github.com/David-iadg/consult-ia/internal/provider"

// Handler 公开接口处理器入口
// 说明：文章、应用、联系表单、聊天机器人与登录/登出，不要求会话。
type Handler struct {
	*provider.Container
}

// New 创建公开处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
