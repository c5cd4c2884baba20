package admin

import "github.com/David-iadg/consult-ia/internal/provider"

// Handler 后台管理接口处理器入口
// 说明：所有路由都挂在鉴权中间件之后，LinkedIn 回调除外（自行校验会话）。
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
