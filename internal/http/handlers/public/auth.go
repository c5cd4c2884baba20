package public

import (
	"net/http"

	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/http/response"
	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/service"
	"github.com/David-iadg/consult-ia/internal/session"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse 对外暴露的用户信息
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{ID: user.ID, Username: user.Username}
}

// Login 校验账号并写入会话
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}

	user, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, key: "error.login_invalid"},
		}, http.StatusInternalServerError, "error.login_failed")
		return
	}

	identity := session.Identity{UserID: user.ID, Username: user.Username}
	if err := h.Sessions.Login(c.Writer, c.Request, identity); err != nil {
		respondError(c, http.StatusInternalServerError, "error.login_failed", err)
		return
	}
	handlershared.RequestLog(c).Infow("auth_login_success", "user_id", user.ID)
	response.OK(c, gin.H{
		"success": true,
		"user":    toUserResponse(user),
	})
}

// Logout 清除会话，匿名调用同样返回成功
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Sessions.Logout(c.Writer, c.Request); err != nil {
		respondError(c, http.StatusInternalServerError, "error.logout_failed", err)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// CurrentUser 返回会话对应的用户，鉴权中间件已重新校验过用户存在
func (h *Handler) CurrentUser(c *gin.Context) {
	identity, ok := handlershared.CurrentIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "error.unauthorized", nil)
		return
	}
	response.OK(c, UserResponse{ID: identity.UserID, Username: identity.Username})
}
