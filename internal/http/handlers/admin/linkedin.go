package admin

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/David-iadg/consult-ia/internal/constants"
	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/http/response"
	"github.com/David-iadg/consult-ia/internal/i18n"
	"github.com/David-iadg/consult-ia/internal/linkedin"
	"github.com/David-iadg/consult-ia/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkedInAuth 生成授权地址并把 state 写入会话
func (h *Handler) LinkedInAuth(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	authURL, state, err := h.LinkedInService.BeginAuth(c.Request.Context(), identity.UserID)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrLinkedInNotConfigured, status: http.StatusInternalServerError, key: "error.linkedin_not_configured"},
		}, http.StatusInternalServerError, "error.linkedin_auth_url_failed")
		return
	}
	if err := h.Sessions.SetLinkedInState(c.Writer, c.Request, state); err != nil {
		respondError(c, http.StatusInternalServerError, "error.linkedin_auth_url_failed", err)
		return
	}
	response.OK(c, gin.H{"authUrl": authURL})
}

// LinkedInCallback 授权回调：校验会话与 state 后换取令牌，并跳回后台
func (h *Handler) LinkedInCallback(c *gin.Context) {
	identity, ok := handlershared.CurrentIdentity(c)
	if !ok {
		h.linkedInCallbackFailure(c, http.StatusUnauthorized, "error.unauthorized")
		return
	}

	err := h.LinkedInService.CompleteAuth(
		c.Request.Context(),
		identity.UserID,
		h.Sessions.LinkedInState(c.Request),
		c.Query("state"),
		c.Query("code"),
	)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, h.adminRedirect(constants.LinkedInSuccessQuery))
	case errors.Is(err, service.ErrLinkedInStateMismatch):
		requestLog(c).Warnw("linkedin_callback_state_mismatch", "user_id", identity.UserID)
		h.linkedInCallbackFailure(c, http.StatusForbidden, "error.linkedin_state_mismatch")
	case errors.Is(err, service.ErrLinkedInCodeMissing):
		h.linkedInCallbackFailure(c, http.StatusBadRequest, "error.linkedin_code_missing")
	default:
		// 换取令牌失败已在服务层记录详情
		c.Redirect(http.StatusFound, h.adminRedirect(constants.LinkedInErrorQuery))
	}
}

// linkedInCallbackFailure 回调是整页跳转，失败时保留状态码并引导浏览器回到后台
func (h *Handler) linkedInCallbackFailure(c *gin.Context, status int, key string) {
	requestLog(c).Infow("linkedin_callback_rejected",
		"status", status,
		"reason", key,
	)
	response.RedirectPage(c, status, h.adminRedirect(constants.LinkedInErrorQuery))
}

func (h *Handler) adminRedirect(flag string) string {
	path := h.Config.LinkedIn.AdminRedirectPath
	if path == "" {
		path = "/admin"
	}
	query := url.Values{}
	query.Set(flag, "true")
	return path + "?" + query.Encode()
}

// LinkedInStatus 查询当前管理员的连接状态
func (h *Handler) LinkedInStatus(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	status, err := h.LinkedInService.Status(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.linkedin_status_failed", err)
		return
	}
	response.OK(c, status)
}

// LinkedInShareRequest 分享请求
type LinkedInShareRequest struct {
	Text     string `json:"text" binding:"required"`
	Title    string `json:"title" binding:"required"`
	URL      string `json:"url" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// blankFields 去除空白后仍为空的必填字段
func (r LinkedInShareRequest) blankFields() []response.FieldError {
	var fields []response.FieldError
	for _, f := range []struct{ name, value string }{
		{"text", r.Text},
		{"title", r.Title},
		{"url", r.URL},
	} {
		if f.value == "" {
			fields = append(fields, response.FieldError{Field: f.name, Rule: "required"})
		}
	}
	return fields
}

// LinkedInShare 以当前管理员身份发布文章链接
func (h *Handler) LinkedInShare(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}
	var req LinkedInShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindErrorWithKey(c, err, "error.linkedin_share_invalid")
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	req.Title = strings.TrimSpace(req.Title)
	req.URL = strings.TrimSpace(req.URL)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	if fields := req.blankFields(); len(fields) > 0 {
		response.ValidationError(c, i18n.T(i18n.ResolveLocale(c), "error.linkedin_share_invalid"), fields)
		return
	}

	result, err := h.LinkedInService.Share(c.Request.Context(), identity.UserID, linkedin.ShareInput{
		Text:     req.Text,
		Title:    req.Title,
		URL:      req.URL,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLinkedInNotConfigured):
			respondError(c, http.StatusInternalServerError, "error.linkedin_not_configured", nil)
		case errors.Is(err, service.ErrLinkedInNotConnected):
			respondError(c, http.StatusUnauthorized, "error.linkedin_not_connected", nil)
		case errors.Is(err, service.ErrLinkedInTokenInvalid):
			respondError(c, http.StatusUnauthorized, "error.linkedin_token_invalid", nil)
		case errors.Is(err, linkedin.ErrInputInvalid):
			respondError(c, http.StatusBadRequest, "error.linkedin_share_invalid", nil)
		default:
			msg := i18n.T(i18n.ResolveLocale(c), "error.linkedin_share_failed") + ": " + err.Error()
			respondErrorWithMsg(c, http.StatusInternalServerError, msg, err)
		}
		return
	}
	response.OK(c, gin.H{"success": true, "result": result})
}
