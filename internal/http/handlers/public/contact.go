package public

import (
	"net/http"

	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/http/response"
	"github.com/David-iadg/consult-ia/internal/i18n"
	"github.com/David-iadg/consult-ia/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactRequest 联系表单请求
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact 提交联系表单
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}

	locale := i18n.ResolveLocale(c)
	submission, err := h.ContactService.Submit(service.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Locale:  locale,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.contact_submit_failed", err)
		return
	}
	response.Created(c, gin.H{
		"success": true,
		"id":      submission.ID,
		"message": i18n.T(locale, "contact.received"),
	})
}
