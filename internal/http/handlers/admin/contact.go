package admin

import (
	"net/http"

	"github.com/David-iadg/consult-ia/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContactSubmissions 联系表单列表，最新在前
func (h *Handler) GetContactSubmissions(c *gin.Context) {
	items, err := h.ContactService.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.contact_fetch_failed", err)
		return
	}
	response.OK(c, items)
}
