package admin

import (
	"net/http"

	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/http/response"
	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateApplicationRequest 创建应用请求
type CreateApplicationRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Icon        string  `json:"icon" binding:"required"`
	URL         string  `json:"url" binding:"required"`
	Link        *string `json:"link"`
	Order       int     `json:"order"`
	Language    string  `json:"language" binding:"omitempty,oneof=fr en es"`
}

var applicationErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, status: http.StatusNotFound, key: "error.application_not_found"},
}

// CreateApplication 创建应用
func (h *Handler) CreateApplication(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	app, err := h.ApplicationService.Create(service.CreateApplicationInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		URL:         req.URL,
		Link:        req.Link,
		Order:       req.Order,
		Language:    req.Language,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.application_create_failed", err)
		return
	}
	response.Created(c, app)
}

// UpdateApplication 局部更新应用
func (h *Handler) UpdateApplication(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var patch models.ApplicationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	app, err := h.ApplicationService.Update(id, patch)
	if err != nil {
		respondWithMappedError(c, err, applicationErrorRules, http.StatusInternalServerError, "error.application_update_failed")
		return
	}
	response.OK(c, app)
}

// DeleteApplication 删除应用
func (h *Handler) DeleteApplication(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.ApplicationService.Delete(id); err != nil {
		respondWithMappedError(c, err, applicationErrorRules, http.StatusInternalServerError, "error.application_delete_failed")
		return
	}
	response.NoContent(c)
}
