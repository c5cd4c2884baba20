package public

import (
	"net/http"

	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/http/response"
	"github.com/David-iadg/consult-ia/internal/repository"
	"github.com/David-iadg/consult-ia/internal/service"

	"github.com/gin-gonic/gin"
)

// GetApplications 实验室应用列表，按 order 升序
func (h *Handler) GetApplications(c *gin.Context) {
	apps, err := h.ApplicationService.List(repository.ApplicationListFilter{
		Language: handlershared.QueryLanguage(c),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.application_fetch_failed", err)
		return
	}
	response.OK(c, apps)
}

// GetApplication 根据 ID 获取应用
func (h *Handler) GetApplication(c *gin.Context) {
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	app, err := h.ApplicationService.GetByID(id)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, status: http.StatusNotFound, key: "error.application_not_found"},
		}, http.StatusInternalServerError, "error.application_fetch_failed")
		return
	}
	response.OK(c, app)
}
