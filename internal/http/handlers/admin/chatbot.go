package admin

import (
	"net/http"

	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/http/response"
	"github.com/David-iadg/consult-ia/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateChatbotQaRequest 创建问答请求
type CreateChatbotQaRequest struct {
	Language string   `json:"language"`
	Keywords []string `json:"keywords" binding:"required,min=1"`
	Question string   `json:"question" binding:"required"`
	Answer   string   `json:"answer" binding:"required"`
}

// CreateChatbotQa 创建问答条目
func (h *Handler) CreateChatbotQa(c *gin.Context) {
	var req CreateChatbotQaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	qa, err := h.ChatbotService.Create(service.CreateChatbotQaInput{
		Language: req.Language,
		Keywords: req.Keywords,
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrKeywordsRequired, status: http.StatusBadRequest, key: "error.chatbot_keywords_required"},
			{target: service.ErrLanguageInvalid, status: http.StatusBadRequest, key: "error.language_invalid"},
		}, http.StatusInternalServerError, "error.chatbot_qa_create_failed")
		return
	}
	response.Created(c, qa)
}
