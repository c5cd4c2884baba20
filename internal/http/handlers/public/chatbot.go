package public

import (
	"net/http"
	"strings"

	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/http/response"
	"github.com/David-iadg/consult-ia/internal/i18n"

	"github.com/gin-gonic/gin"
)

// GetChatbotQas 按语言列出问答，支持 lang 与 language 参数
func (h *Handler) GetChatbotQas(c *gin.Context) {
	items, err := h.ChatbotService.List(handlershared.QueryLanguage(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.chatbot_qa_fetch_failed", err)
		return
	}
	response.OK(c, items)
}

// ChatbotMessageRequest 聊天消息请求
type ChatbotMessageRequest struct {
	Message  string `json:"message" binding:"required"`
	Language string `json:"language"`
}

// SendChatbotMessage 关键词应答，未指定语言时按请求 locale
func (h *Handler) SendChatbotMessage(c *gin.Context) {
	var req ChatbotMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlershared.RespondBindError(c, err)
		return
	}
	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = i18n.ResolveLocale(c)
	}
	reply, err := h.ChatbotService.Respond(req.Message, language)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error.chatbot_qa_fetch_failed", err)
		return
	}
	response.OK(c, reply)
}
