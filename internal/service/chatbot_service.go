package service

import (
	"strings"

	"github.com/David-iadg/consult-ia/internal/constants"
	"github.com/David-iadg/consult-ia/internal/i18n"
	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/repository"
)

// ChatbotService 关键词问答服务
type ChatbotService struct {
	repo repository.ChatbotQaRepository
}

// NewChatbotService 创建问答服务
func NewChatbotService(repo repository.ChatbotQaRepository) *ChatbotService {
	return &ChatbotService{repo: repo}
}

// CreateChatbotQaInput 创建问答输入
type CreateChatbotQaInput struct {
	Language string
	Keywords []string
	Question string
	Answer   string
}

// ChatbotReply 应答结果
type ChatbotReply struct {
	Reply     string `json:"reply"`
	MatchedID *uint  `json:"matchedId,omitempty"`
	Language  string `json:"language"`
}

// List 按语言列出问答，空语言视为 fr
func (s *ChatbotService) List(language string) ([]models.ChatbotQa, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		language = constants.DefaultLanguage
	}
	return s.repo.List(language)
}

// Create 创建问答，关键词必须全部非空
func (s *ChatbotService) Create(input CreateChatbotQaInput) (*models.ChatbotQa, error) {
	language := constants.DefaultLanguage
	if raw := strings.TrimSpace(input.Language); raw != "" {
		language = i18n.NormalizeLocale(raw)
		if language == "" {
			return nil, ErrLanguageInvalid
		}
	}
	if len(input.Keywords) == 0 {
		return nil, ErrKeywordsRequired
	}
	keywords := make(models.StringArray, 0, len(input.Keywords))
	for _, keyword := range input.Keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			return nil, ErrKeywordsRequired
		}
		keywords = append(keywords, keyword)
	}

	qa := models.ChatbotQa{
		Language: language,
		Keywords: keywords,
		Question: input.Question,
		Answer:   input.Answer,
	}
	if err := s.repo.Create(&qa); err != nil {
		return nil, err
	}
	return &qa, nil
}

// Respond 首个命中关键词的问答胜出，无命中时返回本地化默认回复
func (s *ChatbotService) Respond(utterance, language string) (*ChatbotReply, error) {
	resolved := i18n.NormalizeLocale(language)
	if resolved == "" {
		resolved = constants.DefaultLanguage
	}

	items, err := s.repo.List(resolved)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 && resolved != constants.DefaultLanguage {
		// 该语言未配置问答时回退默认语言
		if items, err = s.repo.List(constants.DefaultLanguage); err != nil {
			return nil, err
		}
	}

	reply := &ChatbotReply{Language: resolved}
	if qa := MatchKeywords(items, utterance); qa != nil {
		id := qa.ID
		reply.Reply = qa.Answer
		reply.MatchedID = &id
		// 命中回退记录时报告实际作答的语言
		if qa.Language != "" {
			reply.Language = qa.Language
		}
		return reply, nil
	}
	reply.Reply = i18n.T(resolved, "chatbot.default")
	return reply, nil
}

// MatchKeywords 按存储顺序扫描，返回第一个有关键词出现在消息中的条目（大小写不敏感）
func MatchKeywords(items []models.ChatbotQa, utterance string) *models.ChatbotQa {
	message := strings.ToLower(utterance)
	for i := range items {
		for _, keyword := range items[i].Keywords {
			keyword = strings.ToLower(keyword)
			if keyword == "" {
				continue
			}
			if strings.Contains(message, keyword) {
				return &items[i]
			}
		}
	}
	return nil
}
