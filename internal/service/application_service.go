package service

import (
	"strings"

	"github.com/David-iadg/consult-ia/internal/constants"
	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/repository"
)

// ApplicationService 实验室应用服务
type ApplicationService struct {
	repo repository.ApplicationRepository
}

// NewApplicationService 创建应用服务
func NewApplicationService(repo repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

// CreateApplicationInput 创建应用输入
type CreateApplicationInput struct {
	Title       string
	Description string
	Icon        string
	URL         string
	Link        *string
	Order       int
	Language    string
}

// List 应用列表，按 order 升序
func (s *ApplicationService) List(filter repository.ApplicationListFilter) ([]models.Application, error) {
	return s.repo.List(filter)
}

// GetByID 获取应用
func (s *ApplicationService) GetByID(id uint) (*models.Application, error) {
	app, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrNotFound
	}
	return app, nil
}

// Create 创建应用
func (s *ApplicationService) Create(input CreateApplicationInput) (*models.Application, error) {
	language := strings.TrimSpace(input.Language)
	if language == "" {
		language = constants.DefaultLanguage
	}
	app := models.Application{
		Title:       input.Title,
		Description: input.Description,
		Icon:        input.Icon,
		URL:         input.URL,
		Link:        input.Link,
		Order:       input.Order,
		Language:    language,
	}
	if err := s.repo.Create(&app); err != nil {
		return nil, err
	}
	return &app, nil
}

// Update 局部更新应用
func (s *ApplicationService) Update(id uint, patch models.ApplicationPatch) (*models.Application, error) {
	updated, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete 删除应用
func (s *ApplicationService) Delete(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
