package service

import (
	"strings"

	"github.com/David-iadg/consult-ia/internal/constants"
	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/repository"
)

// PostService 文章业务服务
type PostService struct {
	repo repository.PostRepository
}

// NewPostService 创建文章服务
func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePostInput 创建文章输入，日期由存储层写入
type CreatePostInput struct {
	Title    string
	Slug     string
	Excerpt  string
	Content  string
	ImageURL *string
	Category string
	AuthorID *uint
	Language string
	Image    *string
}

// List 文章列表，按日期倒序
func (s *PostService) List(filter repository.PostListFilter) ([]models.Post, error) {
	return s.repo.List(filter)
}

// GetByID 获取文章详情
func (s *PostService) GetByID(id uint) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// GetBySlug 按 slug 获取文章
func (s *PostService) GetBySlug(slug string) (*models.Post, error) {
	post, err := s.repo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章
func (s *PostService) Create(input CreatePostInput) (*models.Post, error) {
	count, err := s.repo.CountBySlug(input.Slug, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	language := strings.TrimSpace(input.Language)
	if language == "" {
		language = constants.DefaultLanguage
	}
	post := models.Post{
		Title:    input.Title,
		Slug:     input.Slug,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		ImageURL: input.ImageURL,
		Category: input.Category,
		AuthorID: input.AuthorID,
		Language: language,
		Image:    input.Image,
	}
	if err := s.repo.Create(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update 局部更新文章，未提供的字段保持原值
func (s *PostService) Update(id uint, patch models.PostPatch) (*models.Post, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	if patch.Slug != nil && *patch.Slug != current.Slug {
		count, err := s.repo.CountBySlug(*patch.Slug, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugExists
		}
	}
	// 日期不允许通过接口修改
	patch.Date = nil

	updated, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete 删除文章
func (s *PostService) Delete(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
