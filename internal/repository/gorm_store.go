package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/David-iadg/consult-ia/internal/constants"
	"github.com/David-iadg/consult-ia/internal/models"

	"gorm.io/gorm"
)

// GormStore 基于 GORM 的 SQL 内容存储（sqlite / postgres）
// id 由数据库自增列分配，删除后不会复用
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormStore 创建 SQL 存储，调用方需先完成迁移
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

// SetClock 替换时间来源，测试用
func (s *GormStore) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// DB 暴露底层连接
func (s *GormStore) DB() *gorm.DB { return s.db }

func (s *GormStore) Users() UserRepository               { return gormUsers{s} }
func (s *GormStore) Posts() PostRepository               { return gormPosts{s} }
func (s *GormStore) Applications() ApplicationRepository { return gormApplications{s} }
func (s *GormStore) Contacts() ContactRepository         { return gormContacts{s} }
func (s *GormStore) ChatbotQas() ChatbotQaRepository     { return gormChatbotQas{s} }

// Close 关闭底层连接池
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// firstOrNil 未找到记录时返回 (nil, nil)
func firstOrNil[T any](query *gorm.DB, conds ...interface{}) (*T, error) {
	var item T
	if err := query.First(&item, conds...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

type gormUsers struct{ s *GormStore }

func (r gormUsers) GetByID(id uint) (*models.User, error) {
	return firstOrNil[models.User](r.s.db, id)
}

func (r gormUsers) GetByUsername(username string) (*models.User, error) {
	return firstOrNil[models.User](r.s.db.Where("username = ?", username))
}

func (r gormUsers) Create(user *models.User) error {
	return r.s.db.Create(user).Error
}

func (r gormUsers) Delete(id uint) (bool, error) {
	result := r.s.db.Delete(&models.User{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r gormUsers) Count() (int64, error) {
	var count int64
	err := r.s.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

type gormPosts struct{ s *GormStore }

func (r gormPosts) List(filter PostListFilter) ([]models.Post, error) {
	query := r.s.db.Model(&models.Post{})
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, argCount := buildLikeCondition(r.s.db, []string{"title", "slug", "excerpt"})
		query = query.Where(condition, repeatLikeArgs(likePattern(search), argCount)...)
	}
	posts := make([]models.Post, 0)
	if err := query.Order("date DESC").Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r gormPosts) GetByID(id uint) (*models.Post, error) {
	return firstOrNil[models.Post](r.s.db, id)
}

func (r gormPosts) GetBySlug(slug string) (*models.Post, error) {
	return firstOrNil[models.Post](r.s.db.Where("slug = ?", slug).Order("id ASC"))
}

func (r gormPosts) Create(post *models.Post) error {
	if post.Date.IsZero() {
		post.Date = r.s.now()
	}
	post.Date = post.Date.UTC()
	if post.Language == "" {
		post.Language = constants.DefaultLanguage
	}
	return r.s.db.Create(post).Error
}

func (r gormPosts) Update(id uint, patch models.PostPatch) (*models.Post, error) {
	var updated *models.Post
	err := r.s.db.Transaction(func(tx *gorm.DB) error {
		current, err := firstOrNil[models.Post](tx, id)
		if err != nil || current == nil {
			return err
		}
		if cols := patch.Columns(); len(cols) > 0 {
			if err := tx.Model(&models.Post{}).Where("id = ?", id).Updates(cols).Error; err != nil {
				return err
			}
		}
		updated, err = firstOrNil[models.Post](tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r gormPosts) Delete(id uint) (bool, error) {
	result := r.s.db.Delete(&models.Post{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r gormPosts) CountBySlug(slug string, excludeID uint) (int64, error) {
	var count int64
	query := r.s.db.Model(&models.Post{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type gormApplications struct{ s *GormStore }

func (r gormApplications) List(filter ApplicationListFilter) ([]models.Application, error) {
	query := r.s.db.Model(&models.Application{})
	if filter.Language != "" {
		query = query.Where("language = ?", filter.Language)
	}
	apps := make([]models.Application, 0)
	if err := query.Order("sort_order ASC").Order("id ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r gormApplications) GetByID(id uint) (*models.Application, error) {
	return firstOrNil[models.Application](r.s.db, id)
}

func (r gormApplications) Create(app *models.Application) error {
	if app.Language == "" {
		app.Language = constants.DefaultLanguage
	}
	return r.s.db.Create(app).Error
}

func (r gormApplications) Update(id uint, patch models.ApplicationPatch) (*models.Application, error) {
	var updated *models.Application
	err := r.s.db.Transaction(func(tx *gorm.DB) error {
		current, err := firstOrNil[models.Application](tx, id)
		if err != nil || current == nil {
			return err
		}
		if cols := patch.Columns(); len(cols) > 0 {
			if err := tx.Model(&models.Application{}).Where("id = ?", id).Updates(cols).Error; err != nil {
				return err
			}
		}
		updated, err = firstOrNil[models.Application](tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r gormApplications) Delete(id uint) (bool, error) {
	result := r.s.db.Delete(&models.Application{}, id)
	return result.RowsAffected > 0, result.Error
}

type gormContacts struct{ s *GormStore }

func (r gormContacts) List() ([]models.ContactSubmission, error) {
	items := make([]models.ContactSubmission, 0)
	if err := r.s.db.Order("date DESC").Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r gormContacts) GetByID(id uint) (*models.ContactSubmission, error) {
	return firstOrNil[models.ContactSubmission](r.s.db, id)
}

func (r gormContacts) Create(submission *models.ContactSubmission) error {
	submission.Date = r.s.now().UTC()
	submission.Status = constants.ContactStatusNew
	return r.s.db.Create(submission).Error
}

type gormChatbotQas struct{ s *GormStore }

func (r gormChatbotQas) List(language string) ([]models.ChatbotQa, error) {
	if language == "" {
		language = constants.DefaultLanguage
	}
	items := make([]models.ChatbotQa, 0)
	if err := r.s.db.Where("language = ?", language).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r gormChatbotQas) Create(qa *models.ChatbotQa) error {
	if qa.Language == "" {
		qa.Language = constants.DefaultLanguage
	}
	return r.s.db.Create(qa).Error
}
