package repository

import (
	"github.com/David-iadg/consult-ia/internal/models"
)

// Store 内容存储，按实体类型暴露各自的仓库
type Store interface {
	Users() UserRepository
	Posts() PostRepository
	Applications() ApplicationRepository
	Contacts() ContactRepository
	ChatbotQas() ChatbotQaRepository
	Close() error
}

// UserRepository 后台账号数据访问接口
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	Delete(id uint) (bool, error)
	Count() (int64, error)
}

// PostRepository 文章数据访问接口
type PostRepository interface {
	List(filter PostListFilter) ([]models.Post, error)
	GetByID(id uint) (*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	// Create 分配 id；Date 为零值时写入当前时间
	Create(post *models.Post) error
	Update(id uint, patch models.PostPatch) (*models.Post, error)
	Delete(id uint) (bool, error)
	CountBySlug(slug string, excludeID uint) (int64, error)
}

// ApplicationRepository 应用展示数据访问接口
type ApplicationRepository interface {
	List(filter ApplicationListFilter) ([]models.Application, error)
	GetByID(id uint) (*models.Application, error)
	Create(app *models.Application) error
	Update(id uint, patch models.ApplicationPatch) (*models.Application, error)
	Delete(id uint) (bool, error)
}

// ContactRepository 联系表单数据访问接口（只追加）
type ContactRepository interface {
	List() ([]models.ContactSubmission, error)
	GetByID(id uint) (*models.ContactSubmission, error)
	// Create 分配 id，写入当前时间与 new 状态
	Create(submission *models.ContactSubmission) error
}

// ChatbotQaRepository 聊天机器人问答数据访问接口
type ChatbotQaRepository interface {
	// List 按语言过滤，空语言视为 fr，保持存储顺序
	List(language string) ([]models.ChatbotQa, error)
	Create(qa *models.ChatbotQa) error
}
