package service

import (
	"crypto/subtle"
	"strings"

	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService 后台登录认证服务
type AuthService struct {
	users repository.UserRepository
}

// NewAuthService 创建认证服务实例
func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// HashPassword 使用 bcrypt 加密密码
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 校验密码：bcrypt 哈希走 bcrypt，其余按原文逐字节比较
func (s *AuthService) VerifyPassword(stored, password string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// Login 校验用户名密码，未知用户与密码错误返回同一错误
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !s.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// CurrentUser 根据会话中的用户 ID 重新加载用户，用户已删除时返回 ErrNotFound
func (s *AuthService) CurrentUser(id uint) (*models.User, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func isBcryptHash(value string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
