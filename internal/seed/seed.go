package seed

import (
	"fmt"
	"strings"

	"github.com/David-iadg/consult-ia/internal/logger"
	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/repository"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "password"
)

// Options 初始化数据选项
type Options struct {
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string // 非空时优先写入该 bcrypt 哈希
}

// Result 各集合实际写入的条数
type Result struct {
	Users        int
	Posts        int
	Applications int
	ChatbotQas   int
}

// Run 向空集合写入示例数据，已有数据的集合保持不变
func Run(store repository.Store, opts Options) (Result, error) {
	var result Result
	created, err := ensureAdmin(store.Users(), opts)
	if err != nil {
		return result, fmt.Errorf("seed admin: %w", err)
	}
	if created {
		result.Users = 1
	}

	if result.Posts, err = seedPosts(store.Posts()); err != nil {
		return result, fmt.Errorf("seed posts: %w", err)
	}
	if result.Applications, err = seedApplications(store.Applications()); err != nil {
		return result, fmt.Errorf("seed applications: %w", err)
	}
	if result.ChatbotQas, err = seedChatbotQas(store.ChatbotQas()); err != nil {
		return result, fmt.Errorf("seed chatbot qa: %w", err)
	}
	logger.Infow("seed_completed",
		"users", result.Users,
		"posts", result.Posts,
		"applications", result.Applications,
		"chatbot_qas", result.ChatbotQas,
	)
	return result, nil
}

func ensureAdmin(repo repository.UserRepository, opts Options) (bool, error) {
	count, err := repo.Count()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	username := strings.TrimSpace(opts.AdminUsername)
	if username == "" {
		username = defaultAdminUsername
	}
	password := opts.AdminPassword
	if hash := strings.TrimSpace(opts.AdminPasswordHash); hash != "" {
		password = hash
	} else if password == "" {
		password = defaultAdminPassword
	}
	if err := repo.Create(&models.User{Username: username, Password: password}); err != nil {
		return false, err
	}

	if password == defaultAdminPassword {
		logger.Warnw("default_admin_created_with_default_password", "username", username)
	} else {
		logger.Infow("default_admin_created", "username", username, "password_hidden", true)
	}
	return true, nil
}

func seedPosts(repo repository.PostRepository) (int, error) {
	existing, err := repo.List(repository.PostListFilter{})
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	posts := Posts()
	for i := range posts {
		if err := repo.Create(&posts[i]); err != nil {
			return 0, err
		}
	}
	return len(posts), nil
}

func seedApplications(repo repository.ApplicationRepository) (int, error) {
	existing, err := repo.List(repository.ApplicationListFilter{})
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	apps := Applications()
	for i := range apps {
		if err := repo.Create(&apps[i]); err != nil {
			return 0, err
		}
	}
	return len(apps), nil
}

func seedChatbotQas(repo repository.ChatbotQaRepository) (int, error) {
	total := 0
	items := ChatbotQas()
	// 按语言判断是否为空，某个语言已配置时不重复写入
	seeded := map[string]bool{}
	for i := range items {
		lang := items[i].Language
		if _, checked := seeded[lang]; !checked {
			existing, err := repo.List(lang)
			if err != nil {
				return total, err
			}
			seeded[lang] = len(existing) == 0
		}
		if !seeded[lang] {
			continue
		}
		if err := repo.Create(&items[i]); err != nil {
			return total, err
		}
		total++
	}
	return total, nil
}
