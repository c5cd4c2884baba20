package provider

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/David-iadg/consult-ia/internal/cache"
	"github.com/David-iadg/consult-ia/internal/config"
	"github.com/David-iadg/consult-ia/internal/constants"
	"github.com/David-iadg/consult-ia/internal/linkedin"
	"github.com/David-iadg/consult-ia/internal/logger"
	"github.com/David-iadg/consult-ia/internal/models"
	"github.com/David-iadg/consult-ia/internal/queue"
	"github.com/David-iadg/consult-ia/internal/repository"
	"github.com/David-iadg/consult-ia/internal/seed"
	"github.com/David-iadg/consult-ia/internal/service"
	"github.com/David-iadg/consult-ia/internal/session"
)

// Container 依赖容器
type Container struct {
	Config      *config.Config
	Store       repository.Store
	QueueClient *queue.Client
	Sessions    *session.Manager

	// Services
	PostService        *service.PostService
	ApplicationService *service.ApplicationService
	ContactService     *service.ContactService
	ChatbotService     *service.ChatbotService
	AuthService        *service.AuthService
	LinkedInService    *service.LinkedInService
	EmailService       *service.EmailService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) (*Container, error) {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	store, err := OpenStore(&cfg.Store, cfg.Server.Mode == "debug")
	if err != nil {
		return nil, err
	}
	return NewContainerWithStore(cfg, store, queueClient)
}

// NewContainerWithStore 使用现成的存储组装容器，测试与 cmd/seed 复用
func NewContainerWithStore(cfg *config.Config, store repository.Store, queueClient *queue.Client) (*Container, error) {
	c := &Container{
		Config:      cfg,
		Store:       store,
		QueueClient: queueClient,
		Sessions:    session.NewManager(cfg.Session),
	}

	if cfg.Store.Seed {
		if _, err := seed.Run(store, seed.Options{
			AdminUsername:     cfg.Admin.Username,
			AdminPassword:     cfg.Admin.Password,
			AdminPasswordHash: cfg.Admin.PasswordHash,
		}); err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
	}

	c.initServices()
	return c, nil
}

// OpenStore 按 store.driver 构造内容存储
func OpenStore(cfg *config.StoreConfig, debug bool) (repository.Store, error) {
	switch cfg.Driver {
	case "", constants.StoreDriverMemory:
		return repository.NewMemoryStore(), nil
	case constants.StoreDriverSQLite, constants.StoreDriverPostgres:
		db, err := models.OpenDB(cfg.Driver, cfg.DSN, models.DBPoolConfig{
			MaxOpenConns:           cfg.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: cfg.Pool.ConnMaxIdleTimeSeconds,
		}, debug)
		if err != nil {
			return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
		}
		if err := models.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("migrate %s store: %w", cfg.Driver, err)
		}
		return repository.NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Driver)
	}
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.PostService = service.NewPostService(c.Store.Posts())
	c.ApplicationService = service.NewApplicationService(c.Store.Applications())
	c.ContactService = service.NewContactService(c.Store.Contacts(), c.QueueClient, c.EmailService)
	c.ChatbotService = service.NewChatbotService(c.Store.ChatbotQas())
	c.AuthService = service.NewAuthService(c.Store.Users())
	c.LinkedInService = service.NewLinkedInService(c.buildLinkedInClient(), c.buildLinkedInStore())
}

// buildLinkedInClient 未配置凭据时返回无类型 nil，服务据此判断未配置
func (c *Container) buildLinkedInClient() service.LinkedInClient {
	cfg := c.Config.LinkedIn
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		logger.Warnw("provider_linkedin_not_configured")
		return nil
	}
	client, err := linkedin.NewClient(linkedin.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL(),
		AuthURL:      cfg.AuthURL,
		TokenURL:     cfg.TokenURL,
		APIBaseURL:   cfg.APIBaseURL,
		Scopes:       cfg.Scopes,
		Timeout:      time.Duration(cfg.TimeoutMS) * time.Millisecond,
	}, http.DefaultClient)
	if err != nil {
		logger.Errorw("provider_init_linkedin_client_failed", "error", err)
		return nil
	}
	return client
}

func (c *Container) buildLinkedInStore() service.LinkedInConnectionStore {
	if c.Config.LinkedIn.TokenStore == constants.TokenStoreRedis {
		if cache.Enabled() {
			return cache.NewLinkedInConnectionStore()
		}
		logger.Warnw("provider_linkedin_token_store_fallback", "requested", constants.TokenStoreRedis, "using", constants.TokenStoreMemory)
	}
	return service.NewMemoryLinkedInConnectionStore()
}

// Close 释放存储、队列与缓存连接
func (c *Container) Close() error {
	var errs []error
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := cache.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
