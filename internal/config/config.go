package config

import (
	"fmt"
	"strings"

	"github.com/David-iadg/consult-ia/internal/logger"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Store     StoreConfig     `mapstructure:"store"`
	Session   SessionConfig   `mapstructure:"session"`
	Admin     AdminConfig     `mapstructure:"admin"`
	LinkedIn  LinkedInConfig  `mapstructure:"linkedin"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Queue     QueueConfig     `mapstructure:"queue"`
	Email     EmailConfig     `mapstructure:"email"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release
}

// Addr 监听地址
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// LogConfig 日志配置
type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// StorePoolConfig SQL 连接池配置
type StorePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds"`
}

// StoreConfig 内容存储配置
type StoreConfig struct {
	Driver string          `mapstructure:"driver"` // memory / sqlite / postgres
	DSN    string          `mapstructure:"dsn"`
	Seed   bool            `mapstructure:"seed"` // 空库时写入示例数据
	Pool   StorePoolConfig `mapstructure:"pool"`
}

// SessionConfig 会话 Cookie 配置
type SessionConfig struct {
	Secret        string `mapstructure:"secret"`
	Name          string `mapstructure:"name"`
	MaxAgeSeconds int    `mapstructure:"max_age_seconds"`
	Secure        bool   `mapstructure:"secure"`
	SameSite      string `mapstructure:"same_site"` // lax / strict / none
	Path          string `mapstructure:"path"`
}

// AdminConfig 种子管理员账号
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"password_hash"` // 非空时优先于明文密码
}

// LinkedInConfig LinkedIn 分享集成配置
type LinkedInConfig struct {
	ClientID          string   `mapstructure:"client_id"`
	ClientSecret      string   `mapstructure:"client_secret"`
	RedirectBaseURL   string   `mapstructure:"redirect_base_url"`
	CallbackPath      string   `mapstructure:"callback_path"`
	AdminRedirectPath string   `mapstructure:"admin_redirect_path"`
	AuthURL           string   `mapstructure:"auth_url"`
	TokenURL          string   `mapstructure:"token_url"`
	APIBaseURL        string   `mapstructure:"api_base_url"`
	Scopes            []string `mapstructure:"scopes"`
	TimeoutMS         int      `mapstructure:"timeout_ms"`  // 0 表示不设超时
	TokenStore        string   `mapstructure:"token_store"` // memory / redis
}

// RedirectURL 回调完整地址
func (c LinkedInConfig) RedirectURL() string {
	return strings.TrimRight(strings.TrimSpace(c.RedirectBaseURL), "/") + c.CallbackPath
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Addr host:port，缺省指向本机 6379
func (c RedisConfig) Addr() string {
	return redisAddr(c.Host, c.Port)
}

// QueueConfig 异步队列配置
type QueueConfig struct {
	Enabled     bool           `mapstructure:"enabled"`
	Host        string         `mapstructure:"host"`
	Port        int            `mapstructure:"port"`
	Password    string         `mapstructure:"password"`
	DB          int            `mapstructure:"db"`
	Concurrency int            `mapstructure:"concurrency"`
	Queues      map[string]int `mapstructure:"queues"`
}

// Addr 队列所用 Redis 地址
func (c QueueConfig) Addr() string {
	return redisAddr(c.Host, c.Port)
}

func redisAddr(host string, port int) string {
	host = strings.TrimSpace(host)
	if host == "" {
		host = "127.0.0.1"
	}
	if port <= 0 {
		port = 6379
	}
	return fmt.Sprintf("%s:%d", host, port)
}

// EmailConfig 邮件服务配置
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`
	UseTLS   bool   `mapstructure:"use_tls"`
	UseSSL   bool   `mapstructure:"use_ssl"`
	NotifyTo string `mapstructure:"notify_to"` // 联系表单通知收件人
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// RateLimitRuleConfig 单条限流规则，任一值为 0 表示关闭
type RateLimitRuleConfig struct {
	WindowSeconds int `mapstructure:"window_seconds"`
	MaxRequests   int `mapstructure:"max_requests"`
}

// RateLimitConfig 公开写接口限流（依赖 Redis）
type RateLimitConfig struct {
	Login   RateLimitRuleConfig `mapstructure:"login"`
	Contact RateLimitRuleConfig `mapstructure:"contact"`
}

// Load 从 config.yml 加载配置
func Load() *Config {
	v := viper.GetViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("../") // 如果从 cmd/server 运行
	v.AddConfigPath("./etc")

	// 环境变量支持，例如 linkedin.client_id -> LINKEDIN_CLIENT_ID
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		logger.Warnw("config_file_read_failed",
			"error", err,
			"fallback", "env_or_defaults",
		)
	} else {
		logger.Infow("config_file_loaded", "file", v.ConfigFileUsed())
	}

	cfg, err := Decode(v)
	if err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		panic(fmt.Errorf("配置解析失败: %w", err))
	}
	return cfg
}

// Decode 在给定 viper 实例上补齐默认值并解析
func Decode(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return &cfg, nil
}

// SetDefaults 设置全部默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("log.dir", "")
	v.SetDefault("log.filename", "app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)

	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.dsn", "./db/consult.db")
	v.SetDefault("store.seed", true)
	v.SetDefault("store.pool.max_open_conns", 1)
	v.SetDefault("store.pool.max_idle_conns", 1)
	v.SetDefault("store.pool.conn_max_lifetime_seconds", 0)
	v.SetDefault("store.pool.conn_max_idle_time_seconds", 0)

	v.SetDefault("session.secret", "consult-ia-secret")
	v.SetDefault("session.name", "consult_session")
	v.SetDefault("session.max_age_seconds", 86400)
	v.SetDefault("session.secure", false)
	v.SetDefault("session.same_site", "lax")
	v.SetDefault("session.path", "/")

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "password")
	v.SetDefault("admin.password_hash", "")

	v.SetDefault("linkedin.client_id", "")
	v.SetDefault("linkedin.client_secret", "")
	v.SetDefault("linkedin.redirect_base_url", "http://localhost:5000")
	v.SetDefault("linkedin.callback_path", "/api/auth/linkedin/callback")
	v.SetDefault("linkedin.admin_redirect_path", "/admin")
	v.SetDefault("linkedin.auth_url", "https://www.linkedin.com/oauth/v2/authorization")
	v.SetDefault("linkedin.token_url", "https://www.linkedin.com/oauth/v2/accessToken")
	v.SetDefault("linkedin.api_base_url", "https://api.linkedin.com/v2")
	v.SetDefault("linkedin.scopes", []string{"r_liteprofile", "r_emailaddress", "w_member_social"})
	v.SetDefault("linkedin.timeout_ms", 0)
	v.SetDefault("linkedin.token_store", "memory")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "consult")

	v.SetDefault("queue.enabled", false)
	v.SetDefault("queue.host", "127.0.0.1")
	v.SetDefault("queue.port", 6379)
	v.SetDefault("queue.password", "")
	v.SetDefault("queue.db", 1)
	v.SetDefault("queue.concurrency", 4)
	v.SetDefault("queue.queues", map[string]int{
		"default": 1,
	})

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.host", "")
	v.SetDefault("email.port", 587)
	v.SetDefault("email.username", "")
	v.SetDefault("email.password", "")
	v.SetDefault("email.from", "")
	v.SetDefault("email.from_name", "Consult IA")
	v.SetDefault("email.use_tls", true)
	v.SetDefault("email.use_ssl", false)
	v.SetDefault("email.notify_to", "")

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{
		"Content-Type",
		"Content-Length",
		"Accept-Encoding",
		"Accept-Language",
		"Cache-Control",
		"X-Requested-With",
		"X-Locale",
	})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", 600)

	v.SetDefault("rate_limit.login.window_seconds", 300)
	v.SetDefault("rate_limit.login.max_requests", 10)
	v.SetDefault("rate_limit.contact.window_seconds", 600)
	v.SetDefault("rate_limit.contact.max_requests", 5)
}

func (c *Config) normalize() {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	c.LinkedIn.TokenStore = strings.ToLower(strings.TrimSpace(c.LinkedIn.TokenStore))
	c.LinkedIn.ClientID = strings.TrimSpace(c.LinkedIn.ClientID)
	c.LinkedIn.ClientSecret = strings.TrimSpace(c.LinkedIn.ClientSecret)
	if c.LinkedIn.CallbackPath != "" && !strings.HasPrefix(c.LinkedIn.CallbackPath, "/") {
		c.LinkedIn.CallbackPath = "/" + c.LinkedIn.CallbackPath
	}
	if c.Session.MaxAgeSeconds <= 0 {
		c.Session.MaxAgeSeconds = 86400
	}
}
