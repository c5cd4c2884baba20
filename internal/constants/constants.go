package constants

// 站点语言
const (
	LanguageFR      = "fr"
	LanguageEN      = "en"
	LanguageES      = "es"
	DefaultLanguage = LanguageFR
)

// SupportedLanguages 支持的语言列表（按优先级）
var SupportedLanguages = []string{LanguageFR, LanguageEN, LanguageES}

// 联系表单状态
const (
	ContactStatusNew = "new"
)

// 内容存储驱动
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// LinkedIn 连接存储驱动
const (
	TokenStoreMemory = "memory"
	TokenStoreRedis  = "redis"
)

// 会话字段
const (
	SessionKeyUserID        = "userId"
	SessionKeyUsername      = "username"
	SessionKeyLinkedInState = "linkedinState"
)

// LinkedIn 回调跳转参数
const (
	LinkedInSuccessQuery = "linkedinSuccess"
	LinkedInErrorQuery   = "linkedinError"
)

// 队列
const (
	QueueDefault            = "default"
	TaskContactNotification = "contact:notify"
)
