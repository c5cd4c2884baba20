package router

import (
	"fmt"
	"net/http"

	"github.com/David-iadg/consult-ia/internal/cache"
	"github.com/David-iadg/consult-ia/internal/config"
	adminhandlers "github.com/David-iadg/consult-ia/internal/http/handlers/admin"
	publichandlers "github.com/David-iadg/consult-ia/internal/http/handlers/public"
	handlershared "github.com/David-iadg/consult-ia/internal/http/handlers/shared"
	"github.com/David-iadg/consult-ia/internal/logger"
	"github.com/David-iadg/consult-ia/internal/provider"

	"github.com/gin-gonic/gin"
)

const defaultLinkedInCallbackPath = "/api/auth/linkedin/callback"

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	handlershared.RegisterJSONFieldNames()

	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := cache.Prefix()
	redisClient := cache.Client()
	loginLimit := RateLimitMiddleware(redisClient,
		NewRateLimitRule(fmt.Sprintf("%s:rate:login", redisPrefix), cfg.RateLimit.Login),
		KeyByIPAndJSONField("username"),
	)
	contactLimit := RateLimitMiddleware(redisClient,
		NewRateLimitRule(fmt.Sprintf("%s:rate:contact", redisPrefix), cfg.RateLimit.Contact),
		KeyByIP,
	)
	requireAuth := RequireAuth(c.Sessions, c.AuthService)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(logger.Z()))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(SessionMiddleware(c.Sessions))

	api := r.Group("/api")
	{
		// 文章
		api.GET("/posts", publicHandler.GetPosts)
		api.GET("/posts/by-slug/:slug", publicHandler.GetPostBySlug)
		api.GET("/posts/:id", publicHandler.GetPost)
		api.POST("/posts", requireAuth, adminHandler.CreatePost)
		api.PUT("/posts/:id", requireAuth, adminHandler.UpdatePost)
		api.DELETE("/posts/:id", requireAuth, adminHandler.DeletePost)

		// 实验室应用
		api.GET("/applications", publicHandler.GetApplications)
		api.GET("/applications/:id", publicHandler.GetApplication)
		api.POST("/applications", requireAuth, adminHandler.CreateApplication)
		api.PUT("/applications/:id", requireAuth, adminHandler.UpdateApplication)
		api.DELETE("/applications/:id", requireAuth, adminHandler.DeleteApplication)

		// 联系表单
		api.POST("/contact", contactLimit, publicHandler.SubmitContact)
		api.GET("/contact/submissions", requireAuth, adminHandler.GetContactSubmissions)

		// 聊天机器人
		api.GET("/chatbot/qa", publicHandler.GetChatbotQas)
		api.POST("/chatbot/qa", requireAuth, adminHandler.CreateChatbotQa)
		api.POST("/chatbot/message", publicHandler.SendChatbotMessage)

		// 登录
		api.POST("/auth/login", loginLimit, publicHandler.Login)
		api.POST("/auth/logout", publicHandler.Logout)
		api.GET("/auth/user", requireAuth, publicHandler.CurrentUser)

		// LinkedIn 分享
		api.GET("/linkedin/auth", requireAuth, adminHandler.LinkedInAuth)
		api.GET("/linkedin/status", requireAuth, adminHandler.LinkedInStatus)
		api.POST("/linkedin/share", requireAuth, adminHandler.LinkedInShare)
	}

	// 回调地址可配置，会话校验在处理器内完成
	callbackPath := cfg.LinkedIn.CallbackPath
	if callbackPath == "" {
		callbackPath = defaultLinkedInCallbackPath
	}
	r.GET(callbackPath, adminHandler.LinkedInCallback)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
