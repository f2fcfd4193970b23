package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"qbrain-backend/internal/infrastructure/storage"
	"qbrain-backend/internal/shared/middleware"
	"qbrain-backend/internal/shared/response"
	"qbrain-backend/pkg/container"
)

func SetupRouter(c *container.Container, stop <-chan struct{}) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = storage.MaxUploadSize

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIPMiddleware(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.AllowedOrigins),
	)

	// Rate limiters cho form submit và login
	rl := c.Config.RateLimit
	submitLimiter := middleware.NewIPRateLimiter(rl.SubmitPerMinute, rl.SubmitBurst)
	loginLimiter := middleware.NewIPRateLimiter(rl.LoginPerMinute, rl.LoginBurst)
	submitLimiter.StartCleanup(5*time.Minute, stop)
	loginLimiter.StartCleanup(5*time.Minute, stop)

	// File local được serve trực tiếp như server cũ
	if c.Local != nil {
		router.Static("/uploads", c.Local.Dir())
	}
	router.GET("/sitemap.xml", c.BlogHandler.Sitemap)

	api := router.Group("/api")
	{
		api.GET("/health", c.HealthHandler.Health)

		setupPublicRoutes(api, c)
		setupFormRoutes(api, c, middleware.RateLimit(submitLimiter))
		api.POST("/admin/login", middleware.RateLimit(loginLimiter), c.AuthHandler.Login)
		setupAdminRoutes(api, c)
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})

	return router
}

// ========================================
// PUBLIC ROUTES
// ========================================
func setupPublicRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/site", c.SiteHandler.Get)
	api.GET("/team", c.TeamHandler.List)
	api.GET("/achievements", c.AchievementHandler.List)

	blog := api.Group("/blog")
	{
		blog.GET("", c.BlogHandler.ListPublished)
		blog.GET("/rss.xml", c.BlogHandler.RSS)
		blog.GET("/:slug", c.BlogHandler.GetBySlug)
	}

	api.GET("/theme", c.ThemeHandler.Get)
	api.GET("/theme.css", c.ThemeHandler.CSS)
	api.GET("/theme/live", c.ThemeHandler.Live)
}

// ========================================
// FORM ROUTES (mail relay)
// ========================================
func setupFormRoutes(api *gin.RouterGroup, c *container.Container, limit gin.HandlerFunc) {
	api.POST("/contact", limit, c.ContactHandler.Submit)
	api.POST("/application", limit, c.ApplicationHandler.Submit)
	api.POST("/upload", limit, c.MediaHandler.Upload)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.GET("/me", c.AuthHandler.Me)
		admin.GET("/stats", c.DashboardHandler.Stats)

		team := admin.Group("/team")
		{
			team.GET("", c.TeamHandler.List)
			team.POST("", c.TeamHandler.Create)
			team.GET("/:id", c.TeamHandler.Get)
			team.PUT("/:id", c.TeamHandler.Update)
			team.DELETE("/:id", c.TeamHandler.Delete)
		}

		achievements := admin.Group("/achievements")
		{
			achievements.GET("", c.AchievementHandler.List)
			achievements.POST("", c.AchievementHandler.Create)
			achievements.GET("/:id", c.AchievementHandler.Get)
			achievements.PUT("/:id", c.AchievementHandler.Update)
			achievements.DELETE("/:id", c.AchievementHandler.Delete)
		}

		blog := admin.Group("/blog")
		{
			blog.GET("", c.BlogHandler.ListAll)
			blog.POST("", c.BlogHandler.Create)
			blog.GET("/:id", c.BlogHandler.Get)
			blog.PUT("/:id", c.BlogHandler.Update)
			blog.DELETE("/:id", c.BlogHandler.Delete)
		}

		applications := admin.Group("/applications")
		{
			applications.GET("", c.ApplicationHandler.List)
			applications.GET("/export", c.ApplicationHandler.Export)
			applications.GET("/:id", c.ApplicationHandler.Get)
			applications.PATCH("/:id/status", c.ApplicationHandler.UpdateStatus)
			applications.DELETE("/:id", c.ApplicationHandler.Delete)
		}

		messages := admin.Group("/messages")
		{
			messages.GET("", c.ContactHandler.List)
			messages.PATCH("/:id/status", c.ContactHandler.UpdateStatus)
			messages.DELETE("/:id", c.ContactHandler.Delete)
		}

		theme := admin.Group("/theme")
		{
			theme.PUT("", c.ThemeHandler.Update)
			theme.POST("/reset", c.ThemeHandler.Reset)
		}
	}
}
