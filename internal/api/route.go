package api

import (
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func NewRouter(hg *HandlersGroup) *gin.Engine {
	engine := gin.New()
	logger.SetupGin(engine)
	engine.Use(middleware.Cors(), middleware.Trace())

	requireAuth := middleware.Auth(hg.AuthService, hg.UserService)
	optionalAuth := middleware.AuthOptional(hg.AuthService, hg.UserService)

	apiGroup := engine.Group("/api")

	content := apiGroup.Group("/content")
	{
		content.GET("/posts", optionalAuth, hg.Content.ListPosts)
		content.GET("/posts/:id", optionalAuth, hg.Content.GetPost)
		content.GET("/posts/:id/comments", hg.Content.ListComments)

		content.POST("/posts/:id/comments", requireAuth, hg.Content.CreateComment)
		content.POST("/posts/:id/like", requireAuth, hg.Content.Like)
		content.POST("/posts/:id/dislike", requireAuth, hg.Content.Dislike)
		content.POST("/posts/:id/favorite", requireAuth, hg.Content.Favorite)
		content.POST("/posts/:id/unfavorite", requireAuth, hg.Content.Unfavorite)
	}

	admin := apiGroup.Group("/admin", requireAuth, middleware.RequireAdmin(), middleware.Audit())
	{
		admin.GET("/posts", hg.Admin.ListPosts)
		admin.GET("/posts/:id", hg.Admin.GetPost)
		admin.POST("/posts", hg.Admin.CreatePost)
		admin.PUT("/posts/:id", hg.Admin.UpdatePost)
		admin.PUT("/posts/:id/status", hg.Admin.UpdatePostStatus)
		admin.GET("/metrics", hg.Admin.GetMetrics)
		admin.POST("/media/upload", hg.Admin.UploadImage)
	}

	assistant := apiGroup.Group("/assistant", requireAuth)
	{
		assistant.POST("/chat", hg.Assistant.Chat)
	}

	notifications := apiGroup.Group("/notifications", requireAuth)
	{
		notifications.POST("/subscriptions", hg.Notification.Subscribe)
	}

	auth := apiGroup.Group("/auth", requireAuth)
	{
		auth.POST("/logout", hg.Auth.Logout)
	}

	// Provider callbacks authenticate with a shared secret, not a user
	// token.
	apiGroup.POST("/billing/webhook", hg.Billing.Webhook)

	return engine
}
