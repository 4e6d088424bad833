package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/disha-labs/disha-backend/internal/http/handlers"
	"github.com/disha-labs/disha-backend/internal/http/middleware"
	"github.com/disha-labs/disha-backend/internal/observability"
	"github.com/disha-labs/disha-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	AuthMiddleware *middleware.AuthMiddleware

	AuthHandler      *handlers.AuthHandler
	UserHandler      *handlers.UserHandler
	ProfileHandler   *handlers.ProfileHandler
	CatalogHandler   *handlers.CatalogHandler
	ChatHandler      *handlers.ChatHandler
	ProgressHandler  *handlers.ProgressHandler
	SavedItemHandler *handlers.SavedItemHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.AttachTraceContext())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.Metrics(cfg.Metrics))
	router.Use(middleware.RequestLogger(cfg.Log))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/metrics", cfg.Metrics.Handler())
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	protected.GET("/profile", cfg.ProfileHandler.Get)
	protected.PUT("/profile", cfg.ProfileHandler.Update)
	// Catalog
	protected.GET("/colleges", cfg.CatalogHandler.ListColleges)
	protected.GET("/colleges/:id", cfg.CatalogHandler.GetCollege)
	protected.GET("/scholarships", cfg.CatalogHandler.ListScholarships)
	protected.GET("/scholarships/:id", cfg.CatalogHandler.GetScholarship)
	protected.GET("/careers", cfg.CatalogHandler.ListCareerPaths)
	protected.GET("/careers/:id", cfg.CatalogHandler.GetCareerPath)
	// Chat
	protected.POST("/chat/conversations", cfg.ChatHandler.CreateConversation)
	protected.GET("/chat/conversations", cfg.ChatHandler.ListConversations)
	protected.GET("/chat/conversations/:id", cfg.ChatHandler.GetConversation)
	protected.PUT("/chat/conversations/:id", cfg.ChatHandler.RenameConversation)
	protected.DELETE("/chat/conversations/:id", cfg.ChatHandler.DeleteConversation)
	protected.GET("/chat/conversations/:id/messages", cfg.ChatHandler.ListMessages)
	protected.POST("/chat/conversations/:id/messages", cfg.ChatHandler.AppendMessage)
	// Progress
	protected.GET("/progress", cfg.ProgressHandler.List)
	protected.GET("/progress/summary", cfg.ProgressHandler.Summary)
	protected.PUT("/progress/:quest_type", cfg.ProgressHandler.Upsert)
	// Saved items
	protected.GET("/saved", cfg.SavedItemHandler.List)
	protected.POST("/saved", cfg.SavedItemHandler.Save)
	protected.DELETE("/saved/:id", cfg.SavedItemHandler.Delete)

	return router
}
