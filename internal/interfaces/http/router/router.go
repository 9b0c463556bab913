package router

import (
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/auth"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/config"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/logger"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/handler"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	System       *handler.SystemHandler
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Registration *handler.RegistrationHandler
	Community    *handler.CommunityHandler
	Announcement *handler.AnnouncementHandler
	ExchangeRate *handler.ExchangeRateHandler
	Product      *handler.ProductHandler
}

// New assembles the gin engine: common middleware, then every route
// group under /api.
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.CORS(cfg.HTTP.CORSAllowOrigins),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)

	api := engine.Group("/api")
	requireAuth := middleware.RequireAuth(jwtService)
	requireAdmin := middleware.RequireAdmin()

	api.GET("/health", h.System.Health)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", requireAuth, h.Auth.Me)
	}

	users := api.Group("/users")
	{
		users.GET("/stats", h.User.Stats)
		users.GET("/profile/:id", h.User.Profile)
		users.PUT("/profile", requireAuth, h.User.UpdateProfile)
		users.GET("", requireAuth, requireAdmin, h.User.List)
	}

	registrations := api.Group("/registrations")
	{
		registrations.POST("/submit", h.Registration.Submit)
		registrations.GET("", requireAuth, requireAdmin, h.Registration.List)
		registrations.GET("/:id", requireAuth, requireAdmin, h.Registration.Get)
		registrations.PATCH("/:id/status", requireAuth, requireAdmin, h.Registration.UpdateStatus)
	}

	community := api.Group("/community")
	{
		community.GET("/posts", h.Community.ListPosts)
		community.GET("/posts/category/:category", h.Community.ListPostsByCategory)
		community.GET("/posts/:id", h.Community.GetPost)
		community.GET("/posts/:id/comments", h.Community.ListComments)
		community.GET("/categories", h.Community.ListCategories)

		community.POST("/posts", requireAuth, h.Community.CreatePost)
		community.PUT("/posts/:id", requireAuth, h.Community.UpdatePost)
		community.DELETE("/posts/:id", requireAuth, h.Community.DeletePost)
		community.POST("/posts/:id/comments", requireAuth, h.Community.AddComment)
		community.DELETE("/comments/:id", requireAuth, h.Community.DeleteComment)
		community.POST("/posts/:id/like", requireAuth, h.Community.ToggleLike)
	}

	announcements := api.Group("/announcements")
	{
		announcements.GET("", h.Announcement.List)
		announcements.GET("/:id", h.Announcement.Get)
		announcements.POST("", requireAuth, requireAdmin, h.Announcement.Create)
		announcements.PUT("/:id", requireAuth, requireAdmin, h.Announcement.Update)
		announcements.DELETE("/:id", requireAuth, requireAdmin, h.Announcement.Delete)
	}

	rates := api.Group("/exchange-rates")
	{
		rates.GET("/current", h.ExchangeRate.Current)
		rates.GET("/history", h.ExchangeRate.History)
		rates.POST("/update", requireAuth, requireAdmin, h.ExchangeRate.Update)
	}

	products := api.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", requireAuth, requireAdmin, h.Product.Create)
		products.DELETE("/:id", requireAuth, requireAdmin, h.Product.Delete)
	}

	return engine
}
