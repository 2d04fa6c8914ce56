package api

import (
	"context"
	"net/http"
	"time"

	"github.com/company-site-api/internal/config"
	"github.com/company-site-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const serviceName = "company-site-api"

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.Server.AllowOrigin))

	// Handlers
	authHandler := NewAuthHandler(services, log)
	companyHandler := NewCompanyHandler(services, log)
	productHandler := NewProductHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	faqHandler := NewFAQHandler(services, log)
	gate := requireAdmin(services.Auth, log)

	// Health check
	router.GET("/health", healthCheck(services))

	// Stored images, read-only
	router.Static(cfg.Media.URLPrefix, cfg.Media.UploadDir)

	router.POST("/auth/login", authHandler.Login)

	// Public catalog and content
	router.GET("/company", companyHandler.GetProfile)
	router.PUT("/company", gate, companyHandler.UpdateProfile)
	router.GET("/products", productHandler.ListPublic)
	router.GET("/products/:id", productHandler.GetPublic)
	router.GET("/categories", productHandler.ListCategories)
	router.GET("/articles", articleHandler.ListPublic)
	router.GET("/articles/:id", articleHandler.GetPublic)
	router.GET("/faqs", faqHandler.ListPublic)

	// Admin panel
	admin := router.Group("/admin", gate)
	{
		admin.GET("/me", authHandler.Me)

		products := admin.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		articles := admin.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.GET("/:id", articleHandler.Get)
			articles.POST("", articleHandler.Create)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
		}

		faqs := admin.Group("/faqs")
		{
			faqs.GET("", faqHandler.List)
			faqs.GET("/:id", faqHandler.Get)
			faqs.POST("", faqHandler.Create)
			faqs.PUT("/:id", faqHandler.Update)
			faqs.DELETE("/:id", faqHandler.Delete)
		}
	}

	return router
}

// healthCheck returns the health status, including database reachability
func healthCheck(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := contextWithTimeout(c, 2*time.Second)
		defer cancel()

		status, code := "healthy", http.StatusOK
		if err := services.Health.Check(ctx); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Str("path", c.Request.URL.Path).Msg("Panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware(allowOrigin string) gin.HandlerFunc {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// contextWithTimeout creates a context with timeout for handlers
func contextWithTimeout(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
