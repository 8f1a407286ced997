package api

import (
	"context"
	"net/http"
	"time"

	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/service"
	"github.com/blog-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const healthTimeout = 2 * time.Second

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(authMiddleware(services.Auth, log))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "route not found"})
	})

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)

	// Health check
	router.GET("/health", healthCheck(services))
	router.GET("/metrics", metricsHandler(services, log))

	router.GET("/articles", articleHandler.ListArticles)
	router.GET("/articles/:id", articleHandler.GetArticle)
	router.POST("/comments", commentHandler.CreateComment)

	admin := router.Group("/admin", requireAdmin())
	{
		admin.POST("/post", articleHandler.PublishArticle)
	}

	return router
}

// healthCheck returns the health status, 503 when the store is unreachable
func healthCheck(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := contextWithTimeout(c, healthTimeout)
		defer cancel()

		status, code := "healthy", http.StatusOK
		if err := services.Stats.HealthCheck(ctx); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   logger.ServiceName,
		})
	}
}

// metricsHandler returns row counts, 500 when a count cannot be read
func metricsHandler(services *service.Services, log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("handler", "metrics").Logger()

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		articlesCount, err := services.Stats.GetCount(ctx, "articles")
		if err != nil {
			respondError(c, log, err, "failed to retrieve metrics")
			return
		}
		commentsCount, err := services.Stats.GetCount(ctx, "comments")
		if err != nil {
			respondError(c, log, err, "failed to retrieve metrics")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"articles": articlesCount,
				"comments": commentsCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// contextWithTimeout creates a context with timeout for handlers
func contextWithTimeout(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
