package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/blog-api/internal/auth"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Str("path", c.Request.URL.Path).Msg("Panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
					Message: "internal server error",
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
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// authMiddleware resolves HTTP Basic credentials into a principal on the
// request context. Requests without valid credentials continue anonymously.
func authMiddleware(authService service.AuthService, log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("component", "auth").Logger()

	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		email, password, ok := c.Request.BasicAuth()
		if !ok {
			log.Warn().Str("path", c.Request.URL.Path).Msg("Malformed Authorization header")
			c.Next()
			return
		}

		principal, err := authService.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			event := log.Warn()
			var storeErr *service.StoreError
			if errors.As(err, &storeErr) {
				event = log.Error()
			}
			event.Err(err).Str("email", email).Msg("Authentication failed")
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// requireAdmin lets the request through only for an admin principal
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := auth.FromContext(c.Request.Context())
		if principal == nil || !principal.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Message: service.ErrForbidden.Error(),
			})
			return
		}
		c.Next()
	}
}
