package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// bindRequest decodes a JSON or form body. An empty body decodes to the
// zero value so that presence validation reports every missing field.
func bindRequest(c *gin.Context, v interface{}) error {
	if err := c.ShouldBind(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// respondError maps a service error kind to a status code and JSON body.
// failure is the message shown for store failures and missing articles.
func respondError(c *gin.Context, log zerolog.Logger, err error, failure string) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: validationErr.Error(),
			Errors:  validationErr.Fields,
		})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		// Clients see a missing article as a failed lookup, not a 404.
		log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg(failure)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: failure})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(failure)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: failure})
	}
}
