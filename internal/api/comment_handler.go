package api

import (
	"net/http"

	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// CreateComment handles POST /comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := bindRequest(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid request body"})
		return
	}

	comment, err := h.services.Comment.AddComment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "failed to add comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}
