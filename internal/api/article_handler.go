package api

import (
	"net/http"

	"github.com/blog-api/internal/auth"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const publishedMessage = "article published successfully"

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	articles, err := h.services.Article.ListArticles(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "failed to retrieve articles")
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticle handles GET /articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	result, err := h.services.Article.GetArticleWithComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "failed to retrieve article or comments")
		return
	}
	c.JSON(http.StatusOK, result)
}

// PublishArticle handles POST /admin/post
func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := bindRequest(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid request body"})
		return
	}

	principal := auth.FromContext(c.Request.Context())
	article, err := h.services.Article.PublishArticle(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, h.log, err, "failed to publish article")
		return
	}

	c.JSON(http.StatusCreated, models.PublishArticleResponse{
		Message: publishedMessage,
		Article: article,
	})
}
