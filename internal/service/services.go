package service

import (
	"context"

	"github.com/blog-api/internal/auth"
	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	ListArticles(ctx context.Context) ([]*models.Article, error)
	GetArticleWithComments(ctx context.Context, id string) (*models.ArticleWithComments, error)
	PublishArticle(ctx context.Context, principal *auth.Principal, req *models.CreateArticleRequest) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	AddComment(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error)
}

// AuthService verifies credentials and provisions users
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*auth.Principal, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
}

// StatsService reports store health and row counts
type StatsService interface {
	HealthCheck(ctx context.Context) error
	GetCount(ctx context.Context, resource string) (int, error)
}

// Pinger is satisfied by *database.DB
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
	Comment CommentService
	Auth    AuthService
	Stats   StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, pinger Pinger, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Article: newArticleService(repos, log),
		Comment: newCommentService(repos, log),
		Auth:    newAuthService(repos, cfg, log),
		Stats:   newStatsService(repos, pinger),
	}
}
