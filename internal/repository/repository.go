package repository

import (
	"context"
	"errors"

	"github.com/blog-api/internal/database"
	"github.com/blog-api/internal/models"
	"github.com/lib/pq"
)

// ErrNotFound is returned when a single-row lookup matches nothing
var ErrNotFound = errors.New("record not found")

// invalidTextRepresentation is raised by Postgres when a UUID column is
// compared against a malformed literal.
const invalidTextRepresentation = "22P02"

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	List(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
	}
}

// IsInvalidInput reports whether err is Postgres rejecting a malformed
// literal, such as a non-UUID id.
func IsInvalidInput(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == invalidTextRepresentation
	}
	return false
}
