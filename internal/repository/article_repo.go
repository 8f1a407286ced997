package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blog-api/internal/database"
	"github.com/blog-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Create inserts a new article and fills in the store-assigned timestamp
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (id, title, content, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		article.ID, article.Title, article.Content, article.AuthorID,
	).Scan(&article.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// listArticlesQuery orders by the insertion sequence; created_at can tie
const listArticlesQuery = `SELECT id, title, content, author_id, created_at FROM articles ORDER BY seq`

// List returns every article in insertion order
func (r *articleRepo) List(ctx context.Context) ([]*models.Article, error) {
	rows, err := r.db.QueryContext(ctx, listArticlesQuery)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*models.Article, 0)
	for rows.Next() {
		var article models.Article
		err := rows.Scan(
			&article.ID, &article.Title, &article.Content, &article.AuthorID, &article.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `SELECT id, title, content, author_id, created_at FROM articles WHERE id = $1`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID, &article.Title, &article.Content, &article.AuthorID, &article.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) || IsInvalidInput(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article %s: %w", id, err)
	}

	return &article, nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}
