package repository

import (
	"context"
	"fmt"

	"github.com/blog-api/internal/database"
	"github.com/blog-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment. The referenced article is not checked here;
// a dangling article_id fails on the foreign key.
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, content, article_id, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		comment.ID, comment.Content, comment.ArticleID, comment.AuthorID,
	).Scan(&comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

const listCommentsByArticleQuery = `
	SELECT id, content, article_id, author_id, created_at
	FROM comments WHERE article_id = $1
	ORDER BY seq
`

// ListByArticle returns the comments of an article in insertion order
func (r *commentRepo) ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)

	rows, err := r.db.QueryContext(ctx, listCommentsByArticleQuery, articleID)
	if IsInvalidInput(err) {
		return comments, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list comments for article %s: %w", articleID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.Content, &comment.ArticleID, &comment.AuthorID, &comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments for article %s: %w", articleID, err)
	}
	return comments, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
