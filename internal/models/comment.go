package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	ID        string    `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	ArticleID string    `json:"article_id" db:"article_id"`
	AuthorID  string    `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateCommentRequest is the body of POST /comments
type CreateCommentRequest struct {
	Content   string     `json:"content" form:"content"`
	ArticleID Identifier `json:"article_id" form:"article_id"`
	AuthorID  Identifier `json:"author_id" form:"author_id"`
}
