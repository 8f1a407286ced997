package models

import (
	"time"
)

// Article represents a published article
type Article struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	AuthorID  string    `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateArticleRequest is the body of POST /admin/post
type CreateArticleRequest struct {
	Title    string     `json:"title" form:"title"`
	Content  string     `json:"content" form:"content"`
	AuthorID Identifier `json:"author_id" form:"author_id"`
}

// ArticleWithComments is the response of GET /articles/:id
type ArticleWithComments struct {
	Article  *Article   `json:"article"`
	Comments []*Comment `json:"comments"`
}

// PublishArticleResponse is the response of POST /admin/post
type PublishArticleResponse struct {
	Message string   `json:"message"`
	Article *Article `json:"article"`
}
