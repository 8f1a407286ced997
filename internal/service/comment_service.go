package service

import (
	"context"

	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/blog-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newCommentService(repos *repository.Repositories, log zerolog.Logger) *commentService {
	return &commentService{
		repos: repos,
		log:   log.With().Str("service", "comment").Logger(),
	}
}

// AddComment stores a new comment. article_id is passed through as given;
// whether it references an existing article is left to the store.
func (s *commentService) AddComment(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error) {
	if fields := validation.ValidateComment(req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		Content:   req.Content,
		ArticleID: req.ArticleID.String(),
		AuthorID:  req.AuthorID.String(),
	}
	if err := s.repos.Comment.Create(ctx, comment); err != nil {
		return nil, storeError("add comment", err)
	}

	s.log.Debug().
		Str("comment_id", comment.ID).
		Str("article_id", comment.ArticleID).
		Msg("Comment added")

	return comment, nil
}
