package service

import (
	"context"
	"errors"

	"github.com/blog-api/internal/auth"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/blog-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newArticleService(repos *repository.Repositories, log zerolog.Logger) *articleService {
	return &articleService{
		repos: repos,
		log:   log.With().Str("service", "article").Logger(),
	}
}

// ListArticles returns every article in store order
func (s *articleService) ListArticles(ctx context.Context) ([]*models.Article, error) {
	articles, err := s.repos.Article.List(ctx)
	if err != nil {
		return nil, storeError("list articles", err)
	}
	return articles, nil
}

// GetArticleWithComments loads an article and then its comments. The two
// reads are independent; a comment inserted in between may or may not show.
func (s *articleService) GetArticleWithComments(ctx context.Context, id string) (*models.ArticleWithComments, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	article, err := s.repos.Article.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeError("get article", err)
	}

	comments, err := s.repos.Comment.ListByArticle(ctx, id)
	if err != nil {
		return nil, storeError("list comments", err)
	}

	return &models.ArticleWithComments{
		Article:  article,
		Comments: comments,
	}, nil
}

// PublishArticle creates an article on behalf of an admin principal
func (s *articleService) PublishArticle(ctx context.Context, principal *auth.Principal, req *models.CreateArticleRequest) (*models.Article, error) {
	if principal == nil || !principal.IsAdmin {
		return nil, ErrForbidden
	}

	if fields := validation.ValidateArticle(req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	article := &models.Article{
		ID:       uuid.New().String(),
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID.String(),
	}
	if err := s.repos.Article.Create(ctx, article); err != nil {
		return nil, storeError("publish article", err)
	}

	s.log.Info().
		Str("article_id", article.ID).
		Str("author_id", article.AuthorID).
		Str("published_by", principal.UserID).
		Msg("Article published")

	return article, nil
}
