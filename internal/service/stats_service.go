package service

import (
	"context"
	"fmt"

	"github.com/blog-api/internal/repository"
)

// statsService is the concrete implementation of StatsService
type statsService struct {
	repos  *repository.Repositories
	pinger Pinger
}

func newStatsService(repos *repository.Repositories, pinger Pinger) *statsService {
	return &statsService{repos: repos, pinger: pinger}
}

// HealthCheck pings the store
func (s *statsService) HealthCheck(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	return s.pinger.HealthCheck(ctx)
}

// GetCount returns the row count for a resource
func (s *statsService) GetCount(ctx context.Context, resource string) (int, error) {
	var (
		count int
		err   error
	)
	switch resource {
	case "articles":
		count, err = s.repos.Article.Count(ctx)
	case "comments":
		count, err = s.repos.Comment.Count(ctx)
	default:
		return 0, fmt.Errorf("unknown resource: %s", resource)
	}
	if err != nil {
		return 0, storeError("count "+resource, err)
	}
	return count, nil
}
