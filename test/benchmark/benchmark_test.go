package benchmark

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blog-api/internal/api"
	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/mocks"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/service"
	"github.com/blog-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func newRouter(b *testing.B) (*gin.Engine, *mocks.MockArticleRepository) {
	b.Helper()
	gin.SetMode(gin.TestMode)

	repos, articleRepo, _, _ := mocks.NewRepositories()
	services := service.NewServices(repos, &mocks.MockPinger{}, &config.Config{}, zerolog.Nop())
	return api.NewRouter(services, zerolog.Nop()), articleRepo
}

// BenchmarkListArticles benchmarks GET /articles over 1000 rows
func BenchmarkListArticles(b *testing.B) {
	router, articleRepo := newRouter(b)
	for i := 0; i < 1000; i++ {
		articleRepo.Create(context.Background(), &models.Article{
			ID:       uuid.New().String(),
			Title:    fmt.Sprintf("Article %04d", i),
			Content:  "Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
			AuthorID: "1",
		})
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest("GET", "/articles", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

// BenchmarkCreateComment benchmarks POST /comments end to end
func BenchmarkCreateComment(b *testing.B) {
	router, _ := newRouter(b)
	body := []byte(`{"content":"Great read","article_id":"550e8400-e29b-41d4-a716-446655440000","author_id":"42"}`)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest("POST", "/comments", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

// BenchmarkValidateComment benchmarks presence validation alone
func BenchmarkValidateComment(b *testing.B) {
	req := &models.CreateCommentRequest{Content: "hi", AuthorID: "42"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if errs := validation.ValidateComment(req); len(errs) != 1 {
			b.Fatalf("expected 1 error, got %d", len(errs))
		}
	}
}
