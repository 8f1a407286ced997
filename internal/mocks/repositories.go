package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
)

// Verify interface compliance
var (
	_ repository.ArticleRepository = (*MockArticleRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
	_ repository.UserRepository    = (*MockUserRepository)(nil)
)

// MockArticleRepository is an in-memory ArticleRepository that keeps
// insertion order, like a table without ORDER BY usually does.
type MockArticleRepository struct {
	mu          sync.Mutex
	Articles    map[string]*models.Article
	Order       []string
	InsertError error
	ListError   error
	GetError    error
	CountError  error
	CreateCalls int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++
	if m.InsertError != nil {
		return m.InsertError
	}
	article.CreatedAt = time.Now()
	m.Articles[article.ID] = article
	m.Order = append(m.Order, article.ID)
	return nil
}

func (m *MockArticleRepository) List(ctx context.Context) ([]*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListError != nil {
		return nil, m.ListError
	}
	articles := make([]*models.Article, 0, len(m.Order))
	for _, id := range m.Order {
		articles = append(articles, m.Articles[id])
	}
	return articles, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetError != nil {
		return nil, m.GetError
	}
	article, ok := m.Articles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return article, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CountError != nil {
		return 0, m.CountError
	}
	return len(m.Articles), nil
}

// MockCommentRepository is an in-memory CommentRepository
type MockCommentRepository struct {
	mu          sync.Mutex
	Comments    []*models.Comment
	InsertError error
	ListError   error
	CountError  error
	CreateCalls int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make([]*models.Comment, 0),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCalls++
	if m.InsertError != nil {
		return m.InsertError
	}
	comment.CreatedAt = time.Now()
	m.Comments = append(m.Comments, comment)
	return nil
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]*models.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListError != nil {
		return nil, m.ListError
	}
	comments := make([]*models.Comment, 0)
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CountError != nil {
		return 0, m.CountError
	}
	return len(m.Comments), nil
}

// MockUserRepository is an in-memory UserRepository keyed by email
type MockUserRepository struct {
	mu          sync.Mutex
	Users       map[string]*models.User
	InsertError error
	GetError    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InsertError != nil {
		return m.InsertError
	}
	user.CreatedAt = time.Now()
	m.Users[user.Email] = user
	return nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetError != nil {
		return nil, m.GetError
	}
	user, ok := m.Users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

// NewRepositories bundles fresh in-memory repositories
func NewRepositories() (*repository.Repositories, *MockArticleRepository, *MockCommentRepository, *MockUserRepository) {
	articles := NewMockArticleRepository()
	comments := NewMockCommentRepository()
	users := NewMockUserRepository()
	return &repository.Repositories{
		User:    users,
		Article: articles,
		Comment: comments,
	}, articles, comments, users
}
