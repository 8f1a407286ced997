package mocks

import (
	"context"

	"github.com/blog-api/internal/auth"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/service"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	AuthenticateFunc func(ctx context.Context, email, password string) (*auth.Principal, error)
	CreatedUsers     []*models.CreateUserRequest
	AuthCalls        int
}

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{
		CreatedUsers: make([]*models.CreateUserRequest, 0),
	}
}

func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*auth.Principal, error) {
	m.AuthCalls++
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	return nil, auth.ErrInvalidCredentials
}

func (m *MockAuthService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	m.CreatedUsers = append(m.CreatedUsers, req)
	return &models.User{ID: "test-user-id", Email: req.Email, Name: req.Name, IsAdmin: req.IsAdmin}, nil
}

// MockPinger is a mock store health check
type MockPinger struct {
	Err   error
	Calls int
}

// Verify interface compliance
var _ service.Pinger = (*MockPinger)(nil)

func (m *MockPinger) HealthCheck(ctx context.Context) error {
	m.Calls++
	return m.Err
}
