package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blog-api/internal/auth"
	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// userStore is a map-backed UserRepository local to this package's tests
type userStore map[string]*models.User

func (u userStore) Create(ctx context.Context, user *models.User) error {
	u[user.Email] = user
	return nil
}

func (u userStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := u[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func TestAuthenticate_UnknownEmailRunsDummyCompare(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	users := userStore{"known@example.com": {ID: "u-1", Email: "known@example.com", PasswordHash: hash}}
	cfg := &config.Config{Auth: config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	s := newAuthService(&repository.Repositories{User: users}, cfg, zerolog.Nop())

	if err := bcrypt.CompareHashAndPassword([]byte(s.dummyHash), []byte(dummyPassword)); err != nil {
		t.Fatalf("Expected a valid dummy hash, got %v", err)
	}

	var compared []string
	s.checkPassword = func(hash, password string) error {
		compared = append(compared, hash)
		return auth.CheckPassword(hash, password)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantHash string
	}{
		{name: "unknown email", email: "ghost@example.com", password: "correct-horse", wantHash: s.dummyHash},
		{name: "wrong password", email: "known@example.com", password: "wrong-horse", wantHash: hash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compared = nil

			_, err := s.Authenticate(context.Background(), tt.email, tt.password)
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				t.Errorf("Expected ErrInvalidCredentials, got %v", err)
			}
			if len(compared) != 1 || compared[0] != tt.wantHash {
				t.Errorf("Expected exactly one bcrypt compare against %q, got %v", tt.wantHash, compared)
			}
		})
	}
}

func TestNewAuthService_InvalidCostFallsBack(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{BcryptCost: bcrypt.MaxCost + 1}}
	s := newAuthService(&repository.Repositories{User: userStore{}}, cfg, zerolog.Nop())

	if s.dummyHash == "" {
		t.Fatal("Expected a dummy hash even with an invalid configured cost")
	}
}
