package service

import (
	"context"
	"errors"
	"strings"

	"github.com/blog-api/internal/auth"
	"github.com/blog-api/internal/config"
	"github.com/blog-api/internal/models"
	"github.com/blog-api/internal/repository"
	"github.com/blog-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once per service; unknown emails are compared
// against that hash so a miss costs the same bcrypt work as a wrong password.
const dummyPassword = "unknown-user-timing-pad"

// authService is the concrete implementation of AuthService
type authService struct {
	repos         *repository.Repositories
	bcryptCost    int
	dummyHash     string
	checkPassword func(hash, password string) error
	log           zerolog.Logger
}

func newAuthService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *authService {
	s := &authService{
		repos:         repos,
		bcryptCost:    cfg.Auth.BcryptCost,
		checkPassword: auth.CheckPassword,
		log:           log.With().Str("service", "auth").Logger(),
	}

	hash, err := auth.HashPassword(dummyPassword, s.bcryptCost)
	if err != nil {
		s.log.Warn().Err(err).Int("cost", s.bcryptCost).Msg("Falling back to default bcrypt cost for dummy hash")
		hash, _ = auth.HashPassword(dummyPassword, bcrypt.DefaultCost)
	}
	s.dummyHash = hash

	return s
}

// Authenticate verifies an email/password pair and returns the principal.
// Unknown emails and wrong passwords both yield auth.ErrInvalidCredentials.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*auth.Principal, error) {
	if email == "" || password == "" {
		return nil, auth.ErrMissingCredentials
	}

	user, err := s.repos.User.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		_ = s.checkPassword(s.dummyHash, password)
		return nil, auth.ErrInvalidCredentials
	}
	if err != nil {
		return nil, storeError("lookup user", err)
	}

	if err := s.checkPassword(user.PasswordHash, password); err != nil {
		return nil, err
	}

	return &auth.Principal{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}, nil
}

// CreateUser hashes the password and stores a new user
func (s *authService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if fields := validation.ValidateUser(req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        normalizeEmail(req.Email),
		Name:         req.Name,
		PasswordHash: hash,
		IsAdmin:      req.IsAdmin,
	}
	if err := s.repos.User.Create(ctx, user); err != nil {
		return nil, storeError("create user", err)
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Bool("is_admin", user.IsAdmin).
		Msg("User created")

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
