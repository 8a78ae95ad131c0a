package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/chinmaymk2005/Prepify-The-ai-based-mock-interview-system/internal/domain"
	"github.com/chinmaymk2005/Prepify-The-ai-based-mock-interview-system/internal/repository"
	"github.com/chinmaymk2005/Prepify-The-ai-based-mock-interview-system/pkg/config"
	"github.com/chinmaymk2005/Prepify-The-ai-based-mock-interview-system/pkg/crypto"
	jwtpkg "github.com/chinmaymk2005/Prepify-The-ai-based-mock-interview-system/pkg/jwt"
)

// Service handles registration, login and token authorization.
type Service struct {
	users  repository.UserRepository
	logger *slog.Logger
	cfg    config.APIConfig
}

// New constructs a Service.
func New(users repository.UserRepository, logger *slog.Logger, cfg config.APIConfig) Service {
	return Service{users: users, logger: logger, cfg: cfg}
}

// Signup registers a new account and returns it with a freshly issued token.
// Validation and hashing happen before any insert; the duplicate pre-check
// gives a clean conflict answer, and the store's unique constraint closes
// the race window a check-then-insert alone would leave.
func (s Service) Signup(ctx context.Context, in SignupInput) (*domain.User, string, error) {
	if err := in.validate(); err != nil {
		return nil, "", err
	}
	email := normalizeEmail(in.Email)

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", fmt.Errorf("lookup existing account: %w", err)
	}

	hash, err := crypto.HashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(in.Name),
		Email:           email,
		TargetRole:      strings.TrimSpace(in.TargetRole),
		ExperienceLevel: strings.TrimSpace(in.ExperienceLevel),
		PasswordHash:    hash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrDuplicateEmail
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := jwtpkg.Generate(user.ID, s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	s.logger.Info("user registered", "user_id", user.ID)
	return user, token, nil
}

// Login authenticates a user and returns it with a freshly issued token.
// Unknown email and wrong password take the same exit to prevent account
// enumeration.
func (s Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, "", validationError("Email and password are required")
	}

	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup account: %w", err)
	}
	if err := crypto.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := jwtpkg.Generate(user.ID, s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// Authorize validates a bearer token and returns its claims. No store
// lookup happens here; callers that need the full account resolve it
// separately via GetUser.
func (s Service) Authorize(token string) (*jwtpkg.Claims, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, jwtpkg.ErrMalformed
	}
	return jwtpkg.Parse(trimmed, s.cfg.JWTSecret)
}

// GetUser resolves an account by identifier.
func (s Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetUserByID(ctx, id)
}
