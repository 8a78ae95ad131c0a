package repository

import (
	"context"

	"github.com/chinmaymk2005/Prepify-The-ai-based-mock-interview-system/internal/domain"
)

// UserRepository persists users. Emails are stored normalized (trimmed,
// lowercased); uniqueness is enforced by the database so concurrent signups
// with the same email cannot both succeed.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}
