package repositories

import (
	"context"
	"errors"

	"ledgerly/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	// Create inserts a user; a duplicate email yields ErrEmailTaken.
	Create(ctx context.Context, user *models.User) error

	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail matches the normalized address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateProfile changes the display fields and returns the fresh record.
	UpdateProfile(ctx context.Context, id, name, avatar string) (*models.User, error)

	// IncrementTokenVersion invalidates every token issued so far.
	IncrementTokenVersion(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) (int64, error)
}
