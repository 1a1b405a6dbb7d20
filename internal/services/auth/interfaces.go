package auth

import (
	"context"

	"ledgerly/internal/models"
)

// Service manages credentials and session tokens.
type Service interface {
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	Login(ctx context.Context, in LoginInput) (*Session, error)

	// Logout revokes every token of the user the given token belongs to.
	// An unparsable or stale token is not an error.
	Logout(ctx context.Context, token string) error

	// Authenticate parses a token and checks it against the stored user.
	Authenticate(ctx context.Context, token string) (*models.UserClaims, *models.User, error)

	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.User, error)
}
