package repositories

import (
	"context"
	"errors"

	"ledgerly/internal/models"
)

var (
	ErrAccessNotFound = errors.New("access grant not found")
	ErrAccessExists   = errors.New("access grant already exists")
)

// AccessRepository stores shared-access grants.
type AccessRepository interface {
	// Create inserts a grant; an existing (wallet, user) pair yields ErrAccessExists.
	Create(ctx context.Context, grant *models.WalletAccess) error

	Get(ctx context.Context, walletID, userID string) (*models.WalletAccess, error)

	// ListByUser returns the user's grants, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.WalletAccess, error)

	// ListByWallet returns the wallet's grants joined with grantee name and email.
	ListByWallet(ctx context.Context, walletID string) ([]models.AccessGrantView, error)

	ListUserIDsByWallets(ctx context.Context, walletIDs ...string) ([]string, error)

	Delete(ctx context.Context, walletID, userID string) (int64, error)
	DeleteByWallets(ctx context.Context, walletIDs ...string) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
