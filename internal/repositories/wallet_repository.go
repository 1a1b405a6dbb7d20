package repositories

import (
	"context"
	"errors"
	"time"

	"ledgerly/internal/models"
)

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrBalanceOutOfRange = errors.New("balance out of range")
)

// WalletRepository defines the interface for wallet-related database operations
type WalletRepository interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByID(ctx context.Context, id string) (*models.Wallet, error)

	// GetOwned finds the wallet only when ownerID created it.
	GetOwned(ctx context.Context, id, ownerID string) (*models.Wallet, error)

	// ListByOwner returns owned wallets newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Wallet, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.Wallet, error)
	ListOwnedIDs(ctx context.Context, ownerID string) ([]string, error)

	// ListVisibleUpdatedSince returns wallets owned by userID or listed in
	// sharedIDs whose updated_at is after since.
	ListVisibleUpdatedSince(ctx context.Context, userID string, sharedIDs []string, since time.Time) ([]models.Wallet, error)

	UpdateDetails(ctx context.Context, id, name, icon, color string) error

	// IncrementBalance adds delta to the stored balance in a single
	// statement and bumps updated_at. It never reads the balance first. The
	// update is refused with ErrBalanceOutOfRange when the new balance would
	// leave [-MaxMoney, MaxMoney].
	IncrementBalance(ctx context.Context, id string, delta models.Money) error

	Delete(ctx context.Context, id string) (int64, error)
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
