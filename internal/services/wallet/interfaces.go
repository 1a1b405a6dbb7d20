package wallet

import (
	"context"
	"time"

	"ledgerly/internal/models"
)

// Service defines the wallet lifecycle operations
type Service interface {
	CreateWallet(ctx context.Context, userID string, in CreateWalletInput) (*models.WalletView, error)
	GetWallet(ctx context.Context, walletID, userID string) (*models.WalletView, error)
	ListWallets(ctx context.Context, userID string) ([]models.WalletView, error)
	UpdateWallet(ctx context.Context, walletID, userID string, in UpdateWalletInput) (*models.WalletView, error)

	// Updates lists wallets visible to userID that changed after since.
	Updates(ctx context.Context, userID string, since time.Time) (*WalletUpdates, error)

	DeleteWallet(ctx context.Context, walletID, userID string) error

	// DeleteAccount removes the user and everything they own.
	DeleteAccount(ctx context.Context, userID string) error
}
