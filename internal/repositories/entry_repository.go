package repositories

import (
	"context"
	"errors"
	"time"

	"ledgerly/internal/models"
)

var ErrEntryNotFound = errors.New("entry not found")

// EntryRepository stores wallet entries and their tag links. Mutations that
// depend on the soft-delete flag are conditional updates; callers inspect the
// returned row count instead of reading first.
type EntryRepository interface {
	// Create inserts the entry and links its (already existing) tags.
	Create(ctx context.Context, entry *models.WalletEntry) error

	// Get returns the entry if it belongs to walletID, tags populated.
	Get(ctx context.Context, walletID, entryID string) (*models.WalletEntry, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, walletID, entryID string) (*models.WalletEntry, error)

	// Update writes amount, type and description and replaces the tag links.
	Update(ctx context.Context, entry *models.WalletEntry, tags []models.Tag) error

	MarkDeleted(ctx context.Context, walletID, entryID, deletedBy string, at time.Time) (int64, error)
	Restore(ctx context.Context, walletID, entryID string) (int64, error)

	// DeletePermanently removes the entry only if it is soft-deleted.
	DeletePermanently(ctx context.Context, walletID, entryID string) (int64, error)

	// ListActive pages through active entries newest first.
	ListActive(ctx context.Context, walletID string, offset, limit int) ([]models.WalletEntry, int64, error)
	ListAllActive(ctx context.Context, walletID string) ([]models.WalletEntry, error)

	// ListDeleted returns every soft-deleted entry, most recently deleted first.
	ListDeleted(ctx context.Context, walletID string) ([]models.WalletEntry, error)

	// ListChangedSince returns entries created or modified after since.
	ListChangedSince(ctx context.Context, walletID string, since time.Time) ([]models.WalletEntry, error)

	// SumActive recomputes the balance from the active entries.
	SumActive(ctx context.Context, walletID string) (models.Money, error)

	DeleteByWallets(ctx context.Context, walletIDs ...string) (int64, error)
}
