package ledger

import (
	"context"
	"time"

	"ledgerly/internal/utils"
)

// Service maintains wallet entries and keeps every wallet balance equal to
// the sum of its active entries.
type Service interface {
	CreateEntry(ctx context.Context, walletID, userID string, in EntryInput) (*EntryResult, error)
	UpdateEntry(ctx context.Context, walletID, entryID, userID string, in EntryInput) (*EntryResult, error)
	DeleteEntry(ctx context.Context, walletID, entryID, userID string) (*EntryResult, error)
	RestoreEntry(ctx context.Context, walletID, entryID, userID string) (*EntryResult, error)
	PurgeEntry(ctx context.Context, walletID, entryID, userID string) error

	ListEntries(ctx context.Context, walletID, userID string, page utils.PageRequest) (*EntryPage, error)

	// Changes reports what changed on the wallet after since.
	Changes(ctx context.Context, walletID, userID string, since time.Time) (*WalletChanges, error)
}
