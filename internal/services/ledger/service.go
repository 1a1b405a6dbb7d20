// Package ledger implements entry mutations on wallets. Every mutation runs
// in one transaction that writes the entry and applies the balance delta as
// an atomic increment, so the stored balance always equals the sum of the
// active entries.
package ledger

import (
	"context"
	"errors"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"
	"ledgerly/internal/repositories/cache"
	"ledgerly/internal/services/access"
	"ledgerly/internal/utils"
	"ledgerly/internal/validation"
)

type service struct {
	store    *repositories.Store
	resolver *access.Resolver
	cache    cache.WalletListCache
}

func NewService(store *repositories.Store, walletCache cache.WalletListCache) Service {
	return &service{
		store:    store,
		resolver: access.ForStore(store),
		cache:    walletCache,
	}
}

// mutation is the transactional body of one entry operation. It returns the
// resulting entry and the signed balance delta to apply.
type mutation func(tx *repositories.Store) (*models.WalletEntry, models.Money, error)

func (s *service) apply(ctx context.Context, walletID, userID string, op models.Operation, fn mutation) (*EntryResult, error) {
	if _, err := s.resolver.Authorize(ctx, walletID, userID, op); err != nil {
		return nil, err
	}

	var (
		result   EntryResult
		audience []string
	)
	err := s.store.ExecuteInTransaction(ctx, func(tx *repositories.Store) error {
		entry, delta, err := fn(tx)
		if err != nil {
			return err
		}
		if err := tx.Wallets.IncrementBalance(ctx, walletID, delta); err != nil {
			return mapError("update balance", err)
		}
		wallet, err := tx.Wallets.GetByID(ctx, walletID)
		if err != nil {
			return mapError("reload wallet", err)
		}
		audience, err = access.ForStore(tx).Audience(ctx, wallet)
		if err != nil {
			return err
		}
		result = EntryResult{Entry: entry, UpdatedWallet: wallet}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidateUsers(ctx, s.cache, audience...)
	return &result, nil
}

func (s *service) CreateEntry(ctx context.Context, walletID, userID string, in EntryInput) (*EntryResult, error) {
	in = in.normalized()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	return s.apply(ctx, walletID, userID, models.OpCreateEntry, func(tx *repositories.Store) (*models.WalletEntry, models.Money, error) {
		tags, err := resolveTags(ctx, tx, in.Tags)
		if err != nil {
			return nil, 0, err
		}
		entry := &models.WalletEntry{
			WalletID:    walletID,
			Amount:      in.Amount,
			Type:        in.Type,
			Description: in.Description,
			Tags:        tags,
			CreatedBy:   userID,
		}
		if err := tx.Entries.Create(ctx, entry); err != nil {
			return nil, 0, mapError("create entry", err)
		}
		return entry, entry.Contribution(), nil
	})
}

func (s *service) UpdateEntry(ctx context.Context, walletID, entryID, userID string, in EntryInput) (*EntryResult, error) {
	in = in.normalized()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	return s.apply(ctx, walletID, userID, models.OpUpdateEntry, func(tx *repositories.Store) (*models.WalletEntry, models.Money, error) {
		entry, err := tx.Entries.GetForUpdate(ctx, walletID, entryID)
		if err != nil {
			return nil, 0, mapError("load entry", err)
		}
		// soft-deleted entries do not contribute, so editing them is refused
		if entry.IsDeleted {
			return nil, 0, apperrors.ErrEntryNotFound
		}
		tags, err := resolveTags(ctx, tx, in.Tags)
		if err != nil {
			return nil, 0, err
		}

		oldDelta := entry.Contribution()
		entry.Amount = in.Amount
		entry.Type = in.Type
		entry.Description = in.Description
		if err := tx.Entries.Update(ctx, entry, tags); err != nil {
			return nil, 0, mapError("update entry", err)
		}

		updated, err := tx.Entries.Get(ctx, walletID, entryID)
		if err != nil {
			return nil, 0, mapError("reload entry", err)
		}
		return updated, updated.Contribution() - oldDelta, nil
	})
}

func (s *service) DeleteEntry(ctx context.Context, walletID, entryID, userID string) (*EntryResult, error) {
	return s.apply(ctx, walletID, userID, models.OpDeleteEntry, func(tx *repositories.Store) (*models.WalletEntry, models.Money, error) {
		entry, err := tx.Entries.GetForUpdate(ctx, walletID, entryID)
		if err != nil {
			return nil, 0, mapError("load entry", err)
		}
		if entry.IsDeleted {
			return nil, 0, apperrors.ErrEntryNotFound
		}

		n, err := tx.Entries.MarkDeleted(ctx, walletID, entryID, userID, time.Now())
		if err != nil {
			return nil, 0, mapError("delete entry", err)
		}
		if n == 0 {
			return nil, 0, apperrors.ErrEntryNotFound
		}

		deleted, err := tx.Entries.Get(ctx, walletID, entryID)
		if err != nil {
			return nil, 0, mapError("reload entry", err)
		}
		return deleted, entry.Contribution().Neg(), nil
	})
}

func (s *service) RestoreEntry(ctx context.Context, walletID, entryID, userID string) (*EntryResult, error) {
	return s.apply(ctx, walletID, userID, models.OpRestoreEntry, func(tx *repositories.Store) (*models.WalletEntry, models.Money, error) {
		entry, err := tx.Entries.GetForUpdate(ctx, walletID, entryID)
		if err != nil {
			return nil, 0, mapError("load entry", err)
		}
		if !entry.IsDeleted {
			return nil, 0, apperrors.ErrEntryNotDeleted
		}

		n, err := tx.Entries.Restore(ctx, walletID, entryID)
		if err != nil {
			return nil, 0, mapError("restore entry", err)
		}
		if n == 0 {
			return nil, 0, apperrors.ErrEntryNotDeleted
		}

		restored, err := tx.Entries.Get(ctx, walletID, entryID)
		if err != nil {
			return nil, 0, mapError("reload entry", err)
		}
		return restored, restored.Contribution(), nil
	})
}

// PurgeEntry hard-deletes a soft-deleted entry. Its contribution was already
// reversed, so the balance is left alone; the wallet's updated_at still moves
// so pollers learn the entry is gone.
func (s *service) PurgeEntry(ctx context.Context, walletID, entryID, userID string) error {
	_, err := s.apply(ctx, walletID, userID, models.OpPurgeEntry, func(tx *repositories.Store) (*models.WalletEntry, models.Money, error) {
		n, err := tx.Entries.DeletePermanently(ctx, walletID, entryID)
		if err != nil {
			return nil, 0, apperrors.Store("delete entry", err)
		}
		if n == 0 {
			return nil, 0, apperrors.ErrEntryNotDeleted
		}
		return nil, 0, nil
	})
	return err
}

func (s *service) ListEntries(ctx context.Context, walletID, userID string, page utils.PageRequest) (*EntryPage, error) {
	if _, err := s.resolver.Authorize(ctx, walletID, userID, models.OpListEntries); err != nil {
		return nil, err
	}
	if err := validation.Struct(page); err != nil {
		return nil, err
	}

	entries, total, err := s.store.Entries.ListActive(ctx, walletID, page.Offset(), page.Limit)
	if err != nil {
		return nil, apperrors.Store("list entries", err)
	}
	deleted, err := s.store.Entries.ListDeleted(ctx, walletID)
	if err != nil {
		return nil, apperrors.Store("list deleted entries", err)
	}

	return &EntryPage{
		Entries:        nonNil(entries),
		DeletedEntries: nonNil(deleted),
		Pagination:     utils.NewPagination(page, total),
	}, nil
}

func (s *service) Changes(ctx context.Context, walletID, userID string, since time.Time) (*WalletChanges, error) {
	// taken before reading so nothing written meanwhile is skipped by the next poll
	now := time.Now()

	res, err := s.resolver.Authorize(ctx, walletID, userID, models.OpPollWallet)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.Entries.ListChangedSince(ctx, walletID, since)
	if err != nil {
		return nil, apperrors.Store("list changed entries", err)
	}

	changes := &WalletChanges{
		Entries:    nonNil(entries),
		LastUpdate: now,
	}
	if res.Wallet.UpdatedAt.After(since) {
		view := models.NewWalletView(*res.Wallet, res.Role)
		changes.Wallet = &view
	}
	changes.HasUpdates = changes.Wallet != nil || len(changes.Entries) > 0
	return changes, nil
}

// resolveTags loads the referenced tags; every id must exist.
func resolveTags(ctx context.Context, tx *repositories.Store, ids []string) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	tags, err := tx.Tags.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Store("load tags", err)
	}
	if len(tags) != len(ids) {
		return nil, apperrors.ErrUnknownTag
	}
	return tags, nil
}

func mapError(op string, err error) error {
	var de *apperrors.DomainError
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, repositories.ErrEntryNotFound):
		return apperrors.ErrEntryNotFound
	case errors.Is(err, repositories.ErrWalletNotFound):
		return apperrors.ErrWalletNotFound
	case errors.Is(err, repositories.ErrBalanceOutOfRange):
		return apperrors.ErrBalanceOutOfRange
	}
	return apperrors.Store(op, err)
}

func nonNil(entries []models.WalletEntry) []models.WalletEntry {
	if entries == nil {
		return []models.WalletEntry{}
	}
	return entries
}
