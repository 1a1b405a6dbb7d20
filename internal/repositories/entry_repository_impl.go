package repositories

import (
	"context"
	"fmt"
	"time"

	"ledgerly/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func preloadTags(db *gorm.DB) *gorm.DB {
	return db.Order("title ASC")
}

func (r *entryRepository) Create(ctx context.Context, entry *models.WalletEntry) error {
	// link tags without upserting the tag rows themselves
	if err := r.db.WithContext(ctx).Omit("Tags.*").Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

func (r *entryRepository) Get(ctx context.Context, walletID, entryID string) (*models.WalletEntry, error) {
	return r.first(r.db.WithContext(ctx), walletID, entryID)
}

func (r *entryRepository) GetForUpdate(ctx context.Context, walletID, entryID string) (*models.WalletEntry, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), walletID, entryID)
}

func (r *entryRepository) first(q *gorm.DB, walletID, entryID string) (*models.WalletEntry, error) {
	var entry models.WalletEntry
	err := q.Preload("Tags", preloadTags).
		Where("id = ? AND wallet_id = ?", entryID, walletID).
		First(&entry).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return &entry, nil
}

func (r *entryRepository) Update(ctx context.Context, entry *models.WalletEntry, tags []models.Tag) error {
	db := r.db.WithContext(ctx)
	result := db.Model(&models.WalletEntry{}).
		Where("id = ? AND wallet_id = ?", entry.ID, entry.WalletID).
		Updates(map[string]interface{}{
			"amount":      entry.Amount.Cents(),
			"type":        entry.Type,
			"description": entry.Description,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}

	assoc := db.Model(entry).Association("Tags")
	if len(tags) == 0 {
		if err := assoc.Clear(); err != nil {
			return fmt.Errorf("failed to clear entry tags: %w", err)
		}
	} else if err := assoc.Replace(tags); err != nil {
		return fmt.Errorf("failed to replace entry tags: %w", err)
	}
	entry.Tags = tags
	return nil
}

func (r *entryRepository) MarkDeleted(ctx context.Context, walletID, entryID, deletedBy string, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.WalletEntry{}).
		Where("id = ? AND wallet_id = ? AND is_deleted = ?", entryID, walletID, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": at,
			"deleted_by": deletedBy,
			"updated_at": at,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to soft delete entry: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *entryRepository) Restore(ctx context.Context, walletID, entryID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.WalletEntry{}).
		Where("id = ? AND wallet_id = ? AND is_deleted = ?", entryID, walletID, true).
		Updates(map[string]interface{}{
			"is_deleted": false,
			"deleted_at": nil,
			"deleted_by": nil,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to restore entry: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *entryRepository) DeletePermanently(ctx context.Context, walletID, entryID string) (int64, error) {
	db := r.db.WithContext(ctx)
	result := db.Where("id = ? AND wallet_id = ? AND is_deleted = ?", entryID, walletID, true).
		Delete(&models.WalletEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, nil
	}
	if err := db.Exec("DELETE FROM "+models.EntryTagsJoinTable+" WHERE wallet_entry_id = ?", entryID).Error; err != nil {
		return 0, fmt.Errorf("failed to delete entry tags: %w", err)
	}
	return result.RowsAffected, nil
}

func (r *entryRepository) ListActive(ctx context.Context, walletID string, offset, limit int) ([]models.WalletEntry, int64, error) {
	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.WalletEntry{}).
		Where("wallet_id = ? AND is_deleted = ?", walletID, false).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count entries: %w", err)
	}

	var entries []models.WalletEntry
	err := db.Preload("Tags", preloadTags).
		Where("wallet_id = ? AND is_deleted = ?", walletID, false).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, total, nil
}

func (r *entryRepository) ListAllActive(ctx context.Context, walletID string) ([]models.WalletEntry, error) {
	var entries []models.WalletEntry
	err := r.db.WithContext(ctx).Preload("Tags", preloadTags).
		Where("wallet_id = ? AND is_deleted = ?", walletID, false).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

func (r *entryRepository) ListDeleted(ctx context.Context, walletID string) ([]models.WalletEntry, error) {
	var entries []models.WalletEntry
	err := r.db.WithContext(ctx).Preload("Tags", preloadTags).
		Where("wallet_id = ? AND is_deleted = ?", walletID, true).
		Order("deleted_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list deleted entries: %w", err)
	}
	return entries, nil
}

func (r *entryRepository) ListChangedSince(ctx context.Context, walletID string, since time.Time) ([]models.WalletEntry, error) {
	var entries []models.WalletEntry
	err := r.db.WithContext(ctx).Preload("Tags", preloadTags).
		Where("wallet_id = ? AND updated_at > ?", walletID, since.Local()).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list changed entries: %w", err)
	}
	return entries, nil
}

func (r *entryRepository) SumActive(ctx context.Context, walletID string) (models.Money, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&models.WalletEntry{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN -amount ELSE amount END), 0)", models.EntrySubtract).
		Where("wallet_id = ? AND is_deleted = ?", walletID, false).
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum entries: %w", err)
	}
	return models.Money(sum), nil
}

func (r *entryRepository) DeleteByWallets(ctx context.Context, walletIDs ...string) (int64, error) {
	if len(walletIDs) == 0 {
		return 0, nil
	}
	db := r.db.WithContext(ctx)
	err := db.Exec(
		"DELETE FROM "+models.EntryTagsJoinTable+" WHERE wallet_entry_id IN (SELECT id FROM wallet_entries WHERE wallet_id IN ?)",
		walletIDs,
	).Error
	if err != nil {
		return 0, fmt.Errorf("failed to delete entry tags: %w", err)
	}

	result := db.Where("wallet_id IN ?", walletIDs).Delete(&models.WalletEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
