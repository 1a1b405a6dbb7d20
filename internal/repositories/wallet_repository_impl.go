package repositories

import (
	"context"
	"fmt"
	"time"

	"ledgerly/internal/models"

	"gorm.io/gorm"
)

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	if err := r.db.WithContext(ctx).Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) GetByID(ctx context.Context, id string) (*models.Wallet, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *walletRepository) GetOwned(ctx context.Context, id, ownerID string) (*models.Wallet, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ? AND created_by = ?", id, ownerID))
}

func (r *walletRepository) first(q *gorm.DB) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := q.First(&wallet).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Wallet, error) {
	var wallets []models.Wallet
	err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) ListByIDs(ctx context.Context, ids []string) ([]models.Wallet, error) {
	if len(ids) == 0 {
		return []models.Wallet{}, nil
	}
	var wallets []models.Wallet
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) ListOwnedIDs(ctx context.Context, ownerID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.Wallet{}).
		Where("created_by = ?", ownerID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet ids: %w", err)
	}
	return ids, nil
}

func (r *walletRepository) ListVisibleUpdatedSince(ctx context.Context, userID string, sharedIDs []string, since time.Time) ([]models.Wallet, error) {
	q := r.db.WithContext(ctx).Where("updated_at > ?", since.Local())
	if len(sharedIDs) > 0 {
		q = q.Where(r.db.Where("created_by = ?", userID).Or("id IN ?", sharedIDs))
	} else {
		q = q.Where("created_by = ?", userID)
	}

	var wallets []models.Wallet
	if err := q.Order("updated_at DESC").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to list updated wallets: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) UpdateDetails(ctx context.Context, id, name, icon, color string) error {
	result := r.db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":             name,
			"icon":             icon,
			"background_color": color,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *walletRepository) IncrementBalance(ctx context.Context, id string, delta models.Money) error {
	result := r.db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ?", id).
		Where("balance + ? BETWEEN ? AND ?", delta.Cents(), -models.MaxMoney.Cents(), models.MaxMoney.Cents()).
		UpdateColumns(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta.Cents()),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to increment balance: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Wallet{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check wallet: %w", err)
	}
	if count == 0 {
		return ErrWalletNotFound
	}
	return ErrBalanceOutOfRange
}

func (r *walletRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Wallet{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete wallet: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *walletRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_by = ?", ownerID).Delete(&models.Wallet{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete wallets: %w", result.Error)
	}
	return result.RowsAffected, nil
}
