package repositories

import (
	"context"
	"fmt"

	"ledgerly/internal/models"

	"gorm.io/gorm"
)

type accessRepository struct {
	db *gorm.DB
}

func NewAccessRepository(db *gorm.DB) AccessRepository {
	return &accessRepository{db: db}
}

func (r *accessRepository) Create(ctx context.Context, grant *models.WalletAccess) error {
	if err := r.db.WithContext(ctx).Create(grant).Error; err != nil {
		if isDuplicate(err) {
			return ErrAccessExists
		}
		return fmt.Errorf("failed to create access grant: %w", err)
	}
	return nil
}

func (r *accessRepository) Get(ctx context.Context, walletID, userID string) (*models.WalletAccess, error) {
	var grant models.WalletAccess
	err := r.db.WithContext(ctx).
		Where("wallet_id = ? AND user_id = ?", walletID, userID).
		First(&grant).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrAccessNotFound
		}
		return nil, fmt.Errorf("failed to get access grant: %w", err)
	}
	return &grant, nil
}

func (r *accessRepository) ListByUser(ctx context.Context, userID string) ([]models.WalletAccess, error) {
	var grants []models.WalletAccess
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&grants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list access grants: %w", err)
	}
	return grants, nil
}

func (r *accessRepository) ListByWallet(ctx context.Context, walletID string) ([]models.AccessGrantView, error) {
	var views []models.AccessGrantView
	err := r.db.WithContext(ctx).
		Table("wallet_accesses AS a").
		Select("a.*, u.name AS user_name, u.email AS user_email").
		Joins("JOIN users u ON u.id = a.user_id").
		Where("a.wallet_id = ?", walletID).
		Order("a.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet access: %w", err)
	}
	return views, nil
}

func (r *accessRepository) ListUserIDsByWallets(ctx context.Context, walletIDs ...string) ([]string, error) {
	if len(walletIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.WalletAccess{}).
		Where("wallet_id IN ?", walletIDs).
		Distinct().
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list grantees: %w", err)
	}
	return ids, nil
}

func (r *accessRepository) Delete(ctx context.Context, walletID, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("wallet_id = ? AND user_id = ?", walletID, userID).
		Delete(&models.WalletAccess{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to revoke access: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *accessRepository) DeleteByWallets(ctx context.Context, walletIDs ...string) (int64, error) {
	if len(walletIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("wallet_id IN ?", walletIDs).Delete(&models.WalletAccess{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete wallet access: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *accessRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.WalletAccess{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete user access: %w", result.Error)
	}
	return result.RowsAffected, nil
}
