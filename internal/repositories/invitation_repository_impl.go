package repositories

import (
	"context"
	"fmt"
	"time"

	"ledgerly/internal/models"

	"gorm.io/gorm"
)

type invitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(ctx context.Context, inv *models.WalletInvitation) error {
	if err := r.db.WithContext(ctx).Create(inv).Error; err != nil {
		if isDuplicate(err) {
			return ErrInvitationExists
		}
		return fmt.Errorf("failed to create invitation: %w", err)
	}
	return nil
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (*models.WalletInvitation, error) {
	var inv models.WalletInvitation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return &inv, nil
}

func (r *invitationRepository) HasPending(ctx context.Context, walletID, invitedUserID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WalletInvitation{}).
		Where("wallet_id = ? AND invited_user_id = ? AND status = ?", walletID, invitedUserID, models.InvitationPending).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check pending invitation: %w", err)
	}
	return count > 0, nil
}

func (r *invitationRepository) Transition(ctx context.Context, id, invitedUserID string, status models.InvitationStatus, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.WalletInvitation{}).
		Where("id = ? AND invited_user_id = ? AND status = ?", id, invitedUserID, models.InvitationPending).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": at,
			"updated_at":   at,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update invitation: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *invitationRepository) ListForUser(ctx context.Context, userID string, status *models.InvitationStatus) ([]models.WalletInvitation, error) {
	q := r.db.WithContext(ctx).Where("invited_user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var invitations []models.WalletInvitation
	if err := q.Order("created_at DESC").Find(&invitations).Error; err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invitations, nil
}

func (r *invitationRepository) DeleteByWallets(ctx context.Context, walletIDs ...string) (int64, error) {
	if len(walletIDs) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("wallet_id IN ?", walletIDs).Delete(&models.WalletInvitation{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete wallet invitations: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *invitationRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("invited_user_id = ? OR invited_by_user_id = ?", userID, userID).
		Delete(&models.WalletInvitation{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete user invitations: %w", result.Error)
	}
	return result.RowsAffected, nil
}
