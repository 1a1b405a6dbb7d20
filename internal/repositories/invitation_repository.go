package repositories

import (
	"context"
	"errors"
	"time"

	"ledgerly/internal/models"
)

var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExists   = errors.New("pending invitation already exists")
)

// InvitationRepository stores wallet invitations.
type InvitationRepository interface {
	// Create inserts a pending invitation; a second pending invitation for
	// the same (wallet, invitee) yields ErrInvitationExists.
	Create(ctx context.Context, inv *models.WalletInvitation) error

	GetByID(ctx context.Context, id string) (*models.WalletInvitation, error)
	HasPending(ctx context.Context, walletID, invitedUserID string) (bool, error)

	// Transition moves a pending invitation addressed to invitedUserID to
	// status in one conditional update. Zero rows means it was not pending,
	// not addressed to the user, or does not exist.
	Transition(ctx context.Context, id, invitedUserID string, status models.InvitationStatus, at time.Time) (int64, error)

	// ListForUser returns invitations addressed to the user, newest first.
	// A nil status lists all of them.
	ListForUser(ctx context.Context, userID string, status *models.InvitationStatus) ([]models.WalletInvitation, error)

	DeleteByWallets(ctx context.Context, walletIDs ...string) (int64, error)

	// DeleteByUser removes invitations sent to or by the user.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
