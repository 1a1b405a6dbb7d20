package sharing

import (
	"context"

	"ledgerly/internal/models"
)

// Service runs the invitation workflow and manages access grants.
type Service interface {
	Invite(ctx context.Context, walletID, inviterID string, in InviteInput) (*models.WalletInvitation, error)
	Respond(ctx context.Context, invitationID, userID string, in RespondInput) (*RespondResult, error)
	ListInvitations(ctx context.Context, userID, status string) ([]models.WalletInvitation, error)

	ListAccess(ctx context.Context, walletID, userID string) ([]models.AccessGrantView, error)
	Revoke(ctx context.Context, walletID, ownerID, targetUserID string) error
}
