// Package sharing implements wallet invitations and access grants.
//
// An invitation moves from pending to accepted or declined exactly once.
// The move is a single conditional update on status=pending, so concurrent
// answers to the same invitation cannot both succeed and at most one grant
// is created per invitation.
package sharing

import (
	"context"
	"errors"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/logging"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"
	"ledgerly/internal/repositories/cache"
	"ledgerly/internal/services/access"
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

func (s *service) Invite(ctx context.Context, walletID, inviterID string, in InviteInput) (*models.WalletInvitation, error) {
	in.Email = models.NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	res, err := s.resolver.Authorize(ctx, walletID, inviterID, models.OpShareWallet)
	if err != nil {
		return nil, err
	}

	inviter, err := s.store.Users.GetByID(ctx, inviterID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Store("load inviter", err)
	}

	invitee, err := s.store.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInviteeNotFound
		}
		return nil, apperrors.Store("find invitee", err)
	}
	if invitee.ID == inviterID {
		return nil, apperrors.ErrSelfShare
	}

	if _, err := s.store.Access.Get(ctx, walletID, invitee.ID); err == nil {
		return nil, apperrors.ErrAlreadyHasAccess
	} else if !errors.Is(err, repositories.ErrAccessNotFound) {
		return nil, apperrors.Store("check access", err)
	}

	pending, err := s.store.Invitations.HasPending(ctx, walletID, invitee.ID)
	if err != nil {
		return nil, apperrors.Store("check invitations", err)
	}
	if pending {
		return nil, apperrors.ErrInvitationPending
	}

	inv := &models.WalletInvitation{
		WalletID:           walletID,
		WalletName:         res.Wallet.Name,
		WalletIcon:         res.Wallet.Icon,
		InvitedUserID:      invitee.ID,
		InvitedUserEmail:   invitee.Email,
		InvitedUserName:    invitee.Name,
		InvitedByUserID:    inviter.ID,
		InvitedByUserName:  inviter.Name,
		InvitedByUserEmail: inviter.Email,
		Role:               in.Role,
		Status:             models.InvitationPending,
	}
	if err := s.store.Invitations.Create(ctx, inv); err != nil {
		// lost a race with a concurrent invite
		if errors.Is(err, repositories.ErrInvitationExists) {
			return nil, apperrors.ErrInvitationPending
		}
		return nil, apperrors.Store("create invitation", err)
	}

	logging.Default.Info("Wallet %s shared with %s as %s", walletID, invitee.ID, in.Role)
	return inv, nil
}

func (s *service) Respond(ctx context.Context, invitationID, userID string, in RespondInput) (*RespondResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	status, _ := in.Action.ResultingStatus()

	var result RespondResult
	err := s.store.ExecuteInTransaction(ctx, func(tx *repositories.Store) error {
		n, err := tx.Invitations.Transition(ctx, invitationID, userID, status, time.Now())
		if err != nil {
			return apperrors.Store("update invitation", err)
		}
		if n == 0 {
			return apperrors.ErrInvitationNotFound
		}

		inv, err := tx.Invitations.GetByID(ctx, invitationID)
		if err != nil {
			return apperrors.Store("reload invitation", err)
		}
		result.Invitation = inv

		if status != models.InvitationAccepted {
			return nil
		}

		if _, err := tx.Wallets.GetByID(ctx, inv.WalletID); err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return apperrors.ErrWalletNotFound
			}
			return apperrors.Store("load wallet", err)
		}

		grant := &models.WalletAccess{
			WalletID:  inv.WalletID,
			UserID:    userID,
			Role:      inv.Role,
			GrantedBy: inv.InvitedByUserID,
		}
		if err := tx.Access.Create(ctx, grant); err != nil {
			if errors.Is(err, repositories.ErrAccessExists) {
				return apperrors.ErrAlreadyHasAccess
			}
			return apperrors.Store("create access", err)
		}
		result.Access = grant
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Access != nil {
		cache.InvalidateUsers(ctx, s.cache, userID)
	}
	return &result, nil
}

func (s *service) ListInvitations(ctx context.Context, userID, status string) ([]models.WalletInvitation, error) {
	var filter *models.InvitationStatus
	switch status {
	case "":
		pending := models.InvitationPending
		filter = &pending
	case StatusAll:
	default:
		st := models.InvitationStatus(status)
		if !st.Valid() {
			return nil, apperrors.Validation("status must be one of: pending, accepted, declined, all")
		}
		filter = &st
	}

	invitations, err := s.store.Invitations.ListForUser(ctx, userID, filter)
	if err != nil {
		return nil, apperrors.Store("list invitations", err)
	}
	if invitations == nil {
		invitations = []models.WalletInvitation{}
	}
	return invitations, nil
}

func (s *service) ListAccess(ctx context.Context, walletID, userID string) ([]models.AccessGrantView, error) {
	if _, err := s.resolver.Authorize(ctx, walletID, userID, models.OpListAccess); err != nil {
		return nil, err
	}
	grants, err := s.store.Access.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, apperrors.Store("list access", err)
	}
	if grants == nil {
		grants = []models.AccessGrantView{}
	}
	return grants, nil
}

func (s *service) Revoke(ctx context.Context, walletID, ownerID, targetUserID string) error {
	if targetUserID == "" {
		return apperrors.Validation("User ID is required")
	}
	if _, err := s.resolver.Authorize(ctx, walletID, ownerID, models.OpRevokeAccess); err != nil {
		return err
	}

	n, err := s.store.Access.Delete(ctx, walletID, targetUserID)
	if err != nil {
		return apperrors.Store("revoke access", err)
	}
	if n == 0 {
		return apperrors.ErrAccessNotFound
	}

	cache.InvalidateUsers(ctx, s.cache, targetUserID)
	logging.Default.Info("Access to wallet %s revoked for %s", walletID, targetUserID)
	return nil
}
