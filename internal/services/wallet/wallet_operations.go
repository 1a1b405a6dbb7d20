package wallet

import (
	"context"
	"errors"
	"fmt"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/logging"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"
	"ledgerly/internal/repositories/cache"
)

// stepError remembers which cascade step failed.
type stepError struct {
	step string
	err  error
}

func (e *stepError) Error() string { return fmt.Sprintf("%s: %v", e.step, e.err) }
func (e *stepError) Unwrap() error { return e.err }

func step(name string, err error) error {
	return &stepError{step: name, err: err}
}

var cascadeVerbs = map[string]string{
	models.CascadeWalletDelete:  "delete wallet",
	models.CascadeAccountDelete: "delete account",
}

// DeleteWallet removes the wallet's entries, tag links, invitations and
// access grants, then the wallet itself. Only the owner may do this.
func (s *service) DeleteWallet(ctx context.Context, walletID, userID string) error {
	res, err := s.resolver.Authorize(ctx, walletID, userID, models.OpDeleteWallet)
	if err != nil {
		return err
	}

	var audience []string
	err = s.store.ExecuteInTransaction(ctx, func(tx *repositories.Store) error {
		grantees, err := tx.Access.ListUserIDsByWallets(ctx, walletID)
		if err != nil {
			return step(stepListGrantees, err)
		}
		audience = append([]string{res.Wallet.CreatedBy}, grantees...)

		if _, err := tx.Entries.DeleteByWallets(ctx, walletID); err != nil {
			return step(stepDeleteEntries, err)
		}
		if _, err := tx.Invitations.DeleteByWallets(ctx, walletID); err != nil {
			return step(stepDeleteInvitations, err)
		}
		if _, err := tx.Access.DeleteByWallets(ctx, walletID); err != nil {
			return step(stepDeleteAccess, err)
		}
		n, err := tx.Wallets.Delete(ctx, walletID)
		if err != nil {
			return step(stepDeleteWallets, err)
		}
		if n == 0 {
			// deleted concurrently
			return apperrors.ErrWalletNotFound
		}
		return nil
	})
	if err != nil {
		return s.cascadeFailed(ctx, models.CascadeWalletDelete, walletID, userID, err, nil)
	}

	cache.InvalidateUsers(ctx, s.cache, audience...)
	logging.Default.Info("Wallet %s deleted by %s", walletID, userID)
	return nil
}

// DeleteAccount removes every wallet the user owns together with its
// children, the user's own grants and invitations, and finally the user.
func (s *service) DeleteAccount(ctx context.Context, userID string) error {
	var (
		audience []string
		owned    []string
	)
	err := s.store.ExecuteInTransaction(ctx, func(tx *repositories.Store) error {
		var err error
		owned, err = tx.Wallets.ListOwnedIDs(ctx, userID)
		if err != nil {
			return step(stepLoadWallets, err)
		}
		grantees, err := tx.Access.ListUserIDsByWallets(ctx, owned...)
		if err != nil {
			return step(stepListGrantees, err)
		}
		audience = append([]string{userID}, grantees...)

		if len(owned) > 0 {
			if _, err := tx.Entries.DeleteByWallets(ctx, owned...); err != nil {
				return step(stepDeleteEntries, err)
			}
			if _, err := tx.Invitations.DeleteByWallets(ctx, owned...); err != nil {
				return step(stepDeleteInvitations, err)
			}
			if _, err := tx.Access.DeleteByWallets(ctx, owned...); err != nil {
				return step(stepDeleteAccess, err)
			}
			if _, err := tx.Wallets.DeleteByOwner(ctx, userID); err != nil {
				return step(stepDeleteWallets, err)
			}
		}

		if _, err := tx.Access.DeleteByUser(ctx, userID); err != nil {
			return step(stepDeleteUserAccess, err)
		}
		if _, err := tx.Invitations.DeleteByUser(ctx, userID); err != nil {
			return step(stepDeleteUserInvites, err)
		}
		n, err := tx.Users.Delete(ctx, userID)
		if err != nil {
			return step(stepDeleteUser, err)
		}
		if n == 0 {
			return apperrors.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return s.cascadeFailed(ctx, models.CascadeAccountDelete, userID, userID, err, models.JSON{"walletIds": owned})
	}

	cache.InvalidateUsers(ctx, s.cache, audience...)
	logging.Default.Info("Account %s deleted with %d wallets", userID, len(owned))
	return nil
}

// cascadeFailed passes domain errors through and records everything else
// with the audit recorder before surfacing it as a store error.
func (s *service) cascadeFailed(ctx context.Context, op, subjectID, actorID string, err error, details models.JSON) error {
	var de *apperrors.DomainError
	if errors.As(err, &de) {
		return err
	}

	var se *stepError
	stepName := "unknown"
	if errors.As(err, &se) {
		stepName = se.step
	}

	logging.Default.Error("Cascade %s of %s failed at %s: %v", op, subjectID, stepName, err)
	if s.recorder != nil {
		failure := &models.CascadeFailure{
			Operation: op,
			SubjectID: subjectID,
			ActorID:   actorID,
			Step:      stepName,
			Error:     err.Error(),
			Details:   details,
		}
		if recErr := s.recorder.RecordCascadeFailure(context.WithoutCancel(ctx), failure); recErr != nil {
			logging.Default.Error("Error recording cascade failure of %s: %v", subjectID, recErr)
		}
	}
	return apperrors.Store(cascadeVerbs[op], err)
}
