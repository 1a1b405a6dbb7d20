// Package access resolves a caller's effective role on a wallet and checks
// it against the permission matrix.
package access

import (
	"context"
	"errors"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"
)

// Resolution is the outcome of a role lookup. Wallet is always set when
// Role is not RoleNone.
type Resolution struct {
	Role   models.Role
	Wallet *models.Wallet
}

type Resolver struct {
	wallets repositories.WalletRepository
	access  repositories.AccessRepository
}

func NewResolver(wallets repositories.WalletRepository, access repositories.AccessRepository) *Resolver {
	return &Resolver{wallets: wallets, access: access}
}

// ForStore binds a resolver to the repositories of a store, typically a
// transaction-scoped one.
func ForStore(s *repositories.Store) *Resolver {
	return NewResolver(s.Wallets, s.Access)
}

// Resolve returns the caller's role: owner if they created the wallet, the
// granted role if they hold an access grant, and RoleNone otherwise. A
// missing wallet also resolves to RoleNone.
func (r *Resolver) Resolve(ctx context.Context, walletID, userID string) (*Resolution, error) {
	if walletID == "" || userID == "" {
		return &Resolution{Role: models.RoleNone}, nil
	}

	wallet, err := r.wallets.GetOwned(ctx, walletID, userID)
	switch {
	case err == nil:
		return &Resolution{Role: models.RoleOwner, Wallet: wallet}, nil
	case !errors.Is(err, repositories.ErrWalletNotFound):
		return nil, apperrors.Store("resolve wallet role", err)
	}

	grant, err := r.access.Get(ctx, walletID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccessNotFound) {
			return &Resolution{Role: models.RoleNone}, nil
		}
		return nil, apperrors.Store("resolve wallet role", err)
	}

	wallet, err = r.wallets.GetByID(ctx, walletID)
	if err != nil {
		// dangling grant
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return &Resolution{Role: models.RoleNone}, nil
		}
		return nil, apperrors.Store("resolve wallet role", err)
	}
	return &Resolution{Role: grant.Role, Wallet: wallet}, nil
}

// Authorize resolves the role and checks it against op. A caller without any
// role gets ErrWalletNotFound so the wallet's existence is not revealed; a
// caller whose role is too weak gets ErrInsufficientRole.
func (r *Resolver) Authorize(ctx context.Context, walletID, userID string, op models.Operation) (*Resolution, error) {
	res, err := r.Resolve(ctx, walletID, userID)
	if err != nil {
		return nil, err
	}
	if res.Role == models.RoleNone {
		return nil, apperrors.ErrWalletNotFound
	}
	if !res.Role.Can(op) {
		return nil, apperrors.ErrInsufficientRole
	}
	return res, nil
}

// Audience lists every user who can see the wallet: the owner first, then grantees.
func (r *Resolver) Audience(ctx context.Context, wallet *models.Wallet) ([]string, error) {
	ids, err := r.access.ListUserIDsByWallets(ctx, wallet.ID)
	if err != nil {
		return nil, apperrors.Store("list wallet audience", err)
	}
	return append([]string{wallet.CreatedBy}, ids...), nil
}
