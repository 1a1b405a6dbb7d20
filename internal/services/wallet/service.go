package wallet

import (
	"context"
	"errors"

	"ledgerly/internal/audit"
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
	recorder audit.Recorder
}

// NewService creates a new wallet service instance
func NewService(store *repositories.Store, walletCache cache.WalletListCache, recorder audit.Recorder) Service {
	return &service{
		store:    store,
		resolver: access.ForStore(store),
		cache:    walletCache,
		recorder: recorder,
	}
}

func (s *service) CreateWallet(ctx context.Context, userID string, in CreateWalletInput) (*models.WalletView, error) {
	in = in.normalized()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	w := &models.Wallet{
		Name:            in.Name,
		Icon:            in.Icon,
		BackgroundColor: in.BackgroundColor,
		CreatedBy:       userID,
	}
	if err := s.store.Wallets.Create(ctx, w); err != nil {
		return nil, apperrors.Store("create wallet", err)
	}

	cache.InvalidateUsers(ctx, s.cache, userID)
	logging.Default.Info("Wallet %s created by %s", w.ID, userID)

	view := models.NewWalletView(*w, models.RoleOwner)
	return &view, nil
}

func (s *service) UpdateWallet(ctx context.Context, walletID, userID string, in UpdateWalletInput) (*models.WalletView, error) {
	in = in.normalized()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	res, err := s.resolver.Authorize(ctx, walletID, userID, models.OpEditWallet)
	if err != nil {
		return nil, err
	}

	name, icon, color := res.Wallet.Name, res.Wallet.Icon, res.Wallet.BackgroundColor
	if in.Name != nil {
		name = *in.Name
	}
	if in.Icon != nil {
		icon = *in.Icon
	}
	if in.BackgroundColor != nil {
		color = *in.BackgroundColor
	}

	if err := s.store.Wallets.UpdateDetails(ctx, walletID, name, icon, color); err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, apperrors.ErrWalletNotFound
		}
		return nil, apperrors.Store("update wallet", err)
	}

	updated, err := s.store.Wallets.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperrors.Store("reload wallet", err)
	}
	s.invalidateAudience(ctx, updated)

	view := models.NewWalletView(*updated, res.Role)
	return &view, nil
}

func (s *service) invalidateAudience(ctx context.Context, w *models.Wallet) {
	audience, err := s.resolver.Audience(ctx, w)
	if err != nil {
		logging.Default.Warn("Error listing audience of wallet %s: %v", w.ID, err)
		audience = []string{w.CreatedBy}
	}
	cache.InvalidateUsers(ctx, s.cache, audience...)
}
