package wallet

import (
	"context"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
)

func (s *service) GetWallet(ctx context.Context, walletID, userID string) (*models.WalletView, error) {
	res, err := s.resolver.Authorize(ctx, walletID, userID, models.OpViewWallet)
	if err != nil {
		return nil, err
	}
	view := models.NewWalletView(*res.Wallet, res.Role)
	return &view, nil
}

// ListWallets returns the owned wallets newest first followed by the shared
// wallets in the order they were granted, newest grant first.
func (s *service) ListWallets(ctx context.Context, userID string) ([]models.WalletView, error) {
	cached, version, ok := s.cachedList(ctx, userID)
	if ok {
		return cached, nil
	}

	owned, err := s.store.Wallets.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.Store("list wallets", err)
	}

	grants, err := s.store.Access.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Store("list access grants", err)
	}
	shared, err := s.sharedWallets(ctx, grants)
	if err != nil {
		return nil, err
	}

	views := make([]models.WalletView, 0, len(owned)+len(shared))
	for _, w := range owned {
		views = append(views, models.NewWalletView(w, models.RoleOwner))
	}
	views = append(views, shared...)

	s.storeList(ctx, userID, version, views)
	return views, nil
}

func (s *service) sharedWallets(ctx context.Context, grants []models.WalletAccess) ([]models.WalletView, error) {
	if len(grants) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(grants))
	for _, g := range grants {
		ids = append(ids, g.WalletID)
	}

	wallets, err := s.store.Wallets.ListByIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.Store("list shared wallets", err)
	}
	byID := make(map[string]models.Wallet, len(wallets))
	for _, w := range wallets {
		byID[w.ID] = w
	}

	views := make([]models.WalletView, 0, len(grants))
	for _, g := range grants {
		// grants can outlive a wallet only inside a failed cascade
		if w, ok := byID[g.WalletID]; ok {
			views = append(views, models.NewWalletView(w, g.Role))
		}
	}
	return views, nil
}

func (s *service) Updates(ctx context.Context, userID string, since time.Time) (*WalletUpdates, error) {
	now := time.Now()

	grants, err := s.store.Access.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Store("list access grants", err)
	}
	roles := make(map[string]models.Role, len(grants))
	sharedIDs := make([]string, 0, len(grants))
	for _, g := range grants {
		roles[g.WalletID] = g.Role
		sharedIDs = append(sharedIDs, g.WalletID)
	}

	changed, err := s.store.Wallets.ListVisibleUpdatedSince(ctx, userID, sharedIDs, since)
	if err != nil {
		return nil, apperrors.Store("list changed wallets", err)
	}

	views := make([]models.WalletView, 0, len(changed))
	for _, w := range changed {
		role := roles[w.ID]
		if w.CreatedBy == userID {
			role = models.RoleOwner
		}
		views = append(views, models.NewWalletView(w, role))
	}

	return &WalletUpdates{
		Wallets:    views,
		LastUpdate: now,
		HasUpdates: len(views) > 0,
	}, nil
}
