package wallet

import (
	"context"

	"ledgerly/internal/logging"
	"ledgerly/internal/models"
)

// cachedList returns the cached list on a hit. On a miss it returns the list
// version a freshly loaded list must be stored under, or -1 when the cache
// cannot be used for this request.
func (s *service) cachedList(ctx context.Context, userID string) ([]models.WalletView, int64, bool) {
	if s.cache == nil {
		return nil, -1, false
	}
	views, found, err := s.cache.GetWalletList(ctx, userID)
	if err != nil {
		logging.Default.Warn("Error reading wallet list cache for %s: %v", userID, err)
		return nil, -1, false
	}
	if found {
		return views, 0, true
	}
	version, err := s.cache.ListVersion(ctx, userID)
	if err != nil {
		logging.Default.Warn("Error reading wallet list version for %s: %v", userID, err)
		return nil, -1, false
	}
	return nil, version, false
}

func (s *service) storeList(ctx context.Context, userID string, version int64, views []models.WalletView) {
	if s.cache == nil || version < 0 {
		return
	}
	stored, err := s.cache.SetWalletList(ctx, userID, version, views)
	if err != nil {
		logging.Default.Warn("Error caching wallet list for %s: %v", userID, err)
		return
	}
	if !stored {
		logging.Default.Debug("Wallet list for %s changed while loading, not cached", userID)
	}
}
