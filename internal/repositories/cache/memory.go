package cache

import (
	"context"
	"sync"
	"time"

	"ledgerly/internal/models"
)

type memoryItem struct {
	wallets   []models.WalletView
	expiresAt time.Time
}

// MemoryCache is an in-process WalletListCache for single-instance setups
// where Redis is not reachable.
type MemoryCache struct {
	mu       sync.RWMutex
	items    map[string]memoryItem
	versions map[string]int64
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		items:    make(map[string]memoryItem),
		versions: make(map[string]int64),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (c *MemoryCache) GetWalletList(ctx context.Context, userID string) ([]models.WalletView, bool, error) {
	c.mu.RLock()
	item, ok := c.items[WalletListKey(userID)]
	c.mu.RUnlock()
	if !ok || c.now().After(item.expiresAt) {
		return nil, false, nil
	}
	out := make([]models.WalletView, len(item.wallets))
	copy(out, item.wallets)
	return out, true, nil
}

func (c *MemoryCache) ListVersion(ctx context.Context, userID string) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.versions[userID], nil
}

func (c *MemoryCache) SetWalletList(ctx context.Context, userID string, version int64, wallets []models.WalletView) (bool, error) {
	stored := make([]models.WalletView, len(wallets))
	copy(stored, wallets)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.versions[userID] != version {
		return false, nil
	}
	c.items[WalletListKey(userID)] = memoryItem{wallets: stored, expiresAt: c.now().Add(c.ttl)}
	return true, nil
}

func (c *MemoryCache) InvalidateWalletLists(ctx context.Context, userIDs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range userIDs {
		delete(c.items, WalletListKey(id))
		c.versions[id]++
	}
	return nil
}

func (c *MemoryCache) HealthCheck(ctx context.Context) error {
	return nil
}

// Len reports how many lists are cached, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
