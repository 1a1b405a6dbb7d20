package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ledgerly/internal/models"

	"github.com/redis/go-redis/v9"
)

// WalletListCache holds each user's wallet list for a short time. Entries
// are dropped explicitly whenever a mutation can change a user's list.
//
// Every invalidation bumps the user's list version. SetWalletList only
// stores when the version still matches the one read before the list was
// loaded, so a list read before a concurrent mutation is never cached.
type WalletListCache interface {
	GetWalletList(ctx context.Context, userID string) ([]models.WalletView, bool, error)
	ListVersion(ctx context.Context, userID string) (int64, error)
	SetWalletList(ctx context.Context, userID string, version int64, wallets []models.WalletView) (bool, error)
	InvalidateWalletLists(ctx context.Context, userIDs ...string) error
	HealthCheck(ctx context.Context) error
}

// versionTTL outlives any cached list so a version never resets while a
// list written under it can still be served.
const versionTTL = 24 * time.Hour

// KEYS: list key, version key. ARGV: expected version, payload, ttl in ms.
const setWalletListSrc = `
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`

// KEYS: list key, version key pairs. ARGV: version ttl in ms.
const invalidateWalletListsSrc = `
for i = 1, #KEYS, 2 do
	redis.call('DEL', KEYS[i])
	redis.call('INCR', KEYS[i + 1])
	redis.call('PEXPIRE', KEYS[i + 1], ARGV[1])
end
return #KEYS / 2
`

var (
	setWalletListScript         = redis.NewScript(setWalletListSrc)
	invalidateWalletListsScript = redis.NewScript(invalidateWalletListsSrc)
)

// CacheService is the Redis-backed WalletListCache.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

// Wallet list caching
func (s *CacheService) GetWalletList(ctx context.Context, userID string) ([]models.WalletView, bool, error) {
	var wallets []models.WalletView
	found, err := s.Get(ctx, WalletListKey(userID), &wallets)
	if err != nil || !found {
		return nil, false, err
	}
	return wallets, true, nil
}

func (s *CacheService) ListVersion(ctx context.Context, userID string) (int64, error) {
	version, err := s.client.Get(ctx, ListVersionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get list version: %w", err)
	}
	return version, nil
}

func (s *CacheService) SetWalletList(ctx context.Context, userID string, version int64, wallets []models.WalletView) (bool, error) {
	data, err := json.Marshal(wallets)
	if err != nil {
		return false, fmt.Errorf("failed to marshal cache value: %w", err)
	}
	keys := []string{WalletListKey(userID), ListVersionKey(userID)}
	stored, err := setWalletListScript.Run(ctx, s.client, keys, version, data, s.ttl.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to set cache value: %w", err)
	}
	return stored == 1, nil
}

func (s *CacheService) InvalidateWalletLists(ctx context.Context, userIDs ...string) error {
	if len(userIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, 2*len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, WalletListKey(id), ListVersionKey(id))
	}
	return invalidateWalletListsScript.Run(ctx, s.client, keys, versionTTL.Milliseconds()).Err()
}

// FlushWalletLists drops every cached wallet list and returns how many keys
// were removed. Other keys in the Redis database are left alone.
func (s *CacheService) FlushWalletLists(ctx context.Context) (int, error) {
	removed := 0
	iter := s.client.Scan(ctx, 0, WalletListKey("*"), 100).Iterator()
	batch := make([]string, 0, 100)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := s.Delete(ctx, batch...); err != nil {
				return removed, fmt.Errorf("failed to flush wallet lists: %w", err)
			}
			removed += len(batch)
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("failed to scan wallet lists: %w", err)
	}
	if err := s.Delete(ctx, batch...); err != nil {
		return removed, fmt.Errorf("failed to flush wallet lists: %w", err)
	}
	return removed + len(batch), nil
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
