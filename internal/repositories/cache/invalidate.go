package cache

import (
	"context"

	"ledgerly/internal/logging"
)

// InvalidateUsers drops the cached wallet lists of every given user. Failures
// are logged and otherwise ignored; the entries expire on their own.
func InvalidateUsers(ctx context.Context, c WalletListCache, userIDs ...string) {
	if c == nil || len(userIDs) == 0 {
		return
	}
	if err := c.InvalidateWalletLists(ctx, dedupe(userIDs)...); err != nil {
		logging.Default.Warn("Error invalidating wallet list cache for %v: %v", userIDs, err)
		return
	}
	logging.Default.Debug("Invalidated wallet list cache for %d users", len(userIDs))
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
