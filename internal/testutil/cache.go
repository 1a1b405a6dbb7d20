package testutil

import (
	"context"
	"testing"

	"ledgerly/internal/models"
	"ledgerly/internal/repositories/cache"

	"github.com/stretchr/testify/require"
)

// PrimeWalletLists caches an empty wallet list for each user so tests can
// observe which lists a mutation drops.
func PrimeWalletLists(t *testing.T, c cache.WalletListCache, userIDs ...string) {
	t.Helper()
	ctx := context.Background()
	for _, id := range userIDs {
		version, err := c.ListVersion(ctx, id)
		require.NoError(t, err)
		stored, err := c.SetWalletList(ctx, id, version, []models.WalletView{})
		require.NoError(t, err)
		require.True(t, stored)
	}
}
