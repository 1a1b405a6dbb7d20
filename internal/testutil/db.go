// Package testutil builds throwaway stores for package tests.
package testutil

import (
	"context"
	"testing"

	"ledgerly/internal/config"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory sqlite database with every table migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := repositories.Open(config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, repositories.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// NewStore is NewDB wrapped in a Store.
func NewStore(t *testing.T) (*repositories.Store, *gorm.DB) {
	t.Helper()
	db := NewDB(t)
	return repositories.NewStore(db), db
}

// CreateUser inserts a user with a placeholder password hash.
func CreateUser(t *testing.T, store *repositories.Store, email, name string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Name: name, Password: "x"}
	require.NoError(t, store.Users.Create(context.Background(), u))
	return u
}

// CreateWallet inserts a wallet owned by ownerID.
func CreateWallet(t *testing.T, store *repositories.Store, ownerID, name string) *models.Wallet {
	t.Helper()
	w := &models.Wallet{Name: name, CreatedBy: ownerID}
	require.NoError(t, store.Wallets.Create(context.Background(), w))
	return w
}

// Grant gives userID a role on walletID.
func Grant(t *testing.T, store *repositories.Store, walletID, userID string, role models.Role) {
	t.Helper()
	require.NoError(t, store.Access.Create(context.Background(), &models.WalletAccess{
		WalletID:  walletID,
		UserID:    userID,
		Role:      role,
		GrantedBy: "test",
	}))
}

// SeedTags installs the predefined tag catalogue and returns it.
func SeedTags(t *testing.T, store *repositories.Store) []models.Tag {
	t.Helper()
	tags := make([]models.Tag, len(models.PredefinedTags))
	copy(tags, models.PredefinedTags)
	require.NoError(t, store.Tags.Upsert(context.Background(), tags))
	out, err := store.Tags.List(context.Background())
	require.NoError(t, err)
	return out
}
