package access

import (
	"context"
	"time"

	"ledgerly/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByID(ctx context.Context, id string) (*models.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetOwned(ctx context.Context, id, ownerID string) (*models.Wallet, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Wallet, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListByIDs(ctx context.Context, ids []string) ([]models.Wallet, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListOwnedIDs(ctx context.Context, ownerID string) ([]string, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWalletRepository) ListVisibleUpdatedSince(ctx context.Context, userID string, sharedIDs []string, since time.Time) ([]models.Wallet, error) {
	args := m.Called(ctx, userID, sharedIDs, since)
	return args.Get(0).([]models.Wallet), args.Error(1)
}

func (m *MockWalletRepository) UpdateDetails(ctx context.Context, id, name, icon, color string) error {
	args := m.Called(ctx, id, name, icon, color)
	return args.Error(0)
}

func (m *MockWalletRepository) IncrementBalance(ctx context.Context, id string, delta models.Money) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockWalletRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockAccessRepository struct {
	mock.Mock
}

func (m *MockAccessRepository) Create(ctx context.Context, grant *models.WalletAccess) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockAccessRepository) Get(ctx context.Context, walletID, userID string) (*models.WalletAccess, error) {
	args := m.Called(ctx, walletID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WalletAccess), args.Error(1)
}

func (m *MockAccessRepository) ListByUser(ctx context.Context, userID string) ([]models.WalletAccess, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.WalletAccess), args.Error(1)
}

func (m *MockAccessRepository) ListByWallet(ctx context.Context, walletID string) ([]models.AccessGrantView, error) {
	args := m.Called(ctx, walletID)
	return args.Get(0).([]models.AccessGrantView), args.Error(1)
}

func (m *MockAccessRepository) ListUserIDsByWallets(ctx context.Context, walletIDs ...string) ([]string, error) {
	args := m.Called(ctx, walletIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccessRepository) Delete(ctx context.Context, walletID, userID string) (int64, error) {
	args := m.Called(ctx, walletID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccessRepository) DeleteByWallets(ctx context.Context, walletIDs ...string) (int64, error) {
	args := m.Called(ctx, walletIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccessRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
