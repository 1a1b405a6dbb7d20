package access

import (
	"context"
	"errors"
	"testing"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testWallet = &models.Wallet{ID: "w1", Name: "Household", CreatedBy: "owner"}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		setupMock func(*MockWalletRepository, *MockAccessRepository)
		wantRole  models.Role
		wantErr   bool
	}{
		{
			name:   "creator is owner",
			userID: "owner",
			setupMock: func(w *MockWalletRepository, a *MockAccessRepository) {
				w.On("GetOwned", mock.Anything, "w1", "owner").Return(testWallet, nil)
			},
			wantRole: models.RoleOwner,
		},
		{
			name:   "grantee gets granted role",
			userID: "bob",
			setupMock: func(w *MockWalletRepository, a *MockAccessRepository) {
				w.On("GetOwned", mock.Anything, "w1", "bob").Return(nil, repositories.ErrWalletNotFound)
				a.On("Get", mock.Anything, "w1", "bob").Return(&models.WalletAccess{WalletID: "w1", UserID: "bob", Role: models.RoleViewer}, nil)
				w.On("GetByID", mock.Anything, "w1").Return(testWallet, nil)
			},
			wantRole: models.RoleViewer,
		},
		{
			name:   "stranger has no role",
			userID: "eve",
			setupMock: func(w *MockWalletRepository, a *MockAccessRepository) {
				w.On("GetOwned", mock.Anything, "w1", "eve").Return(nil, repositories.ErrWalletNotFound)
				a.On("Get", mock.Anything, "w1", "eve").Return(nil, repositories.ErrAccessNotFound)
			},
			wantRole: models.RoleNone,
		},
		{
			name:   "grant on a deleted wallet",
			userID: "bob",
			setupMock: func(w *MockWalletRepository, a *MockAccessRepository) {
				w.On("GetOwned", mock.Anything, "w1", "bob").Return(nil, repositories.ErrWalletNotFound)
				a.On("Get", mock.Anything, "w1", "bob").Return(&models.WalletAccess{Role: models.RolePartner}, nil)
				w.On("GetByID", mock.Anything, "w1").Return(nil, repositories.ErrWalletNotFound)
			},
			wantRole: models.RoleNone,
		},
		{
			name:   "store failure",
			userID: "owner",
			setupMock: func(w *MockWalletRepository, a *MockAccessRepository) {
				w.On("GetOwned", mock.Anything, "w1", "owner").Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallets := new(MockWalletRepository)
			grants := new(MockAccessRepository)
			tt.setupMock(wallets, grants)

			res, err := NewResolver(wallets, grants).Resolve(context.Background(), "w1", tt.userID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperrors.KindStore, apperrors.KindOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantRole, res.Role)
				if tt.wantRole != models.RoleNone {
					assert.Equal(t, "w1", res.Wallet.ID)
				}
			}

			wallets.AssertExpectations(t)
			grants.AssertExpectations(t)
		})
	}
}

func TestResolver_Authorize(t *testing.T) {
	tests := []struct {
		name    string
		role    models.Role
		op      models.Operation
		wantErr error
	}{
		{"viewer can list entries", models.RoleViewer, models.OpListEntries, nil},
		{"viewer cannot create entries", models.RoleViewer, models.OpCreateEntry, apperrors.ErrInsufficientRole},
		{"partner can purge entries", models.RolePartner, models.OpPurgeEntry, nil},
		{"partner cannot share", models.RolePartner, models.OpShareWallet, apperrors.ErrInsufficientRole},
		{"partner cannot edit wallet", models.RolePartner, models.OpEditWallet, apperrors.ErrInsufficientRole},
		{"no role is not found", models.RoleNone, models.OpViewWallet, apperrors.ErrWalletNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallets := new(MockWalletRepository)
			grants := new(MockAccessRepository)
			wallets.On("GetOwned", mock.Anything, "w1", "u").Return(nil, repositories.ErrWalletNotFound)
			if tt.role == models.RoleNone {
				grants.On("Get", mock.Anything, "w1", "u").Return(nil, repositories.ErrAccessNotFound)
			} else {
				grants.On("Get", mock.Anything, "w1", "u").Return(&models.WalletAccess{Role: tt.role}, nil)
				wallets.On("GetByID", mock.Anything, "w1").Return(testWallet, nil)
			}

			res, err := NewResolver(wallets, grants).Authorize(context.Background(), "w1", "u", tt.op)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.role, res.Role)
			}
		})
	}
}

func TestResolver_Audience(t *testing.T) {
	grants := new(MockAccessRepository)
	grants.On("ListUserIDsByWallets", mock.Anything, []string{"w1"}).Return([]string{"bob", "carol"}, nil)

	ids, err := NewResolver(new(MockWalletRepository), grants).Audience(context.Background(), testWallet)
	require.NoError(t, err)
	assert.Equal(t, []string{"owner", "bob", "carol"}, ids)
}

func TestResolver_EmptyIDs(t *testing.T) {
	res, err := NewResolver(new(MockWalletRepository), new(MockAccessRepository)).Resolve(context.Background(), "", "u")
	require.NoError(t, err)
	assert.Equal(t, models.RoleNone, res.Role)
}
