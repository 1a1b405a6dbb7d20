package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"
	"ledgerly/internal/testutil"
	"ledgerly/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (*service, *repositories.Store) {
	t.Helper()
	store, _ := testutil.NewStore(t)
	svc := NewService(store.Users, testSecret, time.Hour).(*service)
	svc.cost = bcrypt.MinCost
	return svc, store
}

func register(t *testing.T, svc Service, email string) *Session {
	t.Helper()
	sess, err := svc.Register(context.Background(), RegisterInput{
		Email:    email,
		Password: "secret1",
		Name:     "Alice",
	})
	require.NoError(t, err)
	return sess
}

func TestRegister(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Register(ctx, RegisterInput{
		Email:    "  Alice@Example.COM ",
		Password: "secret1",
		Name:     " Alice ",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", sess.User.Email)
	assert.Equal(t, "Alice", sess.User.Name)
	assert.Equal(t, models.DefaultAvatar, sess.User.Avatar)
	assert.NotEqual(t, "secret1", sess.User.Password)
	assert.NotEmpty(t, sess.Token)

	stored, err := store.Users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))

	claims, err := utils.ParseToken(sess.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, stored.TokenVersion, claims.TokenVersion)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name    string
		input   RegisterInput
		message string
	}{
		{
			name:    "short password",
			input:   RegisterInput{Email: "a@example.com", Password: "12345", Name: "A"},
			message: "password must be at least 6 characters",
		},
		{
			name:    "bad email",
			input:   RegisterInput{Email: "nope", Password: "secret1", Name: "A"},
			message: "Invalid email address",
		},
		{
			name:    "missing name",
			input:   RegisterInput{Email: "a@example.com", Password: "secret1", Name: "   "},
			message: "name is required",
		},
		{
			name:    "long name",
			input:   RegisterInput{Email: "a@example.com", Password: "secret1", Name: strings.Repeat("n", 101)},
			message: "name must be at most 100 characters",
		},
		{
			name:    "long avatar",
			input:   RegisterInput{Email: "a@example.com", Password: "secret1", Name: "A", Avatar: "abcde"},
			message: "avatar must be at most 4 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc, "alice@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ALICE@example.com",
		Password: "another",
		Name:     "Other",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	assert.Equal(t, 409, apperrors.HTTPStatus(err))
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	registered := register(t, svc, "alice@example.com")
	ctx := context.Background()

	sess, err := svc.Login(ctx, LoginInput{Email: "Alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, sess.User.ID)

	_, err = svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, 401, apperrors.HTTPStatus(err))
}

func TestAuthenticateAndLogout(t *testing.T) {
	svc, _ := newTestService(t)
	sess := register(t, svc, "alice@example.com")
	ctx := context.Background()

	claims, user, err := svc.Authenticate(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, claims.UserID)
	assert.Equal(t, sess.User.ID, user.ID)

	require.NoError(t, svc.Logout(ctx, sess.Token))

	_, _, err = svc.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)

	// a fresh login works again
	again, err := svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, _, err = svc.Authenticate(ctx, again.Token)
	assert.NoError(t, err)
}

func TestAuthenticateRejects(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)

	_, _, err = svc.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)

	other, err := utils.GenerateToken(&models.User{ID: "u1", TokenVersion: 1}, "other-secret", time.Hour)
	require.NoError(t, err)
	_, _, err = svc.Authenticate(ctx, other)
	assert.ErrorIs(t, err, apperrors.ErrSessionExpired)

	sess := register(t, svc, "gone@example.com")
	_, err = store.Users.Delete(ctx, sess.User.ID)
	require.NoError(t, err)
	_, _, err = svc.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLogoutIgnoresBadTokens(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.NoError(t, svc.Logout(ctx, ""))
	assert.NoError(t, svc.Logout(ctx, "garbage"))
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)
	sess := register(t, svc, "alice@example.com")
	ctx := context.Background()

	user, err := svc.UpdateProfile(ctx, sess.User.ID, ProfileInput{Name: "Alicia", Avatar: "🦊"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", user.Name)
	assert.Equal(t, "🦊", user.Avatar)

	user, err = svc.UpdateProfile(ctx, sess.User.ID, ProfileInput{Name: "Alicia"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAvatar, user.Avatar)

	_, err = svc.UpdateProfile(ctx, sess.User.ID, ProfileInput{Name: ""})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = svc.UpdateProfile(ctx, "missing", ProfileInput{Name: "X"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetUser(t *testing.T) {
	svc, _ := newTestService(t)
	sess := register(t, svc, "alice@example.com")

	user, err := svc.GetUser(context.Background(), sess.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
