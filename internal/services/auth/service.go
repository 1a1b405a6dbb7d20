// Package auth registers users, checks passwords and issues session tokens.
//
// Tokens carry the user's token version. Logging out bumps the stored
// version, which invalidates every token issued before it.
package auth

import (
	"context"
	"errors"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/logging"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"
	"ledgerly/internal/utils"
	"ledgerly/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type service struct {
	users  repositories.UserRepository
	secret string
	ttl    time.Duration
	cost   int
}

func NewService(users repositories.UserRepository, secret string, ttl time.Duration) Service {
	return &service{
		users:  users,
		secret: secret,
		ttl:    ttl,
		cost:   bcrypt.DefaultCost,
	}
}

func (s *service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in = in.normalized()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, apperrors.Store("hash password", err)
	}

	user := &models.User{
		Email:    in.Email,
		Password: string(hashed),
		Name:     in.Name,
		Avatar:   in.Avatar,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, apperrors.Store("create user", err)
	}

	logging.Default.Info("User %s registered", user.ID)
	return s.issue(user)
}

func (s *service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	in.Email = models.NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			logging.Default.Debug("Login failed: no user for %s", in.Email)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Store("load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		logging.Default.Debug("Login failed: incorrect password for user %s", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := utils.ParseToken(token, s.secret)
	if err != nil {
		return nil
	}
	if err := s.users.IncrementTokenVersion(ctx, claims.UserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.Store("revoke tokens", err)
	}
	logging.Default.Info("User %s logged out", claims.UserID)
	return nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*models.UserClaims, *models.User, error) {
	if token == "" {
		return nil, nil, apperrors.ErrNotAuthenticated
	}
	claims, err := utils.ParseToken(token, s.secret)
	if err != nil {
		logging.Default.Debug("Rejected token: %v", err)
		return nil, nil, apperrors.ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, apperrors.ErrUserNotFound
		}
		return nil, nil, apperrors.Store("load user", err)
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, nil, apperrors.ErrSessionExpired
	}
	return claims, user, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Store("load user", err)
	}
	return user, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.User, error) {
	in = in.normalized()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.users.UpdateProfile(ctx, userID, in.Name, in.Avatar)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Store("update profile", err)
	}
	return user, nil
}

func (s *service) issue(user *models.User) (*Session, error) {
	token, err := utils.GenerateToken(user, s.secret, s.ttl)
	if err != nil {
		logging.Default.Error("Error generating token for %s: %v", user.ID, err)
		return nil, apperrors.Store("generate token", err)
	}
	return &Session{
		User:      user,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}
