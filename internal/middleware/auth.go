// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/logging"
	"ledgerly/internal/services/auth"
	"ledgerly/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware authenticates requests by their session cookie or bearer
// token and stores the caller in the request locals.
type AuthMiddleware struct {
	authService auth.Service
	cookie      utils.CookieSettings
}

func NewAuthMiddleware(authService auth.Service, cookie utils.CookieSettings) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		cookie:      cookie,
	}
}

// Handler rejects the request unless the token is valid, unrevoked and
// belongs to an existing user. A token whose account is gone counts as a
// missing credential.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	return m.authenticate(c, false)
}

// Self guards the caller's own account routes. It differs from Handler only
// for a deleted account, which answers 404 "User not found".
func (m *AuthMiddleware) Self(c *fiber.Ctx) error {
	return m.authenticate(c, true)
}

func (m *AuthMiddleware) authenticate(c *fiber.Ctx, reportMissingUser bool) error {
	token := utils.TokenFromRequest(c, m.cookie.Name)
	if token == "" {
		return utils.Unauthorized(c, "Authentication required", "Please log in to continue")
	}

	claims, user, err := m.authService.Authenticate(c.UserContext(), token)
	if err != nil {
		userGone := apperrors.Is(err, apperrors.ErrUserNotFound)
		if userGone || apperrors.Is(err, apperrors.ErrSessionExpired) {
			logging.Default.Debug("Clearing session cookie on %s: %v", c.Path(), err)
			utils.ClearAuthCookie(c, m.cookie)
		}
		if userGone && !reportMissingUser {
			return utils.Unauthorized(c, apperrors.ErrNotAuthenticated.Message, "Your account no longer exists")
		}
		return utils.Error(c, err)
	}

	c.Locals(utils.LocalsClaims, claims)
	c.Locals(utils.LocalsUser, user)

	return c.Next()
}
