package utils

import (
	"errors"

	"ledgerly/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalsClaims = "claims"
	LocalsUser   = "user"
)

// GetUserClaims extracts the user claims from the Fiber context.
// It returns an error if the claims are missing or of an invalid type.
func GetUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	v := c.Locals(LocalsClaims)
	if v == nil {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*models.UserClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}

// GetUserID returns the authenticated user id, or "" when the request is anonymous.
func GetUserID(c *fiber.Ctx) string {
	claims, err := GetUserClaims(c)
	if err != nil {
		return ""
	}
	return claims.UserID
}

// GetUser returns the user loaded by the auth middleware.
func GetUser(c *fiber.Ctx) (*models.User, bool) {
	u, ok := c.Locals(LocalsUser).(*models.User)
	return u, ok
}
