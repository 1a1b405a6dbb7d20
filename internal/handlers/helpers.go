package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"

	"github.com/gofiber/fiber/v2"
)

var errInvalidBody = apperrors.Validation("Invalid request body")

// parseBody decodes the JSON body into out.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		if errors.Is(err, models.ErrMoneyOutOfRange) {
			return apperrors.Validation(fmt.Sprintf("Amount must be at most %s", models.MaxMoney))
		}
		return errInvalidBody.Wrap(err)
	}
	return nil
}

// parseSince reads the lastUpdate query parameter. A missing value means the
// beginning of time.
func parseSince(c *fiber.Ctx) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("lastUpdate"))
	if raw == "" {
		return time.Unix(0, 0), nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, apperrors.Validation("lastUpdate must be an RFC 3339 timestamp")
	}
	return t, nil
}
