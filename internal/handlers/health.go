package handlers

import (
	"context"
	"time"

	"ledgerly/internal/repositories"
	"ledgerly/internal/repositories/cache"
	"ledgerly/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store *repositories.Store
	cache cache.WalletListCache
}

func NewHealthHandler(store *repositories.Store, walletCache cache.WalletListCache) *HealthHandler {
	return &HealthHandler{store: store, cache: walletCache}
}

// HealthCheck reports 503 when the database is unreachable. A cache outage
// only degrades the status.
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	services := fiber.Map{"database": "connected", "cache": "connected"}
	status := "ok"
	code := fiber.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		services["database"] = err.Error()
		status = "unavailable"
		code = fiber.StatusServiceUnavailable
	}
	if h.cache != nil {
		if err := h.cache.HealthCheck(ctx); err != nil {
			services["cache"] = err.Error()
			if code == fiber.StatusOK {
				status = "degraded"
			}
		}
	}

	body := fiber.Map{"status": status, "services": services}
	if rc, ok := h.cache.(*cache.CacheService); ok {
		stats := rc.GetStats()
		body["pool_stats"] = fiber.Map{
			"hits":        stats.Hits,
			"misses":      stats.Misses,
			"timeouts":    stats.Timeouts,
			"total_conns": stats.TotalConns,
			"idle_conns":  stats.IdleConns,
			"stale_conns": stats.StaleConns,
		}
	}

	return utils.Respond(c, code, utils.Envelope{IsSuccess: code == fiber.StatusOK, Data: body})
}
