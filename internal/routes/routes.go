// Package routes builds the fiber application and wires repositories,
// services and handlers together.
package routes

import (
	"errors"
	"time"

	"ledgerly/internal/audit"
	"ledgerly/internal/config"
	"ledgerly/internal/handlers"
	"ledgerly/internal/logging"
	"ledgerly/internal/middleware"
	"ledgerly/internal/repositories"
	"ledgerly/internal/repositories/cache"
	"ledgerly/internal/services/auth"
	"ledgerly/internal/services/export"
	"ledgerly/internal/services/ledger"
	"ledgerly/internal/services/sharing"
	"ledgerly/internal/services/tag"
	"ledgerly/internal/services/wallet"
	"ledgerly/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Dependencies are the process-wide resources the routes are built on.
type Dependencies struct {
	DB       *gorm.DB
	Cache    cache.WalletListCache
	Recorder audit.Recorder
}

// NewApp creates the fiber app with the shared middleware stack. Errors that
// escape a handler are rendered with the response envelope.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ledgerly",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return utils.Fail(c, fe.Code, fe.Message)
	}
	return utils.Error(c, err)
}

// authLimiter caps attempts per client IP. A non-positive max disables it.
func authLimiter(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return utils.Fail(c, fiber.StatusTooManyRequests, "Too many requests", "Please try again later")
		},
	})
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, cfg *config.Config, deps Dependencies) {
	store := repositories.NewStore(deps.DB)

	cookie := utils.CookieSettings{
		Name:   cfg.CookieName,
		Secure: cfg.CookieSecure,
		TTL:    cfg.TokenTTL,
	}

	// Initialize services
	authService := auth.NewService(store.Users, cfg.JWTSecret, cfg.TokenTTL)
	walletService := wallet.NewService(store, deps.Cache, deps.Recorder)
	ledgerService := ledger.NewService(store, deps.Cache)
	sharingService := sharing.NewService(store, deps.Cache)
	tagService := tag.NewService(store.Tags)
	exportService := export.NewService(store)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, walletService, cookie)
	walletHandler := handlers.NewWalletHandler(walletService)
	entryHandler := handlers.NewEntryHandler(ledgerService)
	sharingHandler := handlers.NewSharingHandler(sharingService)
	tagHandler := handlers.NewTagHandler(tagService)
	exportHandler := handlers.NewExportHandler(exportService)
	healthHandler := handlers.NewHealthHandler(store, deps.Cache)

	authMiddleware := middleware.NewAuthMiddleware(authService, cookie)
	requireAuth := authMiddleware.Handler

	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Credential endpoints
	authRoutes := api.Group("/auth")
	limit := authLimiter(cfg.AuthRateLimit)
	authRoutes.Post("/register", limit, authHandler.Register)
	authRoutes.Post("/login", limit, authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", authMiddleware.Self, authHandler.Me)
	authRoutes.Put("/profile", requireAuth, authHandler.UpdateProfile)
	authRoutes.Delete("/profile", requireAuth, authHandler.DeleteAccount)

	api.Get("/tags", requireAuth, tagHandler.ListTags)

	setupWalletRoutes(api.Group("/wallets", requireAuth), walletHandler, entryHandler, sharingHandler, exportHandler)

	invitations := api.Group("/invitations", requireAuth)
	invitations.Get("/", sharingHandler.ListInvitations)
	invitations.Post("/:id", sharingHandler.RespondToInvitation)

	logging.Default.Debug("Routes registered")
}

func setupWalletRoutes(router fiber.Router, w *handlers.WalletHandler, e *handlers.EntryHandler, s *handlers.SharingHandler, x *handlers.ExportHandler) {
	router.Get("/", w.ListWallets)
	router.Post("/", w.CreateWallet)
	// before /:id so it is not taken for a wallet id
	router.Get("/updates", w.Updates)

	router.Get("/:id", w.GetWallet)
	router.Put("/:id", w.UpdateWallet)
	router.Delete("/:id", w.DeleteWallet)
	router.Get("/:id/updates", e.Changes)
	router.Get("/:id/export", x.ExportWallet)

	entries := router.Group("/:id/entries")
	entries.Get("/", e.ListEntries)
	entries.Post("/", e.CreateEntry)
	entries.Put("/:entryId", e.UpdateEntry)
	entries.Delete("/:entryId", e.DeleteEntry)
	entries.Post("/:entryId/restore", e.RestoreEntry)
	entries.Delete("/:entryId/permanent", e.PurgeEntry)

	router.Post("/:id/share", s.ShareWallet)
	router.Get("/:id/access", s.ListAccess)
	router.Delete("/:id/access", s.RevokeAccess)
}
