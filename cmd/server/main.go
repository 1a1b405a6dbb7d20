// Package main is the entry point for the API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledgerly/internal/audit"
	"ledgerly/internal/config"
	"ledgerly/internal/logging"
	"ledgerly/internal/repositories"
	"ledgerly/internal/repositories/cache"
	"ledgerly/internal/routes"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	logging.Default.SetLevel(logging.ParseLevel(cfg.LogLevel))

	db, err := repositories.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := repositories.Close(); err != nil {
			log.Printf("⚠️ Failed to close database connection: %v", err)
		}
	}()

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Periodic check of connection pool stats
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats := sqlDB.Stats()
				logging.Default.Info("DB Stats: Open=%d, Idle=%d, InUse=%d, WaitCount=%d, WaitDuration=%s",
					stats.OpenConnections, stats.Idle, stats.InUse, stats.WaitCount, stats.WaitDuration)
			}
		}
	}()

	walletCache, closeCache := connectCache(ctx, cfg)
	defer closeCache()

	recorder := audit.NewRecorder(ctx, cfg.Elasticsearch, db)

	app := routes.NewApp(cfg)
	routes.SetupRoutes(app, cfg, routes.Dependencies{
		DB:       db,
		Cache:    walletCache,
		Recorder: recorder,
	})

	go func() {
		<-ctx.Done()
		logging.Default.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logging.Default.Error("Error during shutdown: %v", err)
		}
	}()

	logging.Default.Info("Listening on :%s (%s)", cfg.Port, cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}

// connectCache returns the Redis-backed wallet list cache, or an in-process
// one when Redis cannot be reached.
func connectCache(ctx context.Context, cfg *config.Config) (cache.WalletListCache, func()) {
	client := cache.NewRedisClient(cfg.Redis)
	svc := cache.NewCacheService(client, cfg.WalletListCacheTTL)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := svc.HealthCheck(pingCtx); err != nil {
		logging.Default.Warn("Redis unavailable, wallet lists cached in process only: %v", err)
		if err := svc.Close(); err != nil {
			logging.Default.Warn("Error closing Redis client: %v", err)
		}
		return cache.NewMemoryCache(cfg.WalletListCacheTTL), func() {}
	}

	log.Println("✅ Redis connected")
	return svc, func() {
		if err := svc.Close(); err != nil {
			log.Printf("⚠️ Failed to close Redis connection: %v", err)
		}
	}
}
