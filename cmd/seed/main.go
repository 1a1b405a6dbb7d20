// Command seed installs the predefined tag catalogue and, optionally, a demo
// account with a populated wallet.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"ledgerly/internal/audit"
	"ledgerly/internal/config"
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"
	"ledgerly/internal/repositories/cache"
	"ledgerly/internal/services/auth"
	"ledgerly/internal/services/ledger"
	"ledgerly/internal/services/tag"
	"ledgerly/internal/services/wallet"

	"gorm.io/gorm"
)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate every table before seeding")
	demo := flag.Bool("demo", false, "create a demo user with a sample wallet")
	flag.Parse()

	config.LoadEnv()
	cfg := config.Load()

	db, err := repositories.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := repositories.Close(); err != nil {
			log.Printf("⚠️ Failed to close database connection: %v", err)
		}
	}()

	if *reset {
		if err := repositories.ResetDatabase(db); err != nil {
			log.Fatalf("Failed to reset database: %v", err)
		}
		log.Println("✅ Database reset")
		flushWalletLists(cfg)
	}

	ctx := context.Background()
	store := repositories.NewStore(db)

	tags, err := tag.NewService(store.Tags).Seed(ctx)
	if err != nil {
		log.Fatalf("Failed to seed tags: %v", err)
	}
	log.Printf("✅ %d tags available", len(tags))

	if *demo {
		if err := seedDemo(ctx, cfg, store, db, tags); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}
}

// flushWalletLists drops cached wallet lists that point at the wiped tables.
// A Redis that cannot be reached is skipped.
func flushWalletLists(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := cache.NewRedisClient(cfg.Redis)
	cacheService := cache.NewCacheService(client, cfg.WalletListCacheTTL)
	defer cacheService.Close()

	if err := cacheService.HealthCheck(ctx); err != nil {
		log.Printf("⚠️ Skipping cache flush: %v", err)
		return
	}
	removed, err := cacheService.FlushWalletLists(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to flush wallet list cache: %v", err)
		return
	}
	log.Printf("✅ %d cached wallet lists flushed", removed)
}

func seedDemo(ctx context.Context, cfg *config.Config, store *repositories.Store, db *gorm.DB, tags []models.Tag) error {
	email := config.GetEnv("DEMO_EMAIL", "demo@ledgerly.local")
	password := config.GetEnv("DEMO_PASSWORD", "demo123")

	authService := auth.NewService(store.Users, cfg.JWTSecret, cfg.TokenTTL)
	sess, err := authService.Register(ctx, auth.RegisterInput{
		Email:    email,
		Password: password,
		Name:     "Demo User",
	})
	if errors.Is(err, apperrors.ErrEmailTaken) {
		log.Println("Demo user already exists")
		return nil
	}
	if err != nil {
		return err
	}

	walletCache := cache.NewMemoryCache(time.Minute)
	wallets := wallet.NewService(store, walletCache, audit.NewGormRecorder(db))
	entries := ledger.NewService(store, walletCache)

	w, err := wallets.CreateWallet(ctx, sess.User.ID, wallet.CreateWalletInput{Name: "Household"})
	if err != nil {
		return err
	}

	tagID := func(title string) []string {
		for _, t := range tags {
			if t.Title == title {
				return []string{t.ID}
			}
		}
		return nil
	}

	samples := []ledger.EntryInput{
		{Amount: models.NewMoney(2500, 0), Type: models.EntryAdd, Description: "Monthly salary", Tags: tagID("Salary")},
		{Amount: models.NewMoney(84, 35), Type: models.EntrySubtract, Description: "Groceries", Tags: tagID("Food")},
		{Amount: models.NewMoney(45, 0), Type: models.EntrySubtract, Description: "Train pass", Tags: tagID("Transport")},
		{Amount: models.NewMoney(120, 0), Type: models.EntrySubtract, Description: "Electricity", Tags: tagID("Bills")},
	}
	for _, in := range samples {
		if _, err := entries.CreateEntry(ctx, w.ID, sess.User.ID, in); err != nil {
			return err
		}
	}

	log.Printf("✅ Demo user %s created with wallet %q", email, w.Name)
	return nil
}
