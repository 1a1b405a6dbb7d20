// Package repositories provides data access layer implementations.
// It handles all database operations and data persistence logic.
package repositories

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"ledgerly/internal/config"
	"ledgerly/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the process-wide database handle, set by Connect.
var DB *gorm.DB

var (
	connectOnce sync.Once
	connectErr  error
)

// Connect opens and migrates the database exactly once per process. Later
// calls return the same handle (or the same error).
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	connectOnce.Do(func() {
		db, err := Open(cfg)
		if err != nil {
			connectErr = err
			return
		}
		if err := Migrate(db); err != nil {
			connectErr = fmt.Errorf("failed to migrate database: %w", err)
			return
		}
		DB = db
		log.Printf("✅ %s connected & migrations applied", cfg.Driver)
	})
	return DB, connectErr
}

// Close releases the process-wide handle.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

// Open connects to the configured driver and applies pool settings.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres", "":
		dialector = postgres.Open(postgresDSN(cfg))
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	// Configure GORM logger to ignore "record not found" errors
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		// child rows are removed explicitly in cascades
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// a single writer avoids "database is locked"
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func postgresDSN(cfg config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return "host=" + cfg.Host +
		" user=" + cfg.User +
		" password=" + cfg.Password +
		" dbname=" + cfg.Name +
		" port=" + cfg.Port +
		" sslmode=" + cfg.SSLMode
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Wallet{},
		&models.WalletEntry{},
		&models.WalletAccess{},
		&models.WalletInvitation{},
		&models.CascadeFailure{},
	)
}

// ResetDatabase drops and recreates every table.
func ResetDatabase(db *gorm.DB) error {
	if db == nil {
		return errors.New("database not initialized")
	}
	err := db.Migrator().DropTable(
		models.EntryTagsJoinTable,
		&models.WalletEntry{},
		&models.WalletAccess{},
		&models.WalletInvitation{},
		&models.Wallet{},
		&models.Tag{},
		&models.User{},
		&models.CascadeFailure{},
	)
	if err != nil {
		return err
	}
	return Migrate(db)
}
