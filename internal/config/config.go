package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "ledgerly-dev-secret"

// Config is the resolved process configuration.
type Config struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins string

	JWTSecret    string
	TokenTTL     time.Duration
	CookieName   string
	CookieSecure bool

	// AuthRateLimit caps login and register attempts per client per minute.
	AuthRateLimit int

	Database DatabaseConfig
	Redis    RedisConfig

	WalletListCacheTTL time.Duration

	Elasticsearch ElasticsearchConfig
}

// DatabaseConfig selects and sizes the Entity Store.
type DatabaseConfig struct {
	Driver   string // postgres | sqlite
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	SQLitePath string

	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// ElasticsearchConfig is optional; an empty URL disables the sink.
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the environment into a Config.
func Load() *Config {
	env := GetEnv("ENV", "development")
	cfg := &Config{
		Port:        GetEnv("PORT", "3000"),
		Env:         env,
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "http://localhost:3000"),

		JWTSecret:    GetEnv("JWT_SECRET", ""),
		TokenTTL:     GetDurationEnv("TOKEN_TTL", 24*time.Hour),
		CookieName:   GetEnv("AUTH_COOKIE_NAME", "auth-token"),
		CookieSecure: GetBoolEnv("COOKIE_SECURE", env == "production"),

		AuthRateLimit: GetIntEnv("AUTH_RATE_LIMIT", 5),

		Database: DatabaseConfig{
			Driver:          strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
			URL:             GetEnv("DATABASE_URL", ""),
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetEnv("DB_PORT", "5432"),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", "postgres"),
			Name:            GetEnv("DB_NAME", "ledgerly"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			SQLitePath:      GetEnv("SQLITE_PATH", "ledgerly.db"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},

		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},

		WalletListCacheTTL: GetDurationEnv("WALLET_LIST_CACHE_TTL", 30*time.Second),

		Elasticsearch: ElasticsearchConfig{
			URL:         GetEnv("ELASTICSEARCH_URL", ""),
			Username:    GetEnv("ELASTICSEARCH_USERNAME", ""),
			Password:    GetEnv("ELASTICSEARCH_PASSWORD", ""),
			IndexPrefix: GetEnv("ELASTICSEARCH_INDEX_PREFIX", "ledgerly"),
		},
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			log.Fatal("JWT_SECRET must be set in production")
		}
		log.Printf("JWT_SECRET not set, using development secret")
		cfg.JWTSecret = devJWTSecret
	}

	return cfg
}

// IsProduction reports whether this configuration targets production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// GetDurationEnv parses values like "30s" or "1h".
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		log.Printf("invalid duration for %s: %q, using %s", key, val, defaultVal)
	}
	return defaultVal
}
