package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetBoolEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{"true", "true", false, true},
		{"one", "1", false, true},
		{"false", "false", true, false},
		{"garbage keeps default", "sometimes", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LEDGERLY_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, GetBoolEnv("LEDGERLY_TEST_BOOL", tt.def))
		})
	}

	assert.True(t, GetBoolEnv("LEDGERLY_TEST_UNSET_BOOL", true))
}

func TestLoadCookieSecure(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("COOKIE_SECURE", "")

	t.Setenv("ENV", "development")
	assert.False(t, Load().CookieSecure)

	t.Setenv("ENV", "production")
	cfg := Load()
	assert.True(t, cfg.CookieSecure)
	assert.True(t, cfg.IsProduction())

	// behind a TLS-terminating proxy in staging
	t.Setenv("ENV", "staging")
	t.Setenv("COOKIE_SECURE", "true")
	assert.True(t, Load().CookieSecure)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("AUTH_COOKIE_NAME", "")

	cfg := Load()
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "auth-token", cfg.CookieName)
}
