package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://localhost/auth_test?sslmode=disable")
	t.Setenv("SESSION_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "debug", cfg.GinMode)
	require.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.False(t, cfg.CookieSecure)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadRequiresDatabaseDSN(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("SESSION_SECRET", "test-secret")

	_, err := Load()
	require.ErrorContains(t, err, "DATABASE_DSN")
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost/auth_test?sslmode=disable")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.ErrorContains(t, err, "SESSION_SECRET")
}
