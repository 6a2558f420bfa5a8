package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL())
	require.Equal(t, 12, cfg.Auth.BcryptCost)
	require.Equal(t, 10, cfg.Rate.LoginMaxAttempts)
	require.Equal(t, time.Minute, cfg.Rate.LoginWindow())
	require.Empty(t, cfg.Postgres.DSN)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "24")
	t.Setenv("RATE_LOGIN_WINDOW_SECONDS", "120")
	t.Setenv("APP_PORT", "9999")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	require.Equal(t, 2*time.Minute, cfg.Rate.LoginWindow())
	require.Equal(t, "0.0.0.0:9999", cfg.App.Addr())
}
