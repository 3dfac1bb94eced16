package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.True(t, cfg.SeedAtomic)
	assert.Equal(t, 8, cfg.SeedConcurrency)
	assert.Zero(t, cfg.ArtificialDelay)
	assert.Empty(t, cfg.RedisAddr)
	assert.True(t, cfg.IsDevelopment())
	assert.True(t, cfg.UsesDefaultSessionSecret())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins())
	assert.Equal(t, "host=localhost user=postgres password=postgres dbname=dashboard port=5432 sslmode=disable", cfg.DSN())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "invoices")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("SEED_ATOMIC", "false")
	t.Setenv("ARTIFICIAL_DELAY", "3s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.False(t, cfg.SeedAtomic)
	assert.Equal(t, 3*time.Second, cfg.ArtificialDelay)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "dbname=invoices")
}

func TestLoad_DSNOverridesParts(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://u:p@example:5432/x")
	cfg, err := Load([]string{"--port", "7000"})
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@example:5432/x", cfg.DSN())
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")
	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoad_ProductionRequiresSessionSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")

	t.Setenv("SESSION_SECRET", DefaultSessionSecret)
	_, err = Load(nil)
	assert.Error(t, err)

	t.Setenv("SESSION_SECRET", "a-real-secret")
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.UsesDefaultSessionSecret())
}
