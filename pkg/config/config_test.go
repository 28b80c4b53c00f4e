package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, StoreMemory, cfg.UserStore)
	assert.Equal(t, StoreMemory, cfg.LedgerStore)
	assert.False(t, cfg.SeedDemoData)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("ACCESS_TOKEN_TTL_MS", "60000")
	t.Setenv("REFRESH_TOKEN_TTL_MS", "120000")
	t.Setenv("LEDGER_STORE", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 2*time.Minute, cfg.RefreshTokenTTL)
	assert.Equal(t, StoreRedis, cfg.LedgerStore)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.True(t, cfg.SeedDemoData)
}

func TestLoadValidation(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("UnknownUserStore", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("USER_STORE", "cassandra")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("PostgresWithoutURL", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("USER_STORE", "postgres")
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		assert.Error(t, err)
	})
}
