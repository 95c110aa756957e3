package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreFile, cfg.ScoreStore)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MARCH_SEED", "42")
	t.Setenv("MARCH_SCORE_STORE", "redis")
	t.Setenv("MARCH_REDIS_ADDR", "10.0.0.1:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, StoreRedis, cfg.ScoreStore)
	assert.Equal(t, "10.0.0.1:6379", cfg.RedisAddr)
}

func TestLoad_UnknownStore(t *testing.T) {
	t.Setenv("MARCH_SCORE_STORE", "floppy")
	_, err := Load()
	assert.Error(t, err)
}
