package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("RECORDS_SEED_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Redis.UseRedis())
	assert.Equal(t, -1, cfg.Redis.DB)
	assert.Empty(t, cfg.Records.SeedFile)
}

func TestLoad_Redis(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("REDIS_DB", "")
	t.Setenv("RECORDS_SEED_FILE", "records.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Redis.UseRedis())
	assert.Equal(t, "records.json", cfg.Records.SeedFile)

	opts, err := cfg.Redis.Options()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
}

func TestLoad_DBOverride(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("REDIS_DB", "5")

	cfg, err := Load()
	require.NoError(t, err)

	opts, err := cfg.Redis.Options()
	require.NoError(t, err)
	assert.Equal(t, 5, opts.DB)
}

func TestLoad_InvalidDBIgnored(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_DB", "five")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.Redis.DB)
}

func TestLoad_InvalidURL(t *testing.T) {
	t.Setenv("REDIS_URL", "http://localhost")

	_, err := Load()
	assert.Error(t, err)
}
