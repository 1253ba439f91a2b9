package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Defaults()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, CacheProviderMemory, cfg.Cache.Provider)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 10, cfg.Features.LeaderboardLimit)
	assert.Equal(t, WeeklyStatsRolling, cfg.Features.WeeklyStatsMode)
	assert.False(t, cfg.Features.LeaderboardFallback)
	assert.Contains(t, cfg.Security.CORSAllowedMethods, "PATCH")
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.NoError(t, cfg.ValidateAll())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "8081")
	t.Setenv("LEADERBOARD_FALLBACK", "true")
	t.Setenv("LEADERBOARD_LIMIT", "25")
	t.Setenv("WEEKLY_STATS_MODE", "STATIC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Server.Environment)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.True(t, cfg.Features.LeaderboardFallback)
	assert.Equal(t, 25, cfg.Features.LeaderboardLimit)
	assert.Equal(t, WeeklyStatsStatic, cfg.Features.WeeklyStatsMode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSAllowedOrigins)
	assert.False(t, cfg.Store.SeedDemoData)
}

func TestValidateAllAggregates(t *testing.T) {
	cfg, err := Defaults()
	require.NoError(t, err)

	cfg.Store.Driver = StoreDriverPostgres
	cfg.Cache.Provider = "memcached"
	cfg.Features.LeaderboardLimit = 0
	cfg.Features.WeeklyStatsMode = "monthly"

	err = cfg.ValidateAll()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "DATABASE_URL")
	assert.Contains(t, msg, "memcached")
	assert.Contains(t, msg, "LEADERBOARD_LIMIT")
	assert.Contains(t, msg, "WEEKLY_STATS_MODE")
}

func TestProductionRequiresAdminSecret(t *testing.T) {
	cfg, err := Defaults()
	require.NoError(t, err)
	cfg.Server.Environment = "production"
	assert.False(t, cfg.IsDevelopment())

	assert.Error(t, cfg.ValidateAll())

	cfg.Security.AdminJWTSecret = "s3cret"
	assert.NoError(t, cfg.ValidateAll())
}

func TestSeedDataDirMustExist(t *testing.T) {
	cfg, err := Defaults()
	require.NoError(t, err)

	cfg.Store.SeedDataDir = t.TempDir()
	assert.NoError(t, cfg.ValidateAll())

	cfg.Store.SeedDataDir = cfg.Store.SeedDataDir + "/missing"
	err = cfg.ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEED_DATA_DIR")
}
