package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	Security  SecurityConfig
	Features  FeatureConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string        `default:"0.0.0.0"`
	Port            string        `default:"9000"`
	Environment     string        `default:"development"`
	Version         string        `default:"v1"`
	ReadTimeout     time.Duration `default:"10s"`
	WriteTimeout    time.Duration `default:"15s"`
	IdleTimeout     time.Duration `default:"120s"`
	GracefulTimeout time.Duration `default:"15s"`
	MaxHeaderBytes  int           `default:"1048576"`
}

// StoreConfig selects and tunes the entity store
type StoreConfig struct {
	// Driver is "memory" or "postgres"
	Driver          string        `default:"memory"`
	DatabaseURL     string
	MaxOpenConns    int           `default:"25"`
	MaxIdleConns    int           `default:"5"`
	ConnMaxLifetime time.Duration `default:"30m"`
	ConnectTimeout  time.Duration `default:"30s"`
	SlowQuery       time.Duration `default:"100ms"`
	SeedDemoData    bool
	// SeedDataDir holds companies, jobs and courses dataset files to import
	SeedDataDir string
}

// CacheConfig selects the cache backing the rate limiter
type CacheConfig struct {
	// Provider is "memory" or "redis"
	Provider        string        `default:"memory"`
	RedisURL        string        `default:"redis://localhost:6379/0"`
	DefaultTTL      time.Duration `default:"5m"`
	CleanupInterval time.Duration `default:"1m"`
	MaxEntries      int           `default:"10000"`
	ConnectTimeout  time.Duration `default:"15s"`
}

// RateLimitConfig holds fixed window rate limiting settings
type RateLimitConfig struct {
	Enabled  bool          `default:"true"`
	Requests int           `default:"120"`
	Window   time.Duration `default:"1m"`
	// WriteRequests applies to POST, PUT, PATCH and DELETE
	WriteRequests int `default:"30"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `default:"info"`
	Format string `default:"json"`
}

// SecurityConfig holds CORS and admin auth settings
type SecurityConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string      `default:"[\"GET\",\"POST\",\"PUT\",\"PATCH\",\"DELETE\",\"OPTIONS\"]"`
	CORSAllowedHeaders []string      `default:"[\"Accept\",\"Authorization\",\"Content-Type\",\"X-Request-ID\"]"`
	CORSMaxAge         time.Duration `default:"12h"`
	// AdminJWTSecret enables AdminOnly when non-empty
	AdminJWTSecret  string
	MaxRequestBytes int64 `default:"1048576"`
}

// FeatureConfig holds behaviour switches for the aggregation engine
type FeatureConfig struct {
	// LeaderboardFallback returns demo reporters when no reports exist
	LeaderboardFallback bool
	LeaderboardLimit    int `default:"10"`
	// WeeklyStatsMode is "rolling" or "static"
	WeeklyStatsMode string `default:"rolling"`
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"

	CacheProviderMemory = "memory"
	CacheProviderRedis  = "redis"

	WeeklyStatsRolling = "rolling"
	WeeklyStatsStatic  = "static"

	MaxLeaderboardLimit = 100
)

// Load reads configuration from the environment. GO_ENV selects the
// .env.<env> file loaded in non-production environments.
func Load() (*Config, error) {
	env := getEnv("GO_ENV", "development")
	if env != "production" {
		envFile := fmt.Sprintf(".env.%s", env)
		if _, err := os.Stat(envFile); err == nil {
			_ = godotenv.Load(envFile)
		} else {
			_ = godotenv.Load()
		}
	}

	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}
	cfg.Server.Environment = env

	cfg.loadServerConfig()
	cfg.loadStoreConfig(env)
	cfg.loadCacheConfig()
	cfg.loadRateLimitConfig(env)
	cfg.loadLoggingConfig(env)
	cfg.loadSecurityConfig(env)
	cfg.loadFeatureConfig()

	if err := cfg.ValidateAll(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Defaults returns a Config populated only from struct defaults
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadServerConfig() {
	s := &c.Server
	s.Host = getEnv("SERVER_HOST", s.Host)
	s.Port = getEnv("PORT", s.Port)
	s.ReadTimeout = getDurationEnv("SERVER_READ_TIMEOUT", s.ReadTimeout)
	s.WriteTimeout = getDurationEnv("SERVER_WRITE_TIMEOUT", s.WriteTimeout)
	s.IdleTimeout = getDurationEnv("SERVER_IDLE_TIMEOUT", s.IdleTimeout)
	s.GracefulTimeout = getDurationEnv("GRACEFUL_TIMEOUT", s.GracefulTimeout)
	s.MaxHeaderBytes = getIntEnv("MAX_HEADER_BYTES", s.MaxHeaderBytes)
}

func (c *Config) loadStoreConfig(env string) {
	s := &c.Store
	s.Driver = strings.ToLower(getEnv("STORE_DRIVER", s.Driver))
	s.DatabaseURL = getEnv("DATABASE_URL", s.DatabaseURL)
	s.MaxOpenConns = getIntEnv("DB_MAX_OPEN_CONNS", s.MaxOpenConns)
	s.MaxIdleConns = getIntEnv("DB_MAX_IDLE_CONNS", s.MaxIdleConns)
	s.ConnMaxLifetime = getDurationEnv("DB_CONN_MAX_LIFETIME", s.ConnMaxLifetime)
	s.ConnectTimeout = getDurationEnv("DB_CONNECT_TIMEOUT", s.ConnectTimeout)
	s.SlowQuery = getDurationEnv("DB_SLOW_QUERY_THRESHOLD", s.SlowQuery)
	s.SeedDemoData = getBoolEnv("SEED_DEMO_DATA", env == "development")
	s.SeedDataDir = getEnv("SEED_DATA_DIR", s.SeedDataDir)

	if s.MaxIdleConns > s.MaxOpenConns {
		s.MaxIdleConns = s.MaxOpenConns
	}
}

func (c *Config) loadCacheConfig() {
	cc := &c.Cache
	cc.Provider = strings.ToLower(getEnv("CACHE_PROVIDER", cc.Provider))
	cc.RedisURL = getEnv("REDIS_URL", cc.RedisURL)
	cc.DefaultTTL = getDurationEnv("CACHE_DEFAULT_TTL", cc.DefaultTTL)
	cc.CleanupInterval = getDurationEnv("CACHE_CLEANUP_INTERVAL", cc.CleanupInterval)
	cc.MaxEntries = getIntEnv("CACHE_MAX_ENTRIES", cc.MaxEntries)
}

func (c *Config) loadRateLimitConfig(env string) {
	r := &c.RateLimit
	r.Enabled = getBoolEnv("RATE_LIMIT_ENABLED", r.Enabled)
	r.Requests = getIntEnv("RATE_LIMIT_REQUESTS", getRateLimitForEnv(env, r.Requests))
	r.WriteRequests = getIntEnv("RATE_LIMIT_WRITE_REQUESTS", r.WriteRequests)
	r.Window = getDurationEnv("RATE_LIMIT_WINDOW", r.Window)
}

func (c *Config) loadLoggingConfig(env string) {
	c.Logging.Level = getEnv("LOG_LEVEL", getDefaultLogLevel(env))
	c.Logging.Format = getEnv("LOG_FORMAT", getDefaultLogFormat(env))
}

func (c *Config) loadSecurityConfig(env string) {
	s := &c.Security
	s.AdminJWTSecret = getEnv("ADMIN_JWT_SECRET", "")
	s.CORSMaxAge = getDurationEnv("CORS_MAX_AGE", s.CORSMaxAge)
	s.MaxRequestBytes = getInt64Env("MAX_REQUEST_BYTES", s.MaxRequestBytes)

	defaultOrigins := "*"
	if env == "production" {
		defaultOrigins = ""
	}
	s.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultOrigins))
}

func (c *Config) loadFeatureConfig() {
	f := &c.Features
	f.LeaderboardFallback = getBoolEnv("LEADERBOARD_FALLBACK", f.LeaderboardFallback)
	f.LeaderboardLimit = getIntEnv("LEADERBOARD_LIMIT", f.LeaderboardLimit)
	f.WeeklyStatsMode = strings.ToLower(getEnv("WEEKLY_STATS_MODE", f.WeeklyStatsMode))
}

// ===============================
// VALIDATION
// ===============================

// ValidateAll validates every section and returns all problems at once
func (c *Config) ValidateAll() error {
	var result *multierror.Error

	validators := []func() error{
		c.Server.Validate,
		c.Store.Validate,
		c.Cache.Validate,
		c.RateLimit.Validate,
		c.Features.Validate,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if c.IsProduction() && c.Security.AdminJWTSecret == "" {
		result = multierror.Append(result, fmt.Errorf("ADMIN_JWT_SECRET is required in production"))
	}

	return result.ErrorOrNil()
}

// Validate checks server settings
func (s *ServerConfig) Validate() error {
	port, err := strconv.Atoi(s.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %s", s.Port)
	}
	if s.ReadTimeout <= 0 || s.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	return nil
}

// Validate checks store settings
func (s *StoreConfig) Validate() error {
	if s.SeedDataDir != "" {
		if info, err := os.Stat(s.SeedDataDir); err != nil || !info.IsDir() {
			return fmt.Errorf("SEED_DATA_DIR is not a directory: %s", s.SeedDataDir)
		}
	}

	switch s.Driver {
	case StoreDriverMemory:
		return nil
	case StoreDriverPostgres:
		if s.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
		if s.MaxOpenConns <= 0 {
			return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive")
		}
		return nil
	default:
		return fmt.Errorf("unsupported store driver: %q", s.Driver)
	}
}

// Validate checks cache settings
func (cc *CacheConfig) Validate() error {
	switch cc.Provider {
	case CacheProviderMemory:
		return nil
	case CacheProviderRedis:
		if cc.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when CACHE_PROVIDER=redis")
		}
		return nil
	default:
		return fmt.Errorf("unsupported cache provider: %q", cc.Provider)
	}
}

// Validate checks rate limit settings
func (r *RateLimitConfig) Validate() error {
	if !r.Enabled {
		return nil
	}
	if r.Requests <= 0 || r.WriteRequests <= 0 {
		return fmt.Errorf("rate limit request counts must be positive")
	}
	if r.Window <= 0 {
		return fmt.Errorf("rate limit window must be positive")
	}
	return nil
}

// Validate checks feature settings
func (f *FeatureConfig) Validate() error {
	var result *multierror.Error
	if f.LeaderboardLimit < 1 || f.LeaderboardLimit > MaxLeaderboardLimit {
		result = multierror.Append(result, fmt.Errorf("LEADERBOARD_LIMIT must be between 1 and %d", MaxLeaderboardLimit))
	}
	if f.WeeklyStatsMode != WeeklyStatsRolling && f.WeeklyStatsMode != WeeklyStatsStatic {
		result = multierror.Append(result, fmt.Errorf("unsupported WEEKLY_STATS_MODE: %q", f.WeeklyStatsMode))
	}
	return result.ErrorOrNil()
}

// IsProduction reports whether GO_ENV is production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports whether GO_ENV is development
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// ===============================
// ENV HELPERS
// ===============================

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getRateLimitForEnv(env string, fallback int) int {
	switch env {
	case "production":
		return fallback
	case "staging":
		return fallback * 2
	default:
		return fallback * 10
	}
}

func getDefaultLogLevel(env string) string {
	switch env {
	case "production":
		return "info"
	default:
		return "debug"
	}
}

func getDefaultLogFormat(env string) string {
	switch env {
	case "production":
		return "json"
	default:
		return "console"
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
