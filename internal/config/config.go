package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig
	Records RecordsConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is optional; records stay in memory when empty
	URL string
	// DB overrides the URL's database when >= 0
	DB int
}

// RecordsConfig holds trait record configuration
type RecordsConfig struct {
	// SeedFile is a JSON array of records imported at startup
	SeedFile string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
			DB:  getEnvAsIntOrDefault("REDIS_DB", -1),
		},
		Records: RecordsConfig{
			SeedFile: os.Getenv("RECORDS_SEED_FILE"),
		},
	}

	if cfg.Redis.URL != "" {
		if _, err := redis.ParseURL(cfg.Redis.URL); err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
	}

	return cfg, nil
}

// UseRedis reports whether a Redis URL was configured
func (c RedisConfig) UseRedis() bool {
	return c.URL != ""
}

// Options builds client options from the URL and DB override
func (c RedisConfig) Options() (*redis.Options, error) {
	opts, err := redis.ParseURL(c.URL)
	if err != nil {
		return nil, err
	}
	if c.DB >= 0 {
		opts.DB = c.DB
	}
	return opts, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
