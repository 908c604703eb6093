package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Dataset
	DataDir        string
	MatchesFile    string
	DeliveriesFile string

	// Cache
	CacheDir           string
	CacheMaxAge        time.Duration
	RedisURL           string
	MemoryCacheTTL     time.Duration
	CacheSweepSchedule string

	// Cache warming pool
	WorkerCount int
	QueueSize   int
	WarmCache   bool

	// Win predictor
	LiveFeatures bool

	// Rate limiting
	RateLimitPerSecond int
	RateLimitBurst     int
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present; real env vars win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		DataDir:        getEnv("DATA_DIR", "./data/cleaned"),
		MatchesFile:    getEnv("MATCHES_FILE", "matches.csv"),
		DeliveriesFile: getEnv("DELIVERIES_FILE", "deliveries.csv"),

		CacheDir:           getEnv("CACHE_DIR", "cache"),
		CacheMaxAge:        getEnvDuration("CACHE_MAX_AGE", 24*time.Hour),
		RedisURL:           getEnv("REDIS_URL", ""),
		MemoryCacheTTL:     getEnvDuration("MEMORY_CACHE_TTL", 10*time.Minute),
		CacheSweepSchedule: getEnv("CACHE_SWEEP_SCHEDULE", "@every 1h"),

		WorkerCount: getEnvInt("WORKER_COUNT", 4),
		QueueSize:   getEnvInt("QUEUE_SIZE", 1000),
		WarmCache:   getEnvBool("WARM_CACHE", true),

		LiveFeatures: getEnvBool("LIVE_FEATURES", true),

		RateLimitPerSecond: getEnvInt("RATE_LIMIT_PER_SECOND", 100),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 200),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("invalid WORKER_COUNT: %d", c.WorkerCount)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("invalid QUEUE_SIZE: %d", c.QueueSize)
	}
	if c.CacheMaxAge <= 0 {
		return fmt.Errorf("invalid CACHE_MAX_AGE: %s", c.CacheMaxAge)
	}
	if c.MatchesFile == "" || c.DeliveriesFile == "" {
		return errors.New("MATCHES_FILE and DELIVERIES_FILE must be set")
	}
	return nil
}

// MatchesPath returns the full path of the match table.
func (c *Config) MatchesPath() string {
	return filepath.Join(c.DataDir, c.MatchesFile)
}

// DeliveriesPath returns the full path of the delivery table.
func (c *Config) DeliveriesPath() string {
	return filepath.Join(c.DataDir, c.DeliveriesFile)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
