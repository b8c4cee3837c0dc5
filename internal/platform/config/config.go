// Package config loads runtime configuration from the environment so main
// stays lean.
package config

import (
	"fmt"
	"os"
	"time"
)

// Backend selects the document persistence backend.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
)

// RedisConfig holds Redis connection tuning.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Config captures everything the server needs at startup.
type Config struct {
	Addr string

	Backend     Backend
	FilePath    string
	PostgresDSN string
	Redis       RedisConfig

	// JudgeURL is the endpoint of the external AI judge. Empty disables the
	// judge route.
	JudgeURL string

	// SaveDebounce is the quiet period before a document write.
	SaveDebounce time.Duration
}

// FromEnv builds a Config from environment variables. Unset variables fall
// back to an in-process default suitable for local runs.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:     envOr("REPUBLIC_ADDR", ":8080"),
		Backend:  Backend(envOr("REPUBLIC_BACKEND", string(BackendFile))),
		FilePath: envOr("REPUBLIC_FILE_PATH", "data/republic.json"),
		JudgeURL: os.Getenv("REPUBLIC_JUDGE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REPUBLIC_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		PostgresDSN:  os.Getenv("REPUBLIC_POSTGRES_DSN"),
		SaveDebounce: time.Second,
	}

	if raw := os.Getenv("REPUBLIC_SAVE_DEBOUNCE"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse REPUBLIC_SAVE_DEBOUNCE: %w", err)
		}
		cfg.SaveDebounce = d
	}

	switch cfg.Backend {
	case BackendMemory, BackendFile, BackendPostgres, BackendRedis:
	default:
		return Config{}, fmt.Errorf("unknown REPUBLIC_BACKEND %q", cfg.Backend)
	}
	if cfg.Backend == BackendPostgres && cfg.PostgresDSN == "" {
		return Config{}, fmt.Errorf("REPUBLIC_POSTGRES_DSN is required for the postgres backend")
	}
	if cfg.Backend == BackendRedis && cfg.Redis.URL == "" {
		return Config{}, fmt.Errorf("REPUBLIC_REDIS_URL is required for the redis backend")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
