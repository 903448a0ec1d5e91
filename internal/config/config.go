package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the console's runtime configuration, read from the environment
// (after an optional .env file has been loaded by the caller).
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// BackendURL is the logistics backend base URL. Empty runs the console in
	// demo mode against in-memory data.
	BackendURL     string        `env:"BACKEND_URL"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`

	// DatabaseURL selects Postgres for the hub cache; otherwise SQLite at DBPath.
	DatabaseURL string `env:"DATABASE_URL"`
	DBPath      string `env:"DB_PATH" envDefault:"data/console.db"`
	SeedPath    string `env:"SEED_PATH" envDefault:"data/seeds/hubs.json"`

	// JWTSecret enables HS256 bearer checks on operator routes when set.
	JWTSecret string `env:"CONSOLE_JWT_SECRET"`

	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"30s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.BackendURL = strings.TrimRight(strings.TrimSpace(cfg.BackendURL), "/")
	if cfg.BackendTimeout <= 0 {
		return Config{}, fmt.Errorf("parse env: BACKEND_TIMEOUT must be positive, got %s", cfg.BackendTimeout)
	}
	if cfg.RefreshInterval <= 0 {
		return Config{}, fmt.Errorf("parse env: REFRESH_INTERVAL must be positive, got %s", cfg.RefreshInterval)
	}

	return cfg, nil
}

// DemoMode reports whether no backend is configured.
func (c Config) DemoMode() bool {
	return c.BackendURL == ""
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
