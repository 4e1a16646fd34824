package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings read from the environment
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	DBPath         string   `env:"DB_PATH"` // empty serves the bundled dataset
	AssetsDir      string   `env:"ASSETS_DIR" envDefault:"./assets"`
	AssetBase      string   `env:"ASSET_BASE" envDefault:"/assets/"`
	CacheSize      int      `env:"CACHE_SIZE" envDefault:"8"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:*"`
}

// Load parses the configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CacheSize < 1 {
		return Config{}, fmt.Errorf("CACHE_SIZE must be positive, got %d", cfg.CacheSize)
	}
	return cfg, nil
}
