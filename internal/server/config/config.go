// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the CRM server.
//
// The defaults are for local development; JWT_SECRET in particular must
// be overridden in any real deployment.
type Config struct {
	Address        string        `env:"ADDRESS" envDefault:":4000"`
	DatabasePath   string        `env:"DATABASE_PATH" envDefault:"gocrm.db"`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
}

// Load builds a Config from environment variables over defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
