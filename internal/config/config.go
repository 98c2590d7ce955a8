package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/globequiz.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:""`

	// BaseURL is the public origin used when building share links.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// Defaults applied to sessions started from links that omit the
	// parameter. The pass distance default has drifted across frontend
	// revisions, so it is deployment configuration here.
	DefaultDurationSec int     `env:"DEFAULT_DURATION_SEC" envDefault:"60"`
	DefaultPassKm      float64 `env:"DEFAULT_PASS_KM" envDefault:"300"`

	// Initial admin account, seeded on boot when both are set.
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:""`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:""`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
