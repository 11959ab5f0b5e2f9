// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      string        `env:"RM_PORT" envDefault:"8080"`
	DBPath    string        `env:"RM_DB_PATH" envDefault:"roomate-meal.db"`
	CacheDir  string        `env:"RM_CACHE_DIR" envDefault:".roomate-meal"`
	LogLevel  string        `env:"RM_LOG_LEVEL" envDefault:"info"`
	JWTSecret string        `env:"RM_JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL  time.Duration `env:"RM_TOKEN_TTL" envDefault:"24h"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
