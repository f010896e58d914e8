package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBPath        string        `env:"DIVYANG_DB_PATH"`
	LogLevel      string        `env:"DIVYANG_LOG_LEVEL" envDefault:"warn"`
	ResetInterval time.Duration `env:"DIVYANG_RESET_INTERVAL" envDefault:"60s"`
}

// Load reads an optional .env file from the working directory and then
// the environment. Variables already set take precedence over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ResetInterval <= 0 {
		return Config{}, fmt.Errorf("DIVYANG_RESET_INTERVAL must be positive, got %s", cfg.ResetInterval)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
