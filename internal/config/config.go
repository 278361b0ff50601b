// Package config provides the runtime configuration for the game.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Languages lists the message catalogs shipped in assets.
var Languages = []string{"en", "ko"}

// Config holds all configuration options.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	Language  string `env:"BASEBALL_LANG" envDefault:"en"`
	Reprompt  bool   `env:"BASEBALL_REPROMPT" envDefault:"false"`
	Seed      int64  `env:"BASEBALL_SEED" envDefault:"0"`      // non-zero selects a seeded picker
	Daily     bool   `env:"BASEBALL_DAILY" envDefault:"false"` // derive secrets from today's date
	DailySalt string `env:"BASEBALL_DAILY_SALT" envDefault:"number-baseball"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Level returns the parsed zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Validate checks config values for errors.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if !supported(c.Language) {
		return fmt.Errorf("language %q: want one of %v", c.Language, Languages)
	}
	if c.Daily && c.Seed != 0 {
		return fmt.Errorf("daily mode and a fixed seed are mutually exclusive")
	}
	return nil
}

func supported(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}
