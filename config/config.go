// Package config loads the simulator settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/luca-patrignani/razzia/agent"
	"github.com/luca-patrignani/razzia/domain/catalog"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Players int `env:"RAZZIA_PLAYERS" envDefault:"4"`
	// Seed of the first game; zero draws a fresh seed.
	Seed     uint64 `env:"RAZZIA_SEED" envDefault:"0"`
	Games    int    `env:"RAZZIA_GAMES" envDefault:"1"`
	Workers  int    `env:"RAZZIA_WORKERS" envDefault:"4"`
	Strategy string `env:"RAZZIA_STRATEGY" envDefault:"trivial"`
	LogLevel string `env:"RAZZIA_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Players < catalog.MinPlayers || c.Players > catalog.MaxPlayers {
		return fmt.Errorf("%w: %d players, want %d..%d", ErrInvalidConfig, c.Players, catalog.MinPlayers, catalog.MaxPlayers)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: %d games", ErrInvalidConfig, c.Games)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.Workers)
	}
	if !slices.Contains(agent.Strategies(), c.Strategy) {
		return fmt.Errorf("%w: strategy %q, want one of %s", ErrInvalidConfig, c.Strategy, strings.Join(agent.Strategies(), ", "))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel as a slog level name.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level: %w", ErrInvalidConfig, err)
	}
	return l, nil
}
