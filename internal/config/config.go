// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/abhisek/mathheroes/internal/store"
)

// Config holds settings read from MATHHEROES_* variables. Empty paths are
// filled in by Resolve.
type Config struct {
	DBPath   string `env:"MATHHEROES_DB"`
	LogFile  string `env:"MATHHEROES_LOG_FILE"`
	LogLevel string `env:"MATHHEROES_LOG_LEVEL" envDefault:"info"`

	// Seed fixes the question sequence. Zero means seed randomly.
	Seed int64 `env:"MATHHEROES_SEED" envDefault:"0"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := log.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid MATHHEROES_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

// Resolve fills empty paths with defaults under the data directory and
// creates their parent directories.
func (c *Config) Resolve() error {
	if c.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve db path: %w", err)
		}
		c.DBPath = p
	} else if err := store.EnsureDir(c.DBPath); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	if c.LogFile == "" {
		c.LogFile = filepath.Join(filepath.Dir(c.DBPath), "mathheroes.log")
	}
	if err := store.EnsureDir(c.LogFile); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	return nil
}
