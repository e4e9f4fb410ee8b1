package config

import (
	"fmt"

	"temple/meta"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the runtime settings of the temple binary.
type Config struct {
	Seed      uint64   `env:"TEMPLE_SEED"       envDefault:"1"`
	LogLevel  string   `env:"TEMPLE_LOG_LEVEL"  envDefault:"info"`
	Games     int      `env:"TEMPLE_GAMES"`
	Agents    []string `env:"TEMPLE_AGENT"      envDefault:"random,cautious" envSeparator:","`
	OutDir    string   `env:"TEMPLE_OUT_DIR"    envDefault:"experiments"`
	BoardFile string   `env:"TEMPLE_BOARD_FILE"`
	MapFile   string   `env:"TEMPLE_MAP_FILE"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{Games: meta.NUM_GAMES}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv fills target from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks values that parsing alone cannot.
func (c Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Games)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("at least one agent is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level is the zerolog level named by LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
