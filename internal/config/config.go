// internal/config/config.go
//
// Environment configuration for the mastermind CLI.
// Values come from the process environment (a .env file, if present,
// is loaded by main before parsing).

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings not decided per game.
type Config struct {
	// ScoresFile is the JSON scores collection path (default backend).
	ScoresFile string `env:"SCORES_FILE" envDefault:"scores.json"`

	// ScoresDB, when set, switches score persistence to a SQLite
	// database at this path instead of the JSON file.
	ScoresDB string `env:"SCORES_DB"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
