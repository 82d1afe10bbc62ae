// Package config loads the aoc command configuration.
//
// Priority: environment > file > defaults. The file may be YAML or JSON.
//
//	log_level: debug
//	search:
//	  max_states: 2000000
//	  all_paths: false
//	spin:
//	  cycles: 1000000000
//	telemetry: none
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config is the complete configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level" validate:"oneof=debug info warn error"`

	Search SearchConfig `yaml:"search" json:"search"`
	Spin   SpinConfig   `yaml:"spin" json:"spin"`

	// Telemetry selects the span and metric exporter: none or stdout.
	Telemetry string `yaml:"telemetry" json:"telemetry" validate:"oneof=none stdout"`
}

// SearchConfig bounds path searches.
type SearchConfig struct {
	// MaxStates aborts a search after that many finalized states; 0 = unlimited.
	MaxStates int `yaml:"max_states" json:"max_states" validate:"gte=0"`

	// AllPaths makes path commands count tiles on every optimal route.
	AllPaths bool `yaml:"all_paths" json:"all_paths"`
}

// SpinConfig configures the tilt simulation.
type SpinConfig struct {
	// Cycles is the number of spin cycles to simulate.
	Cycles int64 `yaml:"cycles" json:"cycles" validate:"gte=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Telemetry: "none",
		Search: SearchConfig{
			MaxStates: 0,
		},
		Spin: SpinConfig{
			Cycles: 1_000_000_000,
		},
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level maps LogLevel to a slog level. Unknown values map to Info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
