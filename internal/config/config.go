// Package config loads touchicon settings from the environment and style files.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/jmylchreest/touchicon/internal/icon"
)

var errEmptyOutput = errors.New("output path cannot be empty")

// Config holds settings that can come from the environment. Command-line
// flags override these after parsing.
type Config struct {
	Size      int      `env:"TOUCHICON_SIZE" envDefault:"180"`
	Output    string   `env:"TOUCHICON_OUTPUT" envDefault:"icon-180.png"`
	Source    string   `env:"TOUCHICON_SOURCE" envDefault:"../assets/image.png"`
	StyleFile string   `env:"TOUCHICON_STYLE"`
	Fonts     []string `env:"TOUCHICON_FONTS" envSeparator:":"`
	LogLevel  string   `env:"TOUCHICON_LOG_LEVEL" envDefault:"info"`
	Strict    bool     `env:"TOUCHICON_STRICT"`
}

// Load parses the process environment. It does not validate: flags may
// still replace values, so callers run Validate once those are applied.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses the given environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environ})
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration is usable. Commands call it after
// applying command-line overrides.
func (c Config) Validate() error {
	var errs []error
	if err := icon.ValidateSize(c.Size); err != nil {
		errs = append(errs, err)
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output path cannot be empty"))
	}
	return errors.Join(errs...)
}
