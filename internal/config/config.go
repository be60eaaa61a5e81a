// Package config loads the command line tool's settings from the
// environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	// Trace writes every replayed deduction to stderr.
	Trace bool `env:"DEDUCE_TRACE" envDefault:"false"`
	// Output selects the format of command results: text or json.
	Output string `env:"DEDUCE_OUTPUT" envDefault:"text"`
}

// Load reads the Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	}
	return fmt.Errorf("invalid output format %q: must be %s or %s", c.Output, OutputText, OutputJSON)
}
