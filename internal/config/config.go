// Package config holds the fatool settings read from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	MinimizerMoore      = "moore"
	MinimizerBrzozowski = "brzozowski"

	OutputText = "text"
	OutputYAML = "yaml"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	LogLevel string `yaml:"log_level"`
	// MaxStates bounds determinization; 0 means unlimited.
	MaxStates int    `yaml:"max_states"`
	Minimizer string `yaml:"minimizer"`
	Output    string `yaml:"output"`
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		Minimizer: MinimizerMoore,
		Output:    OutputText,
	}
}

// Load reads the file at path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.MaxStates < 0 {
		return fmt.Errorf("%w: max_states must not be negative", ErrInvalid)
	}
	switch c.Minimizer {
	case MinimizerMoore, MinimizerBrzozowski:
	default:
		return fmt.Errorf("%w: unknown minimizer %q", ErrInvalid, c.Minimizer)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("%w: unknown output %q", ErrInvalid, c.Output)
	}
	return nil
}
