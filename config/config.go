// Package config holds the editor's configurable policies.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Display bounds what the pretty printer shows.
type Display struct {
	MaxDepth     int `yaml:"max_depth"`
	MaxListItems int `yaml:"max_list_items"`
	MaxBytes     int `yaml:"max_bytes"`
}

// Config holds all configurable bencedit settings.
type Config struct {
	Display Display `yaml:"display"`

	// AllowEmptyKeys permits "" as a dictionary key in literals and
	// insert targets.
	AllowEmptyKeys bool `yaml:"allow_empty_keys"`

	// CreateMissing makes interactive mode start a fresh empty
	// dictionary when the file does not exist, instead of failing.
	CreateMissing bool `yaml:"create_missing"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Display: Display{
			MaxDepth:     8,
			MaxListItems: 32,
			MaxBytes:     64,
		},
		Color: "auto",
	}
}

// Load reads a YAML config file over the defaults. An absent file is
// not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", cfg.Color)
	}
	d := cfg.Display
	if d.MaxDepth < 0 || d.MaxListItems < 1 || d.MaxBytes < 1 {
		return fmt.Errorf("display bounds out of range")
	}
	return nil
}
