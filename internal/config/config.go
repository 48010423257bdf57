// Package config holds the YAML-backed configuration for the reference
// TUI: widget mode, paging, and presentation defaults. Engine behavior
// itself is configured in code via combobox.Config.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "COMBOX_CONFIG"

// Config is the demo application configuration.
type Config struct {
	// Multi switches the widget into multi-select mode.
	Multi bool `yaml:"multi"`
	// PageSize bounds store searches driven by the TUI.
	PageSize int `yaml:"page_size"`
	// MaxVisible caps the dropdown height in rows.
	MaxVisible int `yaml:"max_visible"`
	// NoColor disables styled output.
	NoColor bool `yaml:"no_color"`
	// Placeholder is shown in the empty input.
	Placeholder string `yaml:"placeholder"`
	// HelperText is the assistive line rendered under the widget.
	HelperText string `yaml:"helper_text"`
	// Namespace prefixes generated element identifiers.
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		PageSize:    50,
		MaxVisible:  8,
		Placeholder: "type to search…",
		HelperText:  "arrows navigate, enter selects, esc closes",
		Namespace:   "combox",
	}
}

// Load reads the config file at path, or the EnvConfigPath / default
// location when path is empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".config", "combox", "config.yaml")
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return parse(data, cfg)
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (Config, error) {
	return parse(data, Default())
}

func parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.PageSize < 0 {
		return fmt.Errorf("page_size must not be negative")
	}
	if c.MaxVisible < 0 {
		return fmt.Errorf("max_visible must not be negative")
	}
	return nil
}
