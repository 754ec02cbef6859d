// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	AI      AIConfig      `toml:"ai"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// AIConfig maps the generation endpoint settings.
type AIConfig struct {
	BaseURL       *string `toml:"base-url"`
	PlanModel     *string `toml:"plan-model"`
	AnalysisModel *string `toml:"analysis-model"`
	APIKeyEnv     *string `toml:"api-key-env"`
	APIKeyFile    *string `toml:"api-key-file"`
}

// StorageConfig maps persistence settings.
type StorageConfig struct {
	Path *string `toml:"path"`
}

// UIConfig maps interface settings.
type UIConfig struct {
	Theme *string `toml:"theme"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if cfg.UI.Theme != nil {
		if _, err := ParseTheme(*cfg.UI.Theme); err != nil {
			return FileConfig{}, err
		}
	}
	return cfg, nil
}

// Theme is the UI palette.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme validates a theme name.
func ParseTheme(v string) (Theme, error) {
	switch Theme(v) {
	case ThemeDark, ThemeLight:
		return Theme(v), nil
	default:
		return "", fmt.Errorf("invalid theme %q (want dark or light)", v)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
