package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPathsFollowXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	if got, want := DefaultConfigPath(), filepath.Join(dir, "cfg", "consistency21", "config.toml"); got != want {
		t.Fatalf("config path: expected %s, got %s", want, got)
	}
	if got, want := DefaultDBPath(), filepath.Join(dir, "data", "consistency21", "consistency21.db"); got != want {
		t.Fatalf("db path: expected %s, got %s", want, got)
	}
	if got, want := DefaultLogPath(), filepath.Join(dir, "state", "consistency21", "consistency21.log"); got != want {
		t.Fatalf("log path: expected %s, got %s", want, got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.AI.BaseURL != nil || cfg.Storage.Path != nil || cfg.UI.Theme != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[ai]
base-url = "http://localhost:11434/v1"
plan-model = "small"
api-key-env = "MY_KEY"

[storage]
path = "/tmp/c21.db"

[ui]
theme = "light"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AI.BaseURL == nil || *cfg.AI.BaseURL != "http://localhost:11434/v1" {
		t.Fatalf("unexpected base-url: %v", cfg.AI.BaseURL)
	}
	if cfg.AI.PlanModel == nil || *cfg.AI.PlanModel != "small" {
		t.Fatalf("unexpected plan-model: %v", cfg.AI.PlanModel)
	}
	if cfg.AI.AnalysisModel != nil {
		t.Fatalf("expected analysis-model unset")
	}
	if cfg.Storage.Path == nil || *cfg.Storage.Path != "/tmp/c21.db" {
		t.Fatalf("unexpected storage path: %v", cfg.Storage.Path)
	}
	if cfg.UI.Theme == nil || *cfg.UI.Theme != "light" {
		t.Fatalf("unexpected theme: %v", cfg.UI.Theme)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"unknown key": "[ai]\nmodel = \"x\"\n",
		"bad theme":   "[ui]\ntheme = \"neon\"\n",
		"bad toml":    "[ai\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeDark.Toggle() != ThemeLight || ThemeLight.Toggle() != ThemeDark {
		t.Fatalf("unexpected toggle")
	}
	if _, err := ParseTheme("dark"); err != nil {
		t.Fatalf("expected dark to parse: %v", err)
	}
}
