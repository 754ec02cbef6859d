package config

import (
	"os"
	"path/filepath"
	"testing"
)

func strPtr(v string) *string {
	return &v
}

func TestResolveAPIKeyOrder(t *testing.T) {
	t.Setenv("API_KEY", "from-default-env")
	t.Setenv("GEMINI_API_KEY", "from-gemini-env")
	t.Setenv("MY_KEY", "from-custom-env")

	keyFile := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(keyFile, []byte("from-file\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	cases := []struct {
		name string
		cfg  AIConfig
		want string
	}{
		{"file wins", AIConfig{APIKeyFile: strPtr(keyFile), APIKeyEnv: strPtr("MY_KEY")}, "from-file"},
		{"custom env", AIConfig{APIKeyEnv: strPtr("MY_KEY")}, "from-custom-env"},
		{"default env", AIConfig{}, "from-default-env"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ResolveAPIKey(c.cfg)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}

func TestResolveAPIKeyFallsBackToGemini(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini")
	got, err := ResolveAPIKey(AIConfig{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "gemini" {
		t.Fatalf("expected gemini fallback, got %q", got)
	}
}

func TestResolveAPIKeyMissingFile(t *testing.T) {
	_, err := ResolveAPIKey(AIConfig{APIKeyFile: strPtr(filepath.Join(t.TempDir(), "nope"))})
	if err == nil {
		t.Fatalf("expected error for missing key file")
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	envFile := filepath.Join(ConfigDir(), ".env")
	if err := os.WriteFile(envFile, []byte("C21_TEST_NEW=loaded\nC21_TEST_SET=overwritten\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv("C21_TEST_SET", "kept")
	t.Setenv("C21_TEST_NEW", "")
	os.Unsetenv("C21_TEST_NEW")

	loaded := LoadDotEnv()
	found := false
	for _, p := range loaded {
		if p == envFile {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s to be loaded, got %v", envFile, loaded)
	}
	if got := os.Getenv("C21_TEST_NEW"); got != "loaded" {
		t.Fatalf("expected new value to be loaded, got %q", got)
	}
	if got := os.Getenv("C21_TEST_SET"); got != "kept" {
		t.Fatalf("expected existing value to be kept, got %q", got)
	}
}
