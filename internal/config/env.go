package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIKeyEnv is the variable read when no api-key-env is configured.
	DefaultAPIKeyEnv  = "API_KEY"
	fallbackAPIKeyEnv = "GEMINI_API_KEY"
)

// LoadDotEnv loads .env files from the config dir and the working directory.
// Variables already set in the environment are kept.
func LoadDotEnv() []string {
	candidates := []string{
		filepath.Join(ConfigDir(), ".env"),
		".env",
	}
	loaded := make([]string, 0, len(candidates))
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			continue
		}
		loaded = append(loaded, path)
	}
	return loaded
}

// ResolveAPIKey finds the API key: api-key-file first, then the env var named by
// api-key-env (API_KEY by default), then GEMINI_API_KEY. An empty key is not an error.
func ResolveAPIKey(cfg AIConfig) (string, error) {
	if cfg.APIKeyFile != nil && strings.TrimSpace(*cfg.APIKeyFile) != "" {
		path := expandHome(strings.TrimSpace(*cfg.APIKeyFile))
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read api key file: %w", err)
		}
		if key := strings.TrimSpace(string(data)); key != "" {
			return key, nil
		}
	}
	name := DefaultAPIKeyEnv
	if cfg.APIKeyEnv != nil && strings.TrimSpace(*cfg.APIKeyEnv) != "" {
		name = strings.TrimSpace(*cfg.APIKeyEnv)
	}
	if key := strings.TrimSpace(os.Getenv(name)); key != "" {
		return key, nil
	}
	return strings.TrimSpace(os.Getenv(fallbackAPIKeyEnv)), nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
