// Package config loads clarity configuration from ~/.clarity/config.json.
// This is the single source of truth for configuration; environment
// variables override the file, command-line flags override both.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all clarity configuration.
type Config struct {
	// GeminiAPIKey authenticates against the completion service.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`

	// Model overrides the completion model (default gemini-2.5-flash).
	Model string `json:"model,omitempty"`

	// Theme for the TUI ("light" or "dark").
	Theme string `json:"theme,omitempty"`

	// DebugMode enables the category file logs under ~/.clarity/logs.
	DebugMode bool `json:"debug_mode,omitempty"`
}

// Dir returns the clarity config directory (~/.clarity).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".clarity"), nil
}

func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file and applies environment overrides. A missing
// file is not an error; it yields the zero config.
func Load() (*Config, error) {
	cfg := &Config{}

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// first run, fall through to env overrides
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets the environment override the file.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("CLARITY_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("CLARITY_THEME"); v != "" {
		c.Theme = v
	}
}

// Save writes the config back. The file holds an API key, so it is written
// 0600 inside a 0700 directory.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
