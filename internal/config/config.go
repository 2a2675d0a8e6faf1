// ABOUTME: Configuration management for the tracker.
// ABOUTME: JSON config file with environment variable and .env overrides.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/jamiekretzschmar/gastrocare/internal/store"
	"github.com/joho/godotenv"
)

// Config stores tracker configuration. File values come from the JSON
// config; environment variables override them.
type Config struct {
	// DataDir is the root directory for data storage.
	// Supports ~ expansion. Defaults to ~/.local/share/gastrocare.
	DataDir string `json:"data_dir,omitempty" env:"GASTROCARE_DATA_DIR"`

	// GeminiAPIKey enables the AI dietitian. Usually set via environment
	// rather than the config file.
	GeminiAPIKey string `json:"gemini_api_key,omitempty" env:"GEMINI_API_KEY"`

	// GeminiModel overrides the default dietitian model.
	GeminiModel string `json:"gemini_model,omitempty" env:"GEMINI_MODEL"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return store.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore opens the store at the configured data directory.
func (c *Config) OpenStore() (*store.Store, error) {
	return store.Open(c.GetDataDir())
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "gastrocare", "config.json")
}

// Load reads config from disk and applies environment overrides. A .env
// file in the working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
