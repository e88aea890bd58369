package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Built-in defaults used when neither a flag nor the config file sets a value.
const (
	DefaultDataPath    = "data/hikes.csv"
	DefaultListenAddr  = "127.0.0.1:8050"
	DefaultAccentColor = "99"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DataPath    string `json:"data_path,omitempty"`
	ListenAddr  string `json:"listen_addr,omitempty"`
	AccentColor string `json:"accent_color,omitempty"`
}

// DataPathOr returns flag when set, then the saved path, then the default.
func (c *AppConfig) DataPathOr(flag string) string {
	return firstNonEmpty(flag, c.DataPath, DefaultDataPath)
}

// ListenAddrOr returns flag when set, then the saved address, then the default.
func (c *AppConfig) ListenAddrOr(flag string) string {
	return firstNonEmpty(flag, c.ListenAddr, DefaultListenAddr)
}

// Accent returns the saved accent color or the default one.
func (c *AppConfig) Accent() string {
	return firstNonEmpty(c.AccentColor, DefaultAccentColor)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// getConfigPath returns the absolute path to ~/.marando.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".marando.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
