// Package config provides configuration management for Money Manager.
// It handles loading, saving, and managing shell settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/natscamp/money-manager/common"
)

// Config represents the shell configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// MinimizeToTray hides the window to the system tray instead of closing it.
	MinimizeToTray bool `yaml:"minimize_to_tray"`
	// ShowNotifications enables the one-time "minimized to tray" notice.
	ShowNotifications bool `yaml:"show_notifications"`
	// MaximizeOnStart maximizes the window once its content has loaded.
	MaximizeOnStart bool `yaml:"maximize_on_start"`

	path string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MinimizeToTray:    true,
		ShowNotifications: true,
		MaximizeOnStart:   true,
	}
}

// Load loads the configuration from the default config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(configPath)
}

// LoadFile loads the configuration stored at path.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cfg.path = path
		if err := cfg.Save(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrConfigLoad, err)
	}
	defer file.Close()

	config := DefaultConfig()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // reject unknown fields
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: error parsing %s: %w", common.ErrConfigLoad, path, err)
	}
	config.path = path

	return config, nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save saves the configuration to the file it was loaded from,
// or to the default location.
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("%w: error creating config directory: %w", common.ErrConfigSave, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: error serializing configuration: %w", common.ErrConfigSave, err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", common.ErrConfigSave, err)
	}

	c.path = configPath
	return nil
}

// DefaultPath returns ~/.config/money-manager/config.yaml.
func DefaultPath() (string, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, common.ConfigFileName), nil
}
