// Package config handles application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents application configuration.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Logging LoggingConfig `toml:"logging"`
	Session SessionConfig `toml:"session"`
}

// WindowConfig contains main window settings.
type WindowConfig struct {
	// Window title
	Title string `toml:"title"`

	// Initial window size in pixels
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Disable window resizing
	FixedSize bool `toml:"fixed_size"`

	// Center the window on screen at startup
	Centered bool `toml:"centered"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	// Write human-readable console output instead of JSON
	Console bool `toml:"console"`
}

// SessionConfig contains interaction tracking settings.
type SessionConfig struct {
	// Number of interactions kept for the session log
	HistorySize int `toml:"history_size"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "HCI Practical Reference",
			Width:     500,
			Height:    450,
			FixedSize: false,
			Centered:  true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
		Session: SessionConfig{
			HistorySize: 50,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/hci-practical/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	// Respect XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "hci-practical", "config.toml")
	}
	// Default to ~/.config on Unix (including macOS)
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "hci-practical", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "hci-practical", "config.toml")
	}
	return filepath.Join(configDir, "hci-practical", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, run on defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Unmarshal over the defaults. go-toml only touches fields present
	// in the file, so unspecified fields keep their defaults, booleans
	// included.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Non-positive values cannot drive a window or a history ring.
	defaults := DefaultConfig()
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = defaults.Window.Width
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = defaults.Window.Height
	}
	if cfg.Session.HistorySize <= 0 {
		cfg.Session.HistorySize = defaults.Session.HistorySize
	}

	return cfg, nil
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Window.Title == "" {
		warnings = append(warnings, "window.title is empty, the window manager will show a blank title")
	}

	if c.Window.Width < 200 || c.Window.Width > 4000 {
		warnings = append(warnings, fmt.Sprintf("window.width %d is outside the usable range 200-4000", c.Window.Width))
	}
	if c.Window.Height < 200 || c.Window.Height > 4000 {
		warnings = append(warnings, fmt.Sprintf("window.height %d is outside the usable range 200-4000", c.Window.Height))
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("Invalid value for logging.level: %s (expected debug, info, warn, or error)", c.Logging.Level))
	}

	if c.Session.HistorySize > 1000 {
		warnings = append(warnings, fmt.Sprintf("session.history_size %d is larger than the supported maximum 1000", c.Session.HistorySize))
	}

	return warnings
}
