package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "HCI Practical Reference", cfg.Window.Title)
	assert.Equal(t, 500, cfg.Window.Width)
	assert.Equal(t, 450, cfg.Window.Height)
	assert.False(t, cfg.Window.FixedSize)
	assert.True(t, cfg.Window.Centered)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
	assert.Equal(t, 50, cfg.Session.HistorySize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			config:      DefaultConfig(),
			wantWarning: false,
		},
		{
			name: "empty title",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Window.Title = ""
				return cfg
			}(),
			wantWarning: true,
		},
		{
			name: "width too small",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Window.Width = 50
				return cfg
			}(),
			wantWarning: true,
		},
		{
			name: "height too large",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Window.Height = 9000
				return cfg
			}(),
			wantWarning: true,
		},
		{
			name: "invalid log level",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Logging.Level = "verbose"
				return cfg
			}(),
			wantWarning: true,
		},
		{
			name: "warning alias is accepted",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Logging.Level = "warning"
				return cfg
			}(),
			wantWarning: false,
		},
		{
			name: "history size too large",
			config: func() *Config {
				cfg := DefaultConfig()
				cfg.Session.HistorySize = 5000
				return cfg
			}(),
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.Validate()
			if tt.wantWarning {
				assert.NotEmpty(t, warnings)
			} else {
				assert.Empty(t, warnings, "unexpected warnings: %v", warnings)
			}
		})
	}
}

func TestLoadPreservesDefaults(t *testing.T) {
	// Only specify some values - others should keep defaults
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `[window]
title = "Lab Station 3"

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(configPath, []byte(tomlContent), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "Lab Station 3", cfg.Window.Title)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Non-specified values keep defaults, booleans included
	assert.Equal(t, 500, cfg.Window.Width)
	assert.Equal(t, 450, cfg.Window.Height)
	assert.True(t, cfg.Window.Centered)
	assert.True(t, cfg.Logging.Console)
	assert.Equal(t, 50, cfg.Session.HistorySize)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("window = {{"), 0644))

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
}

func TestLoadClampsNonPositiveValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `[window]
width = -10
height = 0

[session]
history_size = -1
`
	require.NoError(t, os.WriteFile(configPath, []byte(tomlContent), 0644))

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Window.Width)
	assert.Equal(t, 450, cfg.Window.Height)
	assert.Equal(t, 50, cfg.Session.HistorySize)
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	require.NotEmpty(t, path)

	assert.Equal(t, "config.toml", filepath.Base(path))
	assert.Equal(t, "hci-practical", filepath.Base(filepath.Dir(path)))
}
