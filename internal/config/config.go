// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Configuration loading, env overrides and persistence.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/parley-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete parley configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Storage configuration
	Storage StorageConfig `toml:"storage" json:"storage"`

	// Tail configuration (live transcript following)
	Tail TailConfig `toml:"tail" json:"tail"`
}

// UIConfig contains rendering configuration.
type UIConfig struct {
	// Theme selects the palette: "auto", "dark" or "light".
	Theme string `toml:"theme" json:"theme"`
	// WrapWidth is the maximum content width in columns (0 = terminal width).
	WrapWidth int `toml:"wrap_width" json:"wrap_width"`
	// ShowTimestamps toggles per-message timestamps.
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// CollapseLogic starts logic-mode reasoning segments collapsed.
	CollapseLogic bool `toml:"collapse_logic" json:"collapse_logic"`
	// SyntaxStyle is the chroma style used for code fences.
	SyntaxStyle string `toml:"syntax_style" json:"syntax_style"`
}

// StorageConfig contains transcript archive configuration.
type StorageConfig struct {
	// DatabasePath is where the SQLite archive lives
	// (empty = ~/.parley/transcripts.db).
	DatabasePath string `toml:"database_path" json:"database_path"`
	// MaxTranscripts limits archived transcripts (0 = unlimited).
	MaxTranscripts int `toml:"max_transcripts" json:"max_transcripts"`
}

// TailConfig controls live-tail behavior.
type TailConfig struct {
	// DebounceMs coalesces bursts of file change events (minimum interval
	// between re-renders, in milliseconds).
	DebounceMs int `toml:"debounce_ms" json:"debounce_ms"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		UI: UIConfig{
			Theme:          "auto",
			WrapWidth:      0,
			ShowTimestamps: true,
			CollapseLogic:  true,
			SyntaxStyle:    "monokai",
		},
		Storage: StorageConfig{
			DatabasePath:   "",
			MaxTranscripts: 200,
		},
		Tail: TailConfig{
			DebounceMs: 250,
		},
	}
}

// Dir returns the parley configuration directory (~/.parley).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".parley"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads configuration from the default locations, applies environment
// overrides, and validates the result. A missing file is not an error; the
// defaults are used.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFrom(dir)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

// LoadFrom reads configuration from a specific directory, trying TOML first
// and falling back to JSON.
func LoadFrom(dir string) (*Config, error) {
	cfg := Default()

	tomlPath := filepath.Join(dir, "config.toml")
	if data, err := os.ReadFile(tomlPath); err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", tomlPath, err)
		}
		return cfg, nil
	}

	jsonPath := filepath.Join(dir, "config.json")
	if data, err := os.ReadFile(jsonPath); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", jsonPath, err)
		}
		return cfg, nil
	}

	return cfg, nil
}

// applyEnv overlays PARLEY_* environment variables onto the configuration.
func (c *Config) applyEnv() {
	if v := os.Getenv("PARLEY_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("PARLEY_WRAP_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.UI.WrapWidth = n
		}
	}
	if v := os.Getenv("PARLEY_DB"); v != "" {
		c.Storage.DatabasePath = v
	}
	if v := os.Getenv("PARLEY_COLLAPSE_LOGIC"); v != "" {
		c.UI.CollapseLogic = v == "true" || v == "1"
	}
}

// normalize clamps out-of-range values to safe bounds.
func (c *Config) normalize() {
	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		c.UI.Theme = "auto"
	}
	if c.UI.WrapWidth < 0 {
		c.UI.WrapWidth = 0
	}
	if c.UI.SyntaxStyle == "" {
		c.UI.SyntaxStyle = "monokai"
	}
	if c.Storage.MaxTranscripts < 0 {
		c.Storage.MaxTranscripts = 0
	}
	if c.Tail.DebounceMs < 50 {
		c.Tail.DebounceMs = 50
	}
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration as TOML to the default location.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return c.SaveTo(dir)
}

// SaveTo writes the configuration as TOML to a specific directory.
func (c *Config) SaveTo(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	// RELIABILITY: atomic rename so a crash mid-save never leaves a torn
	// config file behind.
	path := filepath.Join(dir, "config.toml")
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DatabasePath resolves the archive path, applying the default when unset.
func (c *Config) DatabasePath() (string, error) {
	if c.Storage.DatabasePath != "" {
		return c.Storage.DatabasePath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "transcripts.db"), nil
}
