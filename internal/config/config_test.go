// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// DEFAULTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "auto" {
		t.Errorf("default theme = %q, want auto", cfg.UI.Theme)
	}
	if !cfg.UI.CollapseLogic {
		t.Error("logic segments should start collapsed by default")
	}
	if cfg.Tail.DebounceMs <= 0 {
		t.Error("tail debounce must be positive")
	}
}

// =============================================================================
// LOADING
// =============================================================================

func TestLoadFrom_MissingFilesUseDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom empty dir: %v", err)
	}
	if cfg.UI.SyntaxStyle != "monokai" {
		t.Errorf("syntax style = %q, want default monokai", cfg.UI.SyntaxStyle)
	}
}

func TestLoadFrom_TOML(t *testing.T) {
	dir := t.TempDir()
	data := "version = \"1\"\n\n[ui]\ntheme = \"dark\"\nwrap_width = 100\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q, want dark", cfg.UI.Theme)
	}
	if cfg.UI.WrapWidth != 100 {
		t.Errorf("wrap_width = %d, want 100", cfg.UI.WrapWidth)
	}
}

func TestLoadFrom_JSONFallback(t *testing.T) {
	dir := t.TempDir()
	data := `{"ui": {"theme": "light"}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("theme = %q, want light", cfg.UI.Theme)
	}
}

func TestLoadFrom_TOMLWinsOverJSON(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[ui]\ntheme = \"dark\"\n"), 0644)
	os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"ui": {"theme": "light"}}`), 0644)

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q, want TOML to take precedence", cfg.UI.Theme)
	}
}

// =============================================================================
// NORMALIZATION
// =============================================================================

func TestNormalize_ClampsInvalidValues(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "solarized"
	cfg.UI.WrapWidth = -5
	cfg.Tail.DebounceMs = 1

	cfg.normalize()

	if cfg.UI.Theme != "auto" {
		t.Errorf("theme = %q, want clamped to auto", cfg.UI.Theme)
	}
	if cfg.UI.WrapWidth != 0 {
		t.Errorf("wrap_width = %d, want clamped to 0", cfg.UI.WrapWidth)
	}
	if cfg.Tail.DebounceMs != 50 {
		t.Errorf("debounce_ms = %d, want clamped to 50", cfg.Tail.DebounceMs)
	}
}

// =============================================================================
// ENV OVERRIDES
// =============================================================================

func TestApplyEnv(t *testing.T) {
	t.Setenv("PARLEY_THEME", "dark")
	t.Setenv("PARLEY_WRAP_WIDTH", "72")
	t.Setenv("PARLEY_COLLAPSE_LOGIC", "false")

	cfg := Default()
	cfg.applyEnv()

	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q, want dark from env", cfg.UI.Theme)
	}
	if cfg.UI.WrapWidth != 72 {
		t.Errorf("wrap_width = %d, want 72 from env", cfg.UI.WrapWidth)
	}
	if cfg.UI.CollapseLogic {
		t.Error("collapse_logic should be false from env")
	}
}

// =============================================================================
// ROUND TRIP
// =============================================================================

func TestSaveTo_Reloads(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.UI.Theme = "light"
	cfg.Storage.MaxTranscripts = 7
	if err := cfg.SaveTo(dir); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.UI.Theme != "light" || loaded.Storage.MaxTranscripts != 7 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
