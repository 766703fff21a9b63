// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// view.go - The view and tail commands: the full-screen transcript viewer.

package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley-tui/internal/config"
	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/transcript"
	"github.com/jeranaias/parley-tui/internal/ui/styles"
	"github.com/jeranaias/parley-tui/internal/ui/viewer"
)

// HandleView loads a transcript file and runs the viewer on it.
func HandleView(args *Args) error {
	path := args.Parser.Positional(0)
	if path == "" {
		return NewUsageError("view", "<file> [--expand-logic] [--no-timestamps] [--style <name>]")
	}

	tr, err := transcript.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	cfg := loadConfig(args)
	return runViewer(tr, cfg, nil, "")
}

// HandleTail runs the viewer in live mode, reloading on file changes.
func HandleTail(args *Args) error {
	path := args.Parser.Positional(0)
	if path == "" {
		return NewUsageError("tail", "<file> [--debounce <ms>]")
	}

	tr, err := transcript.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	cfg := loadConfig(args)
	debounceMs := args.Parser.FlagIntOrDefault("debounce", cfg.Tail.DebounceMs)
	watcher, err := transcript.NewWatcher(path, time.Duration(debounceMs)*time.Millisecond)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	return runViewer(tr, cfg, watcher, path)
}

// loadConfig loads the user config and applies command-line overrides.
// A broken config file falls back to defaults rather than blocking the
// viewer.
func loadConfig(args *Args) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	p := args.Parser
	if p.BoolFlag("expand-logic") {
		cfg.UI.CollapseLogic = false
	}
	if p.BoolFlag("no-timestamps") {
		cfg.UI.ShowTimestamps = false
	}
	if style := p.Flag("style"); style != "" {
		cfg.UI.SyntaxStyle = style
	}
	return cfg
}

// runViewer starts the Bubble Tea program. watcher may be nil for static
// viewing.
func runViewer(tr *model.Transcript, cfg *config.Config, watcher *transcript.Watcher, livePath string) error {
	if !IsTTY() {
		if watcher != nil {
			watcher.Close()
		}
		return fmt.Errorf("the viewer needs an interactive terminal (try export for piped output)")
	}

	m := viewer.New(tr, cfg, styles.ThemeFor(cfg.UI.Theme))
	if watcher != nil {
		m.Follow(livePath, watcher)
	}

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
