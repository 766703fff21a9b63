// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Shortcut is one key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom bar: a status note on the left, key hints on
// the right.
type StatusBar struct {
	Width     int
	Note      string
	Shortcuts []Shortcut

	theme *styles.Theme
}

// NewStatusBar creates a status bar with the given key hints.
func NewStatusBar(theme *styles.Theme, shortcuts ...Shortcut) *StatusBar {
	return &StatusBar{
		Width:     80,
		Shortcuts: shortcuts,
		theme:     theme,
	}
}

// SetWidth sets the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetNote sets the left-hand status text.
func (s *StatusBar) SetNote(note string) {
	s.Note = note
}

// View renders the status bar line.
func (s *StatusBar) View() string {
	hints := make([]string, 0, len(s.Shortcuts))
	for _, sc := range s.Shortcuts {
		hints = append(hints,
			s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	right := strings.Join(hints, "  ")

	left := s.Note
	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return s.theme.StatusBar.Width(s.Width).Render(left + strings.Repeat(" ", gap) + right)
}
