// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley-tui/internal/segment"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme(t *testing.T) {
	theme := NewTheme()

	if theme == nil {
		t.Fatal("NewTheme() returned nil")
	}

	// Verify styles are initialized by rendering a test string
	if theme.App.Render("test") == "" {
		t.Error("NewTheme() should initialize App style")
	}
}

func TestThemeInitStyles(t *testing.T) {
	theme := NewThemeDark()

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Header", theme.Header},
		{"UserBubble", theme.UserBubble},
		{"ParticipantBubble", theme.ParticipantBubble},
		{"SystemBubble", theme.SystemBubble},
		{"Thought", theme.Thought},
		{"Whisper", theme.Whisper},
		{"Action", theme.Action},
		{"LogicBlock", theme.LogicBlock},
		{"LogicResult", theme.LogicResult},
		{"CardPanel", theme.CardPanel},
		{"CodeBlock", theme.CodeBlock},
		{"StatusBar", theme.StatusBar},
	}

	for _, s := range styles {
		if s.style.Render("test") == "" {
			t.Errorf("%s style should be initialized", s.name)
		}
	}
}

func TestThemeSetSize(t *testing.T) {
	theme := NewThemeDark()
	theme.SetSize(120, 40)

	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize(120, 40) = %dx%d", theme.Width, theme.Height)
	}
}

// =============================================================================
// STYLE LOOKUP TESTS
// =============================================================================

func TestBubbleFor(t *testing.T) {
	theme := NewThemeDark()

	tests := []struct {
		role string
		want lipgloss.Style
	}{
		{"user", theme.UserBubble},
		{"participant", theme.ParticipantBubble},
		{"system", theme.SystemBubble},
		{"narrator", theme.SystemBubble},
		{"", theme.SystemBubble},
	}

	for _, tt := range tests {
		got := theme.BubbleFor(tt.role)
		if got.GetBorderLeftForeground() != tt.want.GetBorderLeftForeground() {
			t.Errorf("BubbleFor(%q) returned unexpected style", tt.role)
		}
	}
}

func TestSegmentStyle(t *testing.T) {
	theme := NewThemeDark()

	tests := []struct {
		kind   segment.Kind
		italic bool
	}{
		{segment.KindPlainText, false},
		{segment.KindThought, true},
		{segment.KindWhisper, true},
		{segment.KindAction, true},
		{segment.KindLogicResult, false},
	}

	for _, tt := range tests {
		style := theme.SegmentStyle(tt.kind)
		if style.GetItalic() != tt.italic {
			t.Errorf("SegmentStyle(%s).Italic = %v, want %v",
				tt.kind, style.GetItalic(), tt.italic)
		}
	}
}
