// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/ui/styles"
)

// =============================================================================
// WORD WRAP TESTS
// =============================================================================

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "hello world", 20, "hello world"},
		{"breaks at word", "hello world again", 11, "hello world\nagain"},
		{"zero width passthrough", "hello", 0, "hello"},
		{"preserves newlines", "a\nb", 10, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wordWrap(tt.text, tt.width); got != tt.want {
				t.Errorf("wordWrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWordWrap_WideRunes(t *testing.T) {
	// Four CJK chars are eight columns wide; at width 8 the pair of words
	// must break even though the rune count fits.
	got := wordWrap("日本 語text", 8)
	if !strings.Contains(got, "\n") {
		t.Errorf("expected wrap for wide runes, got %q", got)
	}
}

func TestMaxLineWidth(t *testing.T) {
	if got := maxLineWidth("ab\nabcd\na"); got != 4 {
		t.Errorf("maxLineWidth = %d, want 4", got)
	}
	// Width counts columns, not runes.
	if got := maxLineWidth("日本"); got != 4 {
		t.Errorf("maxLineWidth(wide) = %d, want 4", got)
	}
}

// =============================================================================
// MESSAGE BUBBLE TESTS
// =============================================================================

func TestMessageBubble_View(t *testing.T) {
	theme := styles.NewThemeDark()
	msg := model.NewParticipantMessage("Mira", "[waves] hello there")
	msg.Timestamp = time.Date(2025, 3, 1, 14, 5, 0, 0, time.UTC)

	b := NewMessageBubble(msg, theme)
	b.SetWidth(100)
	out := b.View()

	if !strings.Contains(out, "Mira") {
		t.Error("speaker name missing from bubble")
	}
	if !strings.Contains(out, "2:05 PM") {
		t.Errorf("timestamp missing, got:\n%s", out)
	}
	if !strings.Contains(out, "hello there") {
		t.Error("message body missing from bubble")
	}
	if strings.Contains(out, "[waves]") {
		t.Error("raw aside markers leaked into rendered bubble")
	}
}

func TestMessageBubble_LogicBadge(t *testing.T) {
	theme := styles.NewThemeDark()
	msg := model.NewParticipantMessage("Mira", "[[THOUGHT]]x[[/THOUGHT]][[RESULT]]y[[/RESULT]]")

	out := NewMessageBubble(msg, theme).View()
	if !strings.Contains(out, "[logic]") {
		t.Error("logic badge missing for message with logic segments")
	}
}

func TestMessageBubble_NilMessage(t *testing.T) {
	theme := styles.NewThemeDark()
	out := NewMessageBubble(nil, theme).View()
	if out == "" {
		t.Error("nil message should still render a placeholder")
	}
}

// =============================================================================
// HEADER AND STATUS BAR TESTS
// =============================================================================

func TestHeader_View(t *testing.T) {
	theme := styles.NewThemeDark()
	tr := model.NewTranscript("Planning session")
	tr.Add(model.NewParticipantMessage("Mira", "hi"))

	h := NewHeader(tr, theme)
	h.SetWidth(100)
	out := h.View()

	if !strings.Contains(out, "Planning session") {
		t.Error("title missing from header")
	}
	if !strings.Contains(out, "Mira") {
		t.Error("participant missing from header")
	}
	if !strings.Contains(out, "1 messages") {
		t.Error("message count missing from header")
	}
}

func TestHeader_LiveBadge(t *testing.T) {
	theme := styles.NewThemeDark()
	tr := model.NewTranscript("t")
	tr.Add(model.NewUserMessage("hi"))

	h := NewHeader(tr, theme)
	h.Live = true
	if !strings.Contains(h.View(), "(live)") {
		t.Error("live badge missing")
	}
}

func TestStatusBar_View(t *testing.T) {
	theme := styles.NewThemeDark()
	sb := NewStatusBar(theme,
		Shortcut{Key: "tab", Desc: "logic"},
		Shortcut{Key: "q", Desc: "quit"},
	)
	sb.SetWidth(80)
	sb.SetNote("3 matches")

	out := sb.View()
	for _, want := range []string{"tab", "logic", "q", "quit", "3 matches"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar missing %q: %q", want, out)
		}
	}
}
