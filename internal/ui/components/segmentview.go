// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley-tui/internal/segment"
	"github.com/jeranaias/parley-tui/internal/ui/styles"
	"github.com/jeranaias/parley-tui/internal/util"
)

// =============================================================================
// SEGMENT RENDERER
// =============================================================================

// SegmentRenderer renders classified segments into styled terminal text.
// One renderer is shared across all messages of a view; per-segment state
// (logic collapse) is passed in at render time.
type SegmentRenderer struct {
	Width       int
	SyntaxStyle string

	theme    *styles.Theme
	markdown *glamour.TermRenderer
}

// NewSegmentRenderer creates a renderer at the given wrap width.
func NewSegmentRenderer(theme *styles.Theme, width int) *SegmentRenderer {
	if width < 20 {
		width = 20
	}
	r := &SegmentRenderer{
		Width: width,
		theme: theme,
	}
	r.markdown = newMarkdownRenderer(width)
	return r
}

// newMarkdownRenderer builds the glamour renderer for plain prose. A nil
// return is tolerated; rendering falls back to styled word wrap.
func newMarkdownRenderer(width int) *glamour.TermRenderer {
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return md
}

// SetWidth updates the wrap width.
func (r *SegmentRenderer) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	if width != r.Width {
		r.markdown = newMarkdownRenderer(width)
	}
	r.Width = width
}

// Render renders one segment. collapsed applies only to logic reasoning
// segments; every other kind ignores it.
func (r *SegmentRenderer) Render(s segment.Segment, collapsed bool) string {
	switch s.Kind {
	case segment.KindPlainText:
		return r.renderPlain(s.Text)
	case segment.KindCodeFence:
		return r.renderFence(s.Text)
	case segment.KindThought:
		return r.renderAside(s, "thinks")
	case segment.KindWhisper:
		return r.renderAside(s, "whispers")
	case segment.KindAction:
		return r.renderAside(s, "")
	case segment.KindLogicThought:
		return r.renderLogicThought(s, collapsed)
	case segment.KindLogicResult:
		return r.renderLogicResult(s)
	case segment.KindSocialCard:
		return r.renderCard(s)
	default:
		return r.renderPlain(s.Text)
	}
}

// RenderAll renders a message's segments joined by newlines. collapsedLogic
// applies to every logic reasoning segment in the message.
func (r *SegmentRenderer) RenderAll(segs []segment.Segment, collapsedLogic bool) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		if rendered := r.Render(s, collapsedLogic); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return strings.Join(parts, "\n")
}

// ==========================================================================
// PLAIN TEXT
// ==========================================================================

// renderPlain renders prose through glamour so inline markdown (emphasis,
// inline code, lists) comes out styled. Falls back to plain word wrap when
// the markdown renderer is unavailable.
func (r *SegmentRenderer) renderPlain(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if r.markdown != nil {
		if out, err := r.markdown.Render(text); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return r.theme.PlainText.Render(wordWrap(ParseInlineCode(text), r.Width))
}

// ==========================================================================
// CODE FENCES
// ==========================================================================

func (r *SegmentRenderer) renderFence(text string) string {
	cb := CodeBlockFromFence(text)
	cb.SetMaxWidth(r.Width)
	cb.SyntaxStyle = r.SyntaxStyle
	return cb.Render()
}

// ==========================================================================
// ASIDES
// ==========================================================================

// renderAside renders a thought, whisper or action. The label prefix keeps
// the register readable even on monochrome terminals.
func (r *SegmentRenderer) renderAside(s segment.Segment, label string) string {
	style := r.theme.SegmentStyle(s.Kind)
	text := s.Text
	if label != "" {
		text = label + ": " + text
	}
	return style.Render(wordWrap(text, r.Width))
}

// ==========================================================================
// LOGIC MODE
// ==========================================================================

func (r *SegmentRenderer) renderLogicThought(s segment.Segment, collapsed bool) string {
	if collapsed {
		lineCount := strings.Count(s.Text, "\n") + 1
		hint := "reasoning hidden (" + util.IntToString(lineCount) + " lines, tab to expand)"
		return r.theme.CollapseHint.Render(hint)
	}

	label := r.theme.LogicLabel.Render("reasoning")
	body := segment.NormalizeSymbols(s.Text)
	content := label + "\n" + wordWrap(body, r.Width-4)
	return r.theme.LogicBlock.MaxWidth(r.Width).Render(content)
}

func (r *SegmentRenderer) renderLogicResult(s segment.Segment) string {
	body := segment.NormalizeSymbols(s.Text)
	return r.theme.LogicResult.Render(wordWrap(body, r.Width))
}

// ==========================================================================
// SOCIAL CARDS
// ==========================================================================

// renderCard renders a social card as a key-aligned panel. Fields appear in
// first-seen order; cards with unknown or missing keys render whatever they
// carry.
func (r *SegmentRenderer) renderCard(s segment.Segment) string {
	if len(s.Fields) == 0 {
		return ""
	}

	keyWidth := 0
	for _, f := range s.Fields {
		if w := lipgloss.Width(f.Key); w > keyWidth {
			keyWidth = w
		}
	}

	keyStyle := r.theme.CardKey.Width(keyWidth)
	var rows []string
	for _, f := range s.Fields {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			keyStyle.Render(f.Key),
			"  ",
			r.theme.CardValue.Render(wordWrap(f.Value, r.Width-keyWidth-8)),
		)
		rows = append(rows, row)
	}

	return r.theme.CardPanel.MaxWidth(r.Width).Render(strings.Join(rows, "\n"))
}
