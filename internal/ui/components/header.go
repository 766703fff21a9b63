// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/ui/styles"
	"github.com/jeranaias/parley-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header renders the top bar of the transcript viewer: title on the left,
// participants and message count on the right.
type Header struct {
	Transcript *model.Transcript
	Width      int
	Live       bool

	theme *styles.Theme
}

// NewHeader creates a header for a transcript.
func NewHeader(tr *model.Transcript, theme *styles.Theme) *Header {
	return &Header{
		Transcript: tr,
		Width:      80,
		theme:      theme,
	}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header line.
func (h *Header) View() string {
	if h.Transcript == nil {
		return h.theme.Header.Width(h.Width).Render("parley")
	}

	title := h.theme.HeaderTitle.Render(util.TruncateRunes(h.Transcript.DisplayTitle(), 48))
	if h.Live {
		title += " " + h.theme.HeaderSubtitle.Render("(live)")
	}

	right := h.rightInfo()
	gap := h.Width - lipgloss.Width(title) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	line := title + strings.Repeat(" ", gap) + right
	return h.theme.Header.Width(h.Width).Render(line)
}

// rightInfo summarizes participants and message count.
func (h *Header) rightInfo() string {
	var parts []string

	if n := len(h.Transcript.Participants); n > 0 {
		names := make([]string, 0, n)
		for _, p := range h.Transcript.Participants {
			names = append(names, p.Name)
		}
		joined := strings.Join(names, ", ")
		parts = append(parts, h.theme.HeaderSubtitle.Render(util.TruncateRunes(joined, 32)))
	}

	parts = append(parts, h.theme.HeaderSubtitle.Render(
		util.IntToString(h.Transcript.Len())+" messages"))

	return strings.Join(parts, "  ")
}
