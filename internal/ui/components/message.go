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
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one transcript message: a speaker header followed by
// the message's classified segments, framed in the role's color.
type MessageBubble struct {
	Message       *model.Message
	Width         int
	ShowTimestamp bool
	CollapseLogic bool

	// CollapseFunc, when set, decides collapse per segment index and takes
	// precedence over CollapseLogic. Used by the viewer's per-segment
	// expand state.
	CollapseFunc func(segIndex int) bool

	theme    *styles.Theme
	renderer *SegmentRenderer
}

// NewMessageBubble creates a new MessageBubble.
func NewMessageBubble(msg *model.Message, theme *styles.Theme) *MessageBubble {
	if msg == nil {
		msg = &model.Message{Role: model.RoleSystem}
	}
	return &MessageBubble{
		Message:       msg,
		Width:         80,
		ShowTimestamp: true,
		theme:         theme,
		renderer:      NewSegmentRenderer(theme, 76),
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
	b.renderer.SetWidth(width - 4)
}

// SetSyntaxStyle sets the chroma style used for code fences.
func (b *MessageBubble) SetSyntaxStyle(name string) {
	b.renderer.SyntaxStyle = name
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	header := b.renderHeader()

	var body string
	if b.CollapseFunc != nil {
		var parts []string
		for i, s := range b.Message.Segments() {
			if rendered := b.renderer.Render(s, b.CollapseFunc(i)); rendered != "" {
				parts = append(parts, rendered)
			}
		}
		body = strings.Join(parts, "\n")
	} else {
		body = b.renderer.RenderAll(b.Message.Segments(), b.CollapseLogic)
	}
	if body == "" {
		body = b.theme.CollapseHint.Render("(empty message)")
	}

	frame := b.theme.BubbleFor(string(b.Message.Role)).MaxWidth(b.Width)
	return lipgloss.JoinVertical(lipgloss.Left, header, frame.Render(body))
}

// renderHeader builds the speaker line above the bubble.
func (b *MessageBubble) renderHeader() string {
	parts := []string{b.theme.SpeakerLabel.Render(b.Message.DisplaySpeaker())}

	if b.Message.HasLogicSegments() {
		parts = append(parts, b.theme.LogicLabel.Render("[logic]"))
	}

	if b.ShowTimestamp && !b.Message.Timestamp.IsZero() {
		parts = append(parts, b.theme.Timestamp.Render(formatClock(b.Message)))
	}

	return strings.Join(parts, " ")
}

// formatClock formats a message timestamp as "3:04 PM".
func formatClock(msg *model.Message) string {
	t := msg.Timestamp
	hour := t.Hour()
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
		if hour > 12 {
			hour -= 12
		}
	}
	if hour == 0 {
		hour = 12
	}

	minuteStr := util.IntToString(t.Minute())
	if t.Minute() < 10 {
		minuteStr = "0" + minuteStr
	}
	return util.IntToString(hour) + ":" + minuteStr + " " + ampm
}
