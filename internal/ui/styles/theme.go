// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/parley-tui/internal/segment"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserBubble        lipgloss.Style
	ParticipantBubble lipgloss.Style
	SystemBubble      lipgloss.Style
	SpeakerLabel      lipgloss.Style
	Timestamp         lipgloss.Style

	// ==========================================================================
	// SEGMENT STYLES
	// ==========================================================================

	PlainText    lipgloss.Style
	Thought      lipgloss.Style
	Whisper      lipgloss.Style
	Action       lipgloss.Style
	LogicBlock   lipgloss.Style
	LogicLabel   lipgloss.Style
	LogicResult  lipgloss.Style
	CardPanel    lipgloss.Style
	CardKey      lipgloss.Style
	CardValue    lipgloss.Style
	CollapseHint lipgloss.Style

	// ==========================================================================
	// CODE BLOCK STYLES
	// ==========================================================================

	CodeBlock     lipgloss.Style
	CodeLangBadge lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// SESSION LIST STYLES
	// ==========================================================================

	SessionItem         lipgloss.Style
	SessionItemSelected lipgloss.Style
	SessionID           lipgloss.Style
	SessionTitle        lipgloss.Style
	SessionMeta         lipgloss.Style

	// ==========================================================================
	// SEARCH STYLES
	// ==========================================================================

	SearchPrompt lipgloss.Style
	SearchMatch  lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// NewThemeDark creates a theme with a forced dark palette, skipping terminal
// background detection. Useful for tests and non-interactive output.
func NewThemeDark() *Theme {
	t := &Theme{
		IsDark:       true,
		HasTrueColor: true,
		ColorProfile: termenv.TrueColor,
	}
	t.initStyles()
	return t
}

// NewThemeLight creates a theme with a forced light palette.
func NewThemeLight() *Theme {
	t := &Theme{
		IsDark:       false,
		HasTrueColor: true,
		ColorProfile: termenv.TrueColor,
	}
	t.initStyles()
	return t
}

// ThemeFor resolves a configured theme name. "dark" and "light" force the
// palette; anything else detects the terminal background.
func ThemeFor(name string) *Theme {
	switch name {
	case "dark":
		return NewThemeDark()
	case "light":
		return NewThemeLight()
	default:
		return NewTheme()
	}
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Messages
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(UserBubbleBorder).
		PaddingLeft(1)

	t.ParticipantBubble = lipgloss.NewStyle().
		Foreground(ParticipantBubbleFg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(ParticipantBubbleBorder).
		PaddingLeft(1)

	t.SystemBubble = lipgloss.NewStyle().
		Foreground(SystemBubbleFg).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(SystemBubbleBorder).
		PaddingLeft(1)

	t.SpeakerLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Segments
	t.PlainText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Thought = lipgloss.NewStyle().
		Foreground(ThoughtColor).
		Italic(true)

	t.Whisper = lipgloss.NewStyle().
		Foreground(WhisperColor).
		Italic(true).
		Faint(true)

	t.Action = lipgloss.NewStyle().
		Foreground(ActionColor).
		Italic(true)

	t.LogicBlock = lipgloss.NewStyle().
		Foreground(TextSecondary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(LogicColor).
		Padding(0, 1)

	t.LogicLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(LogicColor)

	t.LogicResult = lipgloss.NewStyle().
		Bold(true).
		Foreground(LogicResultColor)

	t.CardPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(CardColor).
		Padding(0, 1)

	t.CardKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(CardColor)

	t.CardValue = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.CollapseHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Code blocks
	t.CodeBlock = lipgloss.NewStyle().
		Background(CodeBg).
		Padding(0, 1)

	t.CodeLangBadge = lipgloss.NewStyle().
		Foreground(CodeLangColor).
		Background(SurfaceBright).
		Padding(0, 1)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Session list
	t.SessionItem = lipgloss.NewStyle().
		Padding(0, 1)

	t.SessionItemSelected = lipgloss.NewStyle().
		Padding(0, 1).
		Background(SelectionBg).
		Bold(true)

	t.SessionID = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.SessionTitle = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.SessionMeta = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Search
	t.SearchPrompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.SearchMatch = lipgloss.NewStyle().
		Background(SelectionBg).
		Bold(true)
}

// SetSize updates the layout dimensions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// BubbleFor returns the message frame style for a role.
func (t *Theme) BubbleFor(role string) lipgloss.Style {
	switch role {
	case "user":
		return t.UserBubble
	case "participant":
		return t.ParticipantBubble
	default:
		return t.SystemBubble
	}
}

// SegmentStyle returns the inline text style for a segment kind. Boxed
// kinds (logic blocks, cards, code) have their own renderers and get the
// plain style here.
func (t *Theme) SegmentStyle(kind segment.Kind) lipgloss.Style {
	switch kind {
	case segment.KindThought:
		return t.Thought
	case segment.KindWhisper:
		return t.Whisper
	case segment.KindAction:
		return t.Action
	case segment.KindLogicResult:
		return t.LogicResult
	default:
		return t.PlainText
	}
}
