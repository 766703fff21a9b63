// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the parley TUI.

This package defines the complete color palette and style set used
throughout the application. All colors use Lip Gloss AdaptiveColor for
automatic light/dark terminal detection.

# Color System (colors.go)

## Primary Accent Colors

  - Purple - Primary accent for participant messages and logic blocks
  - Cyan - Brand color for info and user highlights
  - Emerald - Success states and logic results
  - Amber - Warnings and social card frames
  - Rose - Errors

## Segment Colors

Every segment kind carries its own register in a rendered transcript:

	ThoughtColor     - Internal monologue asides, dim italic
	WhisperColor     - Quiet asides
	ActionColor      - Stage directions
	LogicColor       - Structured reasoning frames
	LogicResultColor - Conclusion lines
	CardColor        - Social card frame and keys

## Text Colors

Hierarchical text color system:

	TextPrimary   - Main content text
	TextSecondary - Supporting text
	TextMuted     - De-emphasized text

# Theme System (theme.go)

The Theme struct provides runtime color adaptation:

	theme := styles.NewTheme()
	if theme.IsDark {
		// Dark terminal detected
	}

Per-kind styles are looked up through the theme:

	style := theme.SegmentStyle(segment.KindThought)
	out := style.Render(seg.Text)

# Usage Example

	import "github.com/jeranaias/parley-tui/internal/ui/styles"

	headerStyle := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextPrimary)
*/
package styles
