// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides reusable UI components for the parley TUI.

This package contains styled components built on top of Lip Gloss. Each
component is consistent with the parley design language and takes its
colors from a *styles.Theme.

# Core Components

## Display Components

Header (header.go) - Viewer header with transcript title, participants and
message count.
StatusBar (statusbar.go) - Bottom bar with a status note and key hints.
MessageBubble (message.go) - One transcript message: speaker line plus the
message's classified segments in a role-colored frame.
SegmentRenderer (segmentview.go) - Renders individual segments: asides in
their own registers, logic reasoning in collapsible boxes with normalized
math symbols, social cards as key-aligned panels.
CodeBlock (codeblock.go) - Syntax-highlighted code blocks using Chroma.

# Key Types

## Theme Integration

All components accept a *styles.Theme for consistent styling:

	theme := styles.NewTheme()
	bubble := components.NewMessageBubble(msg, theme)
	bubble.SetWidth(100)
	view := bubble.View()

## Segment Rendering

The renderer is shared across a view; collapse state is passed per call:

	r := components.NewSegmentRenderer(theme, 80)
	for _, seg := range msg.Segments() {
		out := r.Render(seg, collapsed)
	}

# Helper Functions

The package includes shared helpers in helpers.go:
  - wordWrap() - width-aware word wrapping via go-runewidth
  - maxLineWidth() - widest display line in a block of text
*/
package components
