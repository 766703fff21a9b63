// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// model.go - Viewer state: selection, expand tracking and the render cache.
package viewer

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley-tui/internal/config"
	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/segment"
	"github.com/jeranaias/parley-tui/internal/transcript"
	"github.com/jeranaias/parley-tui/internal/ui/components"
	"github.com/jeranaias/parley-tui/internal/ui/styles"
)

// =============================================================================
// VIEWER STATE
// =============================================================================

// segKey identifies one logic segment inside one message for expand state.
type segKey struct {
	msgID string
	index int
}

// renderedMessage is one cache entry. Entries are invalidated when the raw
// content, the width, or the segment's expand state changes.
type renderedMessage struct {
	content  string
	width    int
	expanded bool
	view     string
}

// =============================================================================
// VIEWER MODEL
// =============================================================================

// Model is the Bubble Tea model for the transcript viewer.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Transcript being viewed
	transcript *model.Transcript

	// Selection: index of the focused message
	selected int

	// Per-segment expand state for logic reasoning, keyed by message ID and
	// segment index. Absent keys fall back to the configured default.
	expanded map[segKey]bool

	// collapseByDefault mirrors the ui.collapse_logic config setting.
	collapseByDefault bool

	// Render cache, one entry per message ID.
	// PERFORMANCE: re-rendering every message on scroll is wasted work; only
	// entries whose content, width or expand state changed are rebuilt.
	cache map[string]renderedMessage

	// UI components
	viewport    viewport.Model
	searchInput textinput.Model
	statusBar   *components.StatusBar
	header      *components.Header

	// Key bindings
	keyMap KeyMap

	// Search state
	searchMode   bool
	searchQuery  string
	matches      []int
	matchIndex   int

	// Help overlay
	showHelp bool

	// Live tail
	watcher  *transcript.Watcher
	livePath string

	// Rendering settings
	syntaxStyle    string
	showTimestamps bool
	wrapWidth      int // 0 means follow the terminal width

	// Status
	statusMsg string
	quitting  bool
}

// New creates a viewer model for a transcript.
func New(tr *model.Transcript, cfg *config.Config, theme *styles.Theme) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"
	search.CharLimit = 128

	m := &Model{
		theme:             theme,
		transcript:        tr,
		expanded:          make(map[segKey]bool),
		collapseByDefault: cfg.UI.CollapseLogic,
		cache:             make(map[string]renderedMessage),
		viewport:          viewport.New(80, 24),
		searchInput:       search,
		keyMap:            DefaultKeyMap(),
		syntaxStyle:       cfg.UI.SyntaxStyle,
		showTimestamps:    cfg.UI.ShowTimestamps,
		wrapWidth:         cfg.UI.WrapWidth,
		width:             80,
		height:            24,
	}

	m.header = components.NewHeader(tr, theme)
	m.statusBar = components.NewStatusBar(theme,
		components.Shortcut{Key: "tab", Desc: "reasoning"},
		components.Shortcut{Key: "/", Desc: "search"},
		components.Shortcut{Key: "?", Desc: "help"},
		components.Shortcut{Key: "q", Desc: "quit"},
	)

	if n := tr.Len(); n > 0 {
		m.selected = n - 1
	}
	return m
}

// Follow attaches a live-tail watcher: the viewer reloads the file whenever
// it changes on disk.
func (m *Model) Follow(path string, w *transcript.Watcher) {
	m.livePath = path
	m.watcher = w
	m.header.Live = true
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return m.waitForChange()
	}
	return nil
}

// =============================================================================
// EXPAND STATE
// =============================================================================

// segmentExpanded reports whether one logic segment is currently expanded.
func (m *Model) segmentExpanded(msgID string, index int) bool {
	if v, ok := m.expanded[segKey{msgID, index}]; ok {
		return v
	}
	return !m.collapseByDefault
}

// toggleMessageLogic flips the expand state of every logic segment in the
// selected message. State is written per segment so later per-segment
// toggles stay independent.
func (m *Model) toggleMessageLogic() {
	msg := m.selectedMessage()
	if msg == nil {
		return
	}

	// Flip based on the first logic segment's current state so a mixed
	// message converges rather than oscillating per segment.
	first := -1
	for i, s := range msg.Segments() {
		if s.Kind == segment.KindLogicThought {
			first = i
			break
		}
	}
	if first < 0 {
		return
	}

	target := !m.segmentExpanded(msg.ID, first)
	for i, s := range msg.Segments() {
		if s.Kind == segment.KindLogicThought {
			m.expanded[segKey{msg.ID, i}] = target
		}
	}
	m.invalidate(msg.ID)
}

// setAllLogic expands or collapses every logic segment in the transcript.
func (m *Model) setAllLogic(expand bool) {
	for _, msg := range m.transcript.Messages {
		for i, s := range msg.Segments() {
			if s.Kind == segment.KindLogicThought {
				m.expanded[segKey{msg.ID, i}] = expand
			}
		}
		m.invalidate(msg.ID)
	}
}

// anyLogicCollapsed reports whether at least one logic segment is hidden.
func (m *Model) anyLogicCollapsed() bool {
	for _, msg := range m.transcript.Messages {
		for i, s := range msg.Segments() {
			if s.Kind == segment.KindLogicThought && !m.segmentExpanded(msg.ID, i) {
				return true
			}
		}
	}
	return false
}

// =============================================================================
// HELPERS
// =============================================================================

// selectedMessage returns the focused message, or nil for an empty
// transcript.
func (m *Model) selectedMessage() *model.Message {
	if m.selected < 0 || m.selected >= m.transcript.Len() {
		return nil
	}
	return m.transcript.Messages[m.selected]
}

// invalidate drops one message's cache entry.
func (m *Model) invalidate(msgID string) {
	delete(m.cache, msgID)
}

// invalidateAll drops the whole render cache.
func (m *Model) invalidateAll() {
	m.cache = make(map[string]renderedMessage)
}
