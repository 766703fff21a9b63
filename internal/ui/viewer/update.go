// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/transcript"
)

// =============================================================================
// MESSAGES
// =============================================================================

// fileChangedMsg reports that the watched transcript file changed on disk.
type fileChangedMsg struct{}

// watcherClosedMsg reports that the watcher channel closed.
type watcherClosedMsg struct{}

// reloadedMsg carries a freshly loaded transcript, or the load error.
type reloadedMsg struct {
	tr  *model.Transcript
	err error
}

// =============================================================================
// COMMANDS
// =============================================================================

// waitForChange blocks on the watcher's event channel.
func (m *Model) waitForChange() tea.Cmd {
	events := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return watcherClosedMsg{}
		}
		return fileChangedMsg{}
	}
}

// reloadFile re-reads the live transcript file off the Update loop.
func (m *Model) reloadFile() tea.Cmd {
	path := m.livePath
	return func() tea.Msg {
		tr, err := transcript.LoadFile(path)
		return reloadedMsg{tr: tr, err: err}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case fileChangedMsg:
		return m, tea.Batch(m.reloadFile(), m.waitForChange())

	case watcherClosedMsg:
		m.statusMsg = "live tail stopped"
		return m, nil

	case reloadedMsg:
		if msg.err != nil {
			m.statusMsg = "reload failed: " + msg.err.Error()
			return m, nil
		}
		m.applyReload(msg.tr)
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateNormal handles keys outside search mode.
func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keyMap.ToggleLogic):
		m.toggleMessageLogic()
		m.refreshViewport(false)
		return m, nil

	case key.Matches(msg, m.keyMap.ExpandAll):
		m.setAllLogic(m.anyLogicCollapsed())
		m.refreshViewport(false)
		return m, nil

	case key.Matches(msg, m.keyMap.PrevMessage):
		m.moveSelection(-1)
		return m, nil

	case key.Matches(msg, m.keyMap.NextMessage):
		m.moveSelection(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Search):
		m.searchMode = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keyMap.NextMatch):
		m.gotoMatch(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PrevMatch):
		m.gotoMatch(-1)
		return m, nil

	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateSearch handles keys while the search prompt is focused.
func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchMode = false
		m.searchInput.Blur()
		m.matches = nil
		m.statusMsg = ""
		return m, nil

	case tea.KeyEnter:
		m.searchMode = false
		m.searchInput.Blur()
		m.runSearch(m.searchInput.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// =============================================================================
// STATE TRANSITIONS
// =============================================================================

// resize lays the chrome out for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)

	contentHeight := height - 2 // header + status bar
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = contentHeight

	m.invalidateAll()
	m.refreshViewport(false)
}

// applyReload swaps in a freshly loaded transcript, keeping scroll pinned to
// the bottom when it already was there.
func (m *Model) applyReload(tr *model.Transcript) {
	wasAtBottom := m.viewport.AtBottom()
	grew := tr.Len() > m.transcript.Len()

	m.transcript = tr
	m.header.Transcript = tr
	if m.selected >= tr.Len() {
		m.selected = tr.Len() - 1
	}
	m.invalidateAll()
	m.refreshViewport(wasAtBottom && grew)
	m.statusMsg = ""
}

// moveSelection moves the focused message and scrolls it into view.
func (m *Model) moveSelection(delta int) {
	next := m.selected + delta
	if next < 0 || next >= m.transcript.Len() {
		return
	}
	prev := m.selected
	m.selected = next
	m.invalidate(m.transcript.Messages[prev].ID)
	m.invalidate(m.transcript.Messages[next].ID)
	m.refreshViewport(false)
	m.scrollToMessage(next)
}

// runSearch searches raw message content and jumps to the first match.
func (m *Model) runSearch(query string) {
	query = strings.TrimSpace(query)
	m.searchQuery = query
	if query == "" {
		m.matches = nil
		m.statusMsg = ""
		return
	}

	m.matches = m.transcript.Search(query)
	m.matchIndex = 0
	if len(m.matches) == 0 {
		m.statusMsg = "no matches for " + query
		return
	}
	m.statusMsg = matchStatus(1, len(m.matches), query)
	m.jumpToMatch()
}

// gotoMatch advances through the match list, wrapping at either end.
func (m *Model) gotoMatch(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.matchIndex = (m.matchIndex + delta + len(m.matches)) % len(m.matches)
	m.statusMsg = matchStatus(m.matchIndex+1, len(m.matches), m.searchQuery)
	m.jumpToMatch()
}

// jumpToMatch selects the current match's message and scrolls to it.
func (m *Model) jumpToMatch() {
	idx := m.matches[m.matchIndex]
	prev := m.selected
	m.selected = idx
	if prev != idx && prev >= 0 && prev < m.transcript.Len() {
		m.invalidate(m.transcript.Messages[prev].ID)
	}
	m.invalidate(m.transcript.Messages[idx].ID)
	m.refreshViewport(false)
	m.scrollToMessage(idx)
}
