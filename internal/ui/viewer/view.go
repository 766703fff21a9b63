// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/segment"
	"github.com/jeranaias/parley-tui/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderBottomLine())

	if m.showHelp {
		return m.overlayHelp(b.String())
	}
	return b.String()
}

// renderBottomLine renders either the search prompt or the status bar.
func (m *Model) renderBottomLine() string {
	if m.searchMode {
		return m.theme.SearchPrompt.Render(m.searchInput.View())
	}
	m.statusBar.SetNote(m.statusMsg)
	return m.statusBar.View()
}

// =============================================================================
// VIEWPORT CONTENT
// =============================================================================

// refreshViewport rebuilds the viewport content from the per-message cache.
func (m *Model) refreshViewport(gotoBottom bool) {
	var parts []string
	for i, msg := range m.transcript.Messages {
		parts = append(parts, m.renderMessage(i, msg))
	}
	m.viewport.SetContent(strings.Join(parts, "\n\n"))
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}

// renderMessage renders one message, reusing the cache when nothing that
// affects its output has changed.
func (m *Model) renderMessage(index int, msg *model.Message) string {
	expandedNow := m.messageExpandFingerprint(msg)
	if entry, ok := m.cache[msg.ID]; ok &&
		entry.content == msg.Content &&
		entry.width == m.width &&
		entry.expanded == expandedNow {
		return entry.view
	}

	bubble := components.NewMessageBubble(msg, m.theme)
	bubble.SetWidth(m.contentWidth())
	bubble.SetSyntaxStyle(m.syntaxStyle)
	bubble.ShowTimestamp = m.showTimestamps
	bubble.CollapseFunc = func(segIndex int) bool {
		return !m.segmentExpanded(msg.ID, segIndex)
	}

	view := bubble.View()
	if index == m.selected {
		view = m.markSelected(view)
	}

	m.cache[msg.ID] = renderedMessage{
		content:  msg.Content,
		width:    m.width,
		expanded: expandedNow,
		view:     view,
	}
	return view
}

// messageExpandFingerprint reports whether every logic segment of the message
// is currently expanded. Toggles also invalidate the entry directly, so this
// only has to catch default-state changes.
func (m *Model) messageExpandFingerprint(msg *model.Message) bool {
	for i, s := range msg.Segments() {
		if s.Kind == segment.KindLogicThought && !m.segmentExpanded(msg.ID, i) {
			return false
		}
	}
	return true
}

// markSelected prefixes the focused message with a selection gutter.
func (m *Model) markSelected(view string) string {
	marker := m.theme.SearchPrompt.Render("┃")
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		lines[i] = marker + line
	}
	return strings.Join(lines, "\n")
}

// contentWidth is the message rendering width: the terminal width minus the
// selection gutter, capped by the configured wrap width.
func (m *Model) contentWidth() int {
	w := m.width - 2
	if m.wrapWidth > 0 && m.wrapWidth < w {
		w = m.wrapWidth
	}
	return w
}

// scrollToMessage scrolls the viewport so the given message is visible.
func (m *Model) scrollToMessage(index int) {
	offset := 0
	for i, msg := range m.transcript.Messages {
		if i == index {
			break
		}
		offset += lipgloss.Height(m.renderMessage(i, msg)) + 1
	}
	m.viewport.SetYOffset(offset)
}

// matchStatus formats the search hit position for the status bar.
func matchStatus(n, total int, query string) string {
	return fmt.Sprintf("match %d/%d: %s", n, total, query)
}

// =============================================================================
// HELP OVERLAY
// =============================================================================

// overlayHelp renders the full keymap over the view.
func (m *Model) overlayHelp(base string) string {
	var rows []string
	rows = append(rows, m.theme.HeaderTitle.Render("Keyboard shortcuts"), "")

	for _, group := range m.keyMap.FullHelp() {
		for _, binding := range group {
			help := binding.Help()
			rows = append(rows,
				m.theme.ShortcutKey.Width(12).Render(help.Key)+
					m.theme.ShortcutDesc.Render(help.Desc))
		}
		rows = append(rows, "")
	}
	rows = append(rows, m.theme.CollapseHint.Render("press ? to close"))

	box := m.theme.LogicBlock.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
