// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package viewer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/parley-tui/internal/config"
	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/segment"
	"github.com/jeranaias/parley-tui/internal/ui/styles"
)

// testTranscript builds a three-message transcript where the middle message
// carries two logic reasoning segments.
func testTranscript() *model.Transcript {
	tr := model.NewTranscript("Physics homework")
	tr.Add(model.NewUserMessage("What is the integral of x squared?"))
	tr.Add(model.NewParticipantMessage("Asha",
		"[[THOUGHT]]power rule applies[[RESULT]]\\int x^2 dx = x^3/3 + C\n"+
			"[[THOUGHT]]check the constant[[RESULT]]done"))
	tr.Add(model.NewUserMessage("Thanks!"))
	return tr
}

func testModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Default()
	m := New(testTranscript(), cfg, styles.NewThemeDark())
	m.resize(100, 30)
	return m
}

func TestNew_SelectsLastMessage(t *testing.T) {
	m := testModel(t)
	require.Equal(t, 2, m.selected)
}

func TestSegmentExpanded_DefaultFollowsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.UI.CollapseLogic = true
	m := New(testTranscript(), cfg, styles.NewThemeDark())
	require.False(t, m.segmentExpanded(m.transcript.Messages[1].ID, 0))

	cfg.UI.CollapseLogic = false
	m = New(testTranscript(), cfg, styles.NewThemeDark())
	require.True(t, m.segmentExpanded(m.transcript.Messages[1].ID, 0))
}

func TestToggleMessageLogic_FlipsEveryLogicSegment(t *testing.T) {
	m := testModel(t)
	m.selected = 1
	msg := m.transcript.Messages[1]

	// Starts collapsed (config default).
	require.True(t, m.anyLogicCollapsed())

	m.toggleMessageLogic()
	for i, s := range msg.Segments() {
		if s.Kind == segment.KindLogicThought {
			require.True(t, m.segmentExpanded(msg.ID, i), "segment %d", i)
		}
	}
	require.False(t, m.anyLogicCollapsed())

	m.toggleMessageLogic()
	require.True(t, m.anyLogicCollapsed())
}

func TestToggleMessageLogic_ConvergesMixedState(t *testing.T) {
	m := testModel(t)
	m.selected = 1
	msg := m.transcript.Messages[1]

	// Put the two logic segments in opposite states by hand.
	var logicIdx []int
	for i, s := range msg.Segments() {
		if s.Kind == segment.KindLogicThought {
			logicIdx = append(logicIdx, i)
		}
	}
	require.Len(t, logicIdx, 2)
	m.expanded[segKey{msg.ID, logicIdx[0]}] = true
	m.expanded[segKey{msg.ID, logicIdx[1]}] = false

	// One toggle lands both on the same state.
	m.toggleMessageLogic()
	require.Equal(t,
		m.segmentExpanded(msg.ID, logicIdx[0]),
		m.segmentExpanded(msg.ID, logicIdx[1]))
}

func TestToggleMessageLogic_NoLogicIsNoop(t *testing.T) {
	m := testModel(t)
	m.selected = 0
	m.toggleMessageLogic()
	require.Empty(t, m.expanded)
}

func TestSetAllLogic(t *testing.T) {
	m := testModel(t)
	m.setAllLogic(true)
	require.False(t, m.anyLogicCollapsed())
	m.setAllLogic(false)
	require.True(t, m.anyLogicCollapsed())
}

func TestToggle_InvalidatesRenderCache(t *testing.T) {
	m := testModel(t)
	m.selected = 1
	msg := m.transcript.Messages[1]

	m.refreshViewport(false)
	_, cached := m.cache[msg.ID]
	require.True(t, cached)

	m.toggleMessageLogic()
	_, cached = m.cache[msg.ID]
	require.False(t, cached)
}

func TestView_HidesAndShowsReasoning(t *testing.T) {
	m := testModel(t)
	m.selected = 1

	m.refreshViewport(false)
	view := m.View()
	require.Contains(t, view, "reasoning hidden")
	require.NotContains(t, view, "power rule applies")

	m.toggleMessageLogic()
	m.refreshViewport(false)
	view = m.View()
	require.Contains(t, view, "power rule applies")
	// Normalizer output, not the raw escapes.
	require.Contains(t, view, "∫ x² dx")
	require.NotContains(t, view, "[[THOUGHT]]")
}

func TestRunSearch_FindsAndWraps(t *testing.T) {
	m := testModel(t)

	m.runSearch("integral")
	require.Equal(t, []int{0}, m.matches)
	require.Equal(t, 0, m.selected)
	require.Contains(t, m.statusMsg, "match 1/1")

	m.runSearch("x")
	require.Len(t, m.matches, 2)
	require.Equal(t, 0, m.matchIndex)

	m.gotoMatch(1)
	require.Equal(t, 1, m.matchIndex)
	m.gotoMatch(1) // wraps back to the first hit
	require.Equal(t, 0, m.matchIndex)
	m.gotoMatch(-1) // and backwards off the front
	require.Equal(t, 1, m.matchIndex)
}

func TestRunSearch_NoMatches(t *testing.T) {
	m := testModel(t)
	m.runSearch("zyzzyva")
	require.Empty(t, m.matches)
	require.Contains(t, m.statusMsg, "no matches")
}

func TestMoveSelection_ClampsAtEnds(t *testing.T) {
	m := testModel(t)
	require.Equal(t, 2, m.selected)

	m.moveSelection(1)
	require.Equal(t, 2, m.selected)

	m.moveSelection(-1)
	m.moveSelection(-1)
	m.moveSelection(-1)
	require.Equal(t, 0, m.selected)
	m.moveSelection(-1)
	require.Equal(t, 0, m.selected)
}

func TestApplyReload_ClampsSelection(t *testing.T) {
	m := testModel(t)
	m.selected = 2

	shorter := model.NewTranscript("Physics homework")
	shorter.Add(model.NewUserMessage("only one message"))

	m.applyReload(shorter)
	require.Equal(t, 0, m.selected)
	require.Same(t, shorter, m.header.Transcript)
}

func TestUpdate_SearchModeKeyFlow(t *testing.T) {
	m := testModel(t)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.True(t, m.searchMode)

	for _, r := range "Thanks" {
		_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.False(t, m.searchMode)
	require.Equal(t, []int{2}, m.matches)
}

func TestUpdate_SearchEscCancels(t *testing.T) {
	m := testModel(t)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.searchMode)
	require.Empty(t, m.matches)
}

func TestUpdate_QuitReturnsQuitCmd(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
	require.Empty(t, m.View())
}

func TestView_HelpOverlay(t *testing.T) {
	m := testModel(t)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	view := m.View()
	require.Contains(t, view, "Keyboard shortcuts")
	require.Contains(t, view, "tab")
}

func TestRenderCache_ReusedAcrossRefreshes(t *testing.T) {
	m := testModel(t)
	m.refreshViewport(false)
	msg := m.transcript.Messages[0]
	first := m.cache[msg.ID].view

	m.refreshViewport(false)
	require.Equal(t, first, m.cache[msg.ID].view)

	// Width change rebuilds everything at the new width.
	m.resize(60, 30)
	entry := m.cache[msg.ID]
	require.Equal(t, 60, entry.width)
}

func TestView_MarksSelectedMessage(t *testing.T) {
	m := testModel(t)
	m.moveSelection(-1) // focus the middle message
	m.refreshViewport(false)

	selectedView := m.cache[m.transcript.Messages[1].ID].view
	otherView := m.cache[m.transcript.Messages[0].ID].view
	require.True(t, strings.Contains(selectedView, "┃"))
	require.False(t, strings.Contains(otherView, "┃"))
}
