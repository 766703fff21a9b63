// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// COLOR DEFINITION TESTS
// =============================================================================

func TestAdaptiveColorsDefined(t *testing.T) {
	colors := []struct {
		name  string
		color lipgloss.AdaptiveColor
	}{
		{"Purple", Purple},
		{"Cyan", Cyan},
		{"Emerald", Emerald},
		{"Rose", Rose},
		{"Amber", Amber},
		{"Surface", Surface},
		{"TextPrimary", TextPrimary},
		{"TextMuted", TextMuted},
		{"ThoughtColor", ThoughtColor},
		{"WhisperColor", WhisperColor},
		{"ActionColor", ActionColor},
		{"LogicColor", LogicColor},
		{"LogicResultColor", LogicResultColor},
		{"CardColor", CardColor},
	}

	for _, c := range colors {
		if c.color.Light == "" || c.color.Dark == "" {
			t.Errorf("%s must define both light and dark variants", c.name)
		}
		if !strings.HasPrefix(c.color.Light, "#") || !strings.HasPrefix(c.color.Dark, "#") {
			t.Errorf("%s variants must be hex values", c.name)
		}
	}
}

func TestSegmentColorsDistinct(t *testing.T) {
	// Asides and logic must be tellable apart at a glance.
	seen := map[string]string{}
	for name, c := range map[string]lipgloss.AdaptiveColor{
		"ThoughtColor":     ThoughtColor,
		"WhisperColor":     WhisperColor,
		"ActionColor":      ActionColor,
		"LogicColor":       LogicColor,
		"LogicResultColor": LogicResultColor,
		"CardColor":        CardColor,
	} {
		if prev, dup := seen[c.Dark]; dup {
			t.Errorf("%s and %s share dark color %s", name, prev, c.Dark)
		}
		seen[c.Dark] = name
	}
}

// =============================================================================
// ACCESSIBILITY TESTS
// =============================================================================

func TestStatusIndicatorsASCII(t *testing.T) {
	indicators := []struct {
		name  string
		value string
	}{
		{"Success", StatusIndicators.Success},
		{"Error", StatusIndicators.Error},
		{"Warning", StatusIndicators.Warning},
		{"Info", StatusIndicators.Info},
	}

	for _, ind := range indicators {
		if ind.value == "" {
			t.Errorf("%s indicator should be defined", ind.name)
		}
		for _, r := range ind.value {
			if r > 127 {
				t.Errorf("%s indicator contains non-ASCII rune %q", ind.name, r)
			}
		}
	}
}

func TestRenderStatusMessages(t *testing.T) {
	tests := []struct {
		name   string
		render func(string) string
		marker string
	}{
		{"Success", RenderSuccess, "[OK]"},
		{"Error", RenderError, "[X]"},
		{"Warning", RenderWarning, "[!]"},
		{"Info", RenderInfo, "[i]"},
	}

	for _, tt := range tests {
		out := tt.render("message")
		if !strings.Contains(out, tt.marker) {
			t.Errorf("Render%s missing %s indicator: %q", tt.name, tt.marker, out)
		}
		if !strings.Contains(out, "message") {
			t.Errorf("Render%s lost the message text: %q", tt.name, out)
		}
	}
}
