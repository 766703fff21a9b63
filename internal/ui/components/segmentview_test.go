// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/parley-tui/internal/segment"
	"github.com/jeranaias/parley-tui/internal/ui/styles"
)

func newTestRenderer() *SegmentRenderer {
	return NewSegmentRenderer(styles.NewThemeDark(), 80)
}

func TestRenderPlainText(t *testing.T) {
	r := newTestRenderer()
	out := r.Render(segment.Segment{Kind: segment.KindPlainText, Text: "hello world"}, false)
	if !strings.Contains(out, "hello world") {
		t.Errorf("plain text lost: %q", out)
	}
}

func TestRenderPlainText_BlankIsEmpty(t *testing.T) {
	r := newTestRenderer()
	if out := r.Render(segment.Segment{Kind: segment.KindPlainText, Text: "  \n "}, false); out != "" {
		t.Errorf("blank plain text should render empty, got %q", out)
	}
}

func TestRenderAsides(t *testing.T) {
	r := newTestRenderer()

	tests := []struct {
		kind  segment.Kind
		text  string
		label string
	}{
		{segment.KindThought, "I wonder", "thinks:"},
		{segment.KindWhisper, "quietly now", "whispers:"},
		{segment.KindAction, "waves", ""},
	}

	for _, tt := range tests {
		out := r.Render(segment.Segment{Kind: tt.kind, Text: tt.text}, false)
		if !strings.Contains(out, tt.text) {
			t.Errorf("%s: text %q missing from %q", tt.kind, tt.text, out)
		}
		if tt.label != "" && !strings.Contains(out, tt.label) {
			t.Errorf("%s: label %q missing from %q", tt.kind, tt.label, out)
		}
	}
}

func TestRenderLogicThought_NormalizesSymbols(t *testing.T) {
	r := newTestRenderer()
	out := r.Render(segment.Segment{
		Kind: segment.KindLogicThought,
		Text: `\gamma \approx 1.4 so x^2`,
	}, false)

	if !strings.Contains(out, "γ ≈ 1.4 so x²") {
		t.Errorf("expected normalized symbols in reasoning, got %q", out)
	}
	if !strings.Contains(out, "reasoning") {
		t.Errorf("expected reasoning label, got %q", out)
	}
}

func TestRenderLogicThought_Collapsed(t *testing.T) {
	r := newTestRenderer()
	out := r.Render(segment.Segment{
		Kind: segment.KindLogicThought,
		Text: "line one\nline two\nline three",
	}, true)

	if !strings.Contains(out, "reasoning hidden (3 lines") {
		t.Errorf("expected collapse hint with line count, got %q", out)
	}
	if strings.Contains(out, "line two") {
		t.Error("collapsed reasoning leaked its body")
	}
}

func TestRenderLogicResult_AlwaysVisible(t *testing.T) {
	r := newTestRenderer()
	// Results ignore the collapse flag.
	out := r.Render(segment.Segment{Kind: segment.KindLogicResult, Text: `x \neq 0`}, true)
	if !strings.Contains(out, "x ≠ 0") {
		t.Errorf("expected normalized result, got %q", out)
	}
}

func TestRenderCard_FieldOrder(t *testing.T) {
	r := newTestRenderer()
	out := r.Render(segment.Segment{
		Kind: segment.KindSocialCard,
		Fields: []segment.Field{
			{Key: "Virtual Timeline Time", Value: "evening"},
			{Key: "Language", Value: "en"},
		},
	}, false)

	timeIdx := strings.Index(out, "Virtual Timeline Time")
	langIdx := strings.Index(out, "Language")
	if timeIdx < 0 || langIdx < 0 {
		t.Fatalf("card keys missing from %q", out)
	}
	if timeIdx > langIdx {
		t.Error("card fields rendered out of source order")
	}
	if !strings.Contains(out, "evening") {
		t.Error("card value missing")
	}
}

func TestRenderCard_EmptyFields(t *testing.T) {
	r := newTestRenderer()
	if out := r.Render(segment.Segment{Kind: segment.KindSocialCard}, false); out != "" {
		t.Errorf("card without fields should render empty, got %q", out)
	}
}

func TestRenderFence_KeepsCode(t *testing.T) {
	r := newTestRenderer()
	out := r.Render(segment.Segment{
		Kind: segment.KindCodeFence,
		Text: "```python\nprint(1)\n```",
	}, false)

	if !strings.Contains(out, "python") {
		t.Errorf("language badge missing from %q", out)
	}
	// Fence delimiters are presentation, not content.
	if strings.Contains(out, "```") {
		t.Error("raw fence delimiters leaked into rendered block")
	}
}

func TestRenderAll_SkipsEmpty(t *testing.T) {
	r := newTestRenderer()
	out := r.RenderAll([]segment.Segment{
		{Kind: segment.KindPlainText, Text: "  "},
		{Kind: segment.KindAction, Text: "nods"},
	}, false)

	if !strings.Contains(out, "nods") {
		t.Errorf("action missing from %q", out)
	}
	if strings.HasPrefix(out, "\n") {
		t.Error("empty segment produced a leading blank line")
	}
}

func TestCodeBlockFromFence(t *testing.T) {
	tests := []struct {
		name     string
		fence    string
		wantLang string
		wantCode string
	}{
		{"with language", "```go\nfmt.Println(1)\n```", "go", "fmt.Println(1)"},
		{"no language", "```\nplain\n```", "", "plain"},
		{"unterminated", "```py\nx = 1", "py", "x = 1"},
		{"single line", "```inline```", "", "inline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := CodeBlockFromFence(tt.fence)
			if cb.Language != tt.wantLang {
				t.Errorf("Language = %q, want %q", cb.Language, tt.wantLang)
			}
			if cb.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", cb.Code, tt.wantCode)
			}
		})
	}
}
