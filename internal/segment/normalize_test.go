// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package segment

import "testing"

// =============================================================================
// SYMBOL NORMALIZER TESTS
// =============================================================================

func TestNormalizeSymbols(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"no escapes", "plain reasoning text", "plain reasoning text"},
		{"greek letters", `\alpha + \beta = \gamma`, "α + β = γ"},
		{"operators", `x \times y \approx z, a \neq b`, "x × y ≈ z, a ≠ b"},
		{"comparisons", `\leq and \geq`, "≤ and ≥"},
		{"arrows", `p \rightarrow q \leftarrow r`, "p → q ← r"},
		{"big operators", `\sum \prod \int`, "∑ ∏ ∫"},
		{"infinity", `n \rightarrow \infty`, "n → ∞"},
		{"superscripts", `E = mc^2, r^3`, "E = mc², r³"},
		{"not latex aware", `\lambdax`, "λx"},
		{"repeated escape", `\pi\pi\pi`, "πππ"},
		{"mixed", `\delta\theta\sigma\lambda`, "δθσλ"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeSymbols(tc.input); got != tc.want {
				t.Errorf("NormalizeSymbols(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// TestNormalizeSymbols_Idempotent verifies that applying the normalizer
// twice equals applying it once: no produced glyph is itself a trigger.
func TestNormalizeSymbols_Idempotent(t *testing.T) {
	inputs := []string{
		`\gamma \alpha \beta \delta \theta \sigma \lambda \pi`,
		`\times \approx \neq \leq \geq \rightarrow \leftarrow`,
		`\infty \sum \prod \int x^2 y^3`,
		"already normalized: γ → ∞ ²",
	}

	for _, in := range inputs {
		once := NormalizeSymbols(in)
		twice := NormalizeSymbols(once)
		if once != twice {
			t.Errorf("not idempotent for %q: once %q, twice %q", in, once, twice)
		}
	}
}

// TestNormalizeSymbols_RuleOrder pins the rule-by-rule application: every
// rule runs globally over the whole string before the next rule starts.
func TestNormalizeSymbols_RuleOrder(t *testing.T) {
	// "\leq" must not be consumed by a later rule and "\leftarrow" must not
	// be clipped by the earlier "\leq" rule (no shared prefix in the table).
	in := `\leq \leftarrow \leq`
	want := "≤ ← ≤"
	if got := NormalizeSymbols(in); got != want {
		t.Errorf("NormalizeSymbols(%q) = %q, want %q", in, got, want)
	}
}
