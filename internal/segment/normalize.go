// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// normalize.go - Symbol normalization for logic-mode text.
package segment

import "strings"

// =============================================================================
// SYMBOL NORMALIZER
// =============================================================================

// symbolRule rewrites one LaTeX-style escape to its Unicode glyph.
type symbolRule struct {
	from string
	to   string
}

// symbolRules is the fixed substitution table, applied in order. Matching is
// literal substring replacement, not LaTeX-aware: "\lambda" inside a larger
// token like "\lambdax" still matches. No produced glyph is itself a trigger
// substring, which keeps NormalizeSymbols idempotent.
var symbolRules = []symbolRule{
	{`\gamma`, "γ"},
	{`\alpha`, "α"},
	{`\beta`, "β"},
	{`\delta`, "δ"},
	{`\theta`, "θ"},
	{`\sigma`, "σ"},
	{`\lambda`, "λ"},
	{`\pi`, "π"},
	{`\times`, "×"},
	{`\approx`, "≈"},
	{`\neq`, "≠"},
	{`\leq`, "≤"},
	{`\geq`, "≥"},
	{`\rightarrow`, "→"},
	{`\leftarrow`, "←"},
	{`\infty`, "∞"},
	{`\sum`, "∑"},
	{`\prod`, "∏"},
	{`\int`, "∫"},
	{`^2`, "²"},
	{`^3`, "³"},
}

// NormalizeSymbols rewrites the fixed table of LaTeX-style escapes to their
// Unicode equivalents, each rule applied globally over the whole string
// before the next rule runs. Pure and total; there is no failure mode.
//
// Renderers apply this to KindLogicThought and KindLogicResult text before
// display, never to code fences, asides, plain text, or card fields.
func NormalizeSymbols(s string) string {
	for _, rule := range symbolRules {
		s = strings.ReplaceAll(s, rule.from, rule.to)
	}
	return s
}
