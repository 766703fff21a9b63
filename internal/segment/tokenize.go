// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tokenize.go - The four-stage tokenizer.
package segment

import (
	"strings"
)

// =============================================================================
// TOKENIZER PIPELINE
// =============================================================================

// Tokenize classifies a raw message string into an ordered segment list.
//
// Classification is a strict four-stage pipeline. Each stage consumes the
// unclassified remainder of a region and hands sub-regions to the next:
//
//  1. Code-fence isolation: ``` fenced blocks become verbatim KindCodeFence
//     segments and are never re-examined.
//  2. Logic-mode detection: [[THOUGHT]]/[[RESULT]] marker pairs become
//     KindLogicThought/KindLogicResult segments.
//  3. Social-card detection: brace blocks carrying a card anchor phrase
//     become KindSocialCard segments with line-parsed fields.
//  4. Inline-marker fallback: [...], {...} and //...// asides, everything
//     else is KindPlainText.
//
// Tokenize never fails: malformed or ambiguous markup degrades silently to
// plain text for the offending span. The function is pure and reentrant;
// callers re-rendering the same message should memoize on the raw content.
func Tokenize(raw string) []Segment {
	// Marker-free input, empty included, is exactly one plain segment so
	// concatenating segment texts always reproduces the input.
	if raw == "" {
		return []Segment{{Kind: KindPlainText, Text: ""}}
	}

	var segs []Segment
	for _, region := range splitFences(raw) {
		if region.fence {
			segs = append(segs, Segment{Kind: KindCodeFence, Text: region.text})
			continue
		}
		segs = append(segs, tokenizeSpan(region.text)...)
	}
	return segs
}

// tokenizeSpan runs stages 2-4 over one non-fence span.
func tokenizeSpan(span string) []Segment {
	if logic, ok := splitLogic(span); ok {
		return logic
	}
	return splitSocial(span)
}

// =============================================================================
// STAGE 1: CODE-FENCE ISOLATION
// =============================================================================

// region is a stage-1 slice of the input: either a verbatim fenced block or
// an unclassified span between fences.
type region struct {
	text  string
	fence bool
}

const fenceDelim = "```"

// splitFences splits the full text on triple-backtick fenced blocks.
// A fence is matched non-greedily up to the next closing delimiter and kept
// verbatim, delimiters included, so the bracket and brace heuristics of the
// later stages can never mangle code. An unterminated opening fence does not
// match and flows to the later stages as ordinary text.
func splitFences(text string) []region {
	var regions []region
	rest := text

	for {
		open := strings.Index(rest, fenceDelim)
		if open < 0 {
			break
		}
		closeIdx := strings.Index(rest[open+len(fenceDelim):], fenceDelim)
		if closeIdx < 0 {
			break
		}
		end := open + len(fenceDelim) + closeIdx + len(fenceDelim)

		if open > 0 {
			regions = append(regions, region{text: rest[:open]})
		}
		regions = append(regions, region{text: rest[open:end], fence: true})
		rest = rest[end:]
	}

	if rest != "" {
		regions = append(regions, region{text: rest})
	}
	return regions
}

// =============================================================================
// STAGE 2: LOGIC-MODE DETECTION
// =============================================================================

const (
	thoughtOpen  = "[[THOUGHT]]"
	thoughtClose = "[[/THOUGHT]]"
	resultOpen   = "[[RESULT]]"
	resultClose  = "[[/RESULT]]"
)

// splitLogic splits a span on paired [[THOUGHT]]...[[/THOUGHT]] and
// [[RESULT]]...[[/RESULT]] markers. Pairs match non-greedily, across
// newlines. Inner text is trimmed; text outside pairs that is non-blank
// after trimming becomes KindPlainText carrying the untrimmed original.
//
// Returns ok=false when the span produced no logic segments (no marker, or
// only truncated markers), in which case the span proceeds to stage 3.
func splitLogic(span string) ([]Segment, bool) {
	if !strings.Contains(span, thoughtOpen) && !strings.Contains(span, resultOpen) {
		return nil, false
	}

	var segs []Segment
	matched := false
	rest := span

	for {
		pair, ok := nextLogicPair(rest)
		if !ok {
			break
		}

		if before := rest[:pair.open]; strings.TrimSpace(before) != "" {
			segs = append(segs, Segment{Kind: KindPlainText, Text: before})
		}

		segs = append(segs, Segment{Kind: pair.kind, Text: strings.TrimSpace(pair.inner)})
		matched = true

		rest = rest[pair.end:]
	}

	if !matched {
		return nil, false
	}
	if strings.TrimSpace(rest) != "" {
		segs = append(segs, Segment{Kind: KindPlainText, Text: rest})
	}
	return segs, true
}

// logicPair is one complete marker pair located in a span.
type logicPair struct {
	kind  Kind
	open  int    // Offset of the opening marker
	end   int    // Offset just past the closing marker
	inner string // Untrimmed text between the markers
}

// nextLogicPair finds the earliest complete marker pair in s. An opening
// marker with no closer anywhere after it does not pair and cannot shadow a
// later complete pair of the other flavor.
func nextLogicPair(s string) (logicPair, bool) {
	thought, tok := findLogicPair(s, KindLogicThought, thoughtOpen, thoughtClose)
	result, rok := findLogicPair(s, KindLogicResult, resultOpen, resultClose)

	switch {
	case !tok && !rok:
		return logicPair{}, false
	case !rok || (tok && thought.open < result.open):
		return thought, true
	default:
		return result, true
	}
}

// findLogicPair locates the first openMark that has a closeMark after it.
func findLogicPair(s string, kind Kind, openMark, closeMark string) (logicPair, bool) {
	open := strings.Index(s, openMark)
	if open < 0 {
		return logicPair{}, false
	}
	innerStart := open + len(openMark)
	closeIdx := strings.Index(s[innerStart:], closeMark)
	if closeIdx < 0 {
		return logicPair{}, false
	}
	return logicPair{
		kind:  kind,
		open:  open,
		end:   innerStart + closeIdx + len(closeMark),
		inner: s[innerStart : innerStart+closeIdx],
	}, true
}

// =============================================================================
// STAGE 3: SOCIAL-CARD DETECTION
// =============================================================================

// cardAnchors are the literal phrases whose presence marks a brace block as
// a social card. Matching is plain substring presence, case-sensitive.
var cardAnchors = []string{
	"Virtual Timeline Time",
	"Psychological State",
	"Specific Actions",
	"Language",
}

// splitSocial scans a span for brace-delimited candidate blocks using the
// shortest-match rule: a block begins at '{' and ends at the next '}'.
// Nested or unbalanced braces are a known limitation of this heuristic;
// see the package documentation.
//
// Blocks carrying a card anchor phrase become KindSocialCard segments.
// Everything else, including non-card brace blocks kept verbatim with their
// braces, is passed to stage 4.
func splitSocial(span string) []Segment {
	var segs []Segment
	var pending strings.Builder
	rest := span

	flush := func() {
		if pending.Len() > 0 {
			segs = append(segs, splitInline(pending.String())...)
			pending.Reset()
		}
	}

	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			break
		}
		closeIdx := strings.Index(rest[open+1:], "}")
		if closeIdx < 0 {
			break
		}
		end := open + 1 + closeIdx + 1
		block := rest[open:end]

		if !isSocialCard(block) {
			// Not a card: the whole block stays in the stage-4 stream so
			// the brace pattern there can classify it as a whisper.
			pending.WriteString(rest[:end])
			rest = rest[end:]
			continue
		}

		pending.WriteString(rest[:open])
		flush()
		segs = append(segs, Segment{Kind: KindSocialCard, Fields: parseCardFields(block)})
		rest = rest[end:]
	}

	pending.WriteString(rest)
	flush()
	return segs
}

// isSocialCard reports whether a brace block contains any card anchor phrase.
func isSocialCard(block string) bool {
	for _, anchor := range cardAnchors {
		if strings.Contains(block, anchor) {
			return true
		}
	}
	return false
}

// parseCardFields parses the interior of a card block with the lenient
// line-based scan the participants' output actually survives: "key: value"
// records, first colon wins, quotes and a trailing comma stripped. Lines
// without a colon are ignored. A line carrying several quoted pairs in a
// row ({"Language": "hi", "Specific Actions": "waves"}) yields all of them.
// This is deliberately NOT a JSON parser; strict parsing would reject
// blocks the lenient scan tolerates.
func parseCardFields(block string) []Field {
	interior := block[1 : len(block)-1] // Text between the outer braces

	var fields []Field
	for _, line := range strings.Split(interior, "\n") {
		for line != "" {
			colon := strings.Index(line, ":")
			if colon < 0 {
				break
			}

			key := stripQuotes(strings.TrimSpace(line[:colon]))
			value, rest := scanCardValue(line[colon+1:])
			fields = setField(fields, key, value)
			line = rest
		}
	}
	return fields
}

// scanCardValue extracts one field value from the text after a colon.
//
// A quoted value ends at its closing quote, so further "key": "value" pairs
// on the same line survive; the remainder (minus one separating comma) is
// returned for another pass. An unquoted value runs to the end of the line:
// trimmed, a single trailing comma stripped, then a single matching pair of
// surrounding quote characters stripped.
func scanCardValue(s string) (value, rest string) {
	trimmed := strings.TrimSpace(s)

	if len(trimmed) > 0 && (trimmed[0] == '"' || trimmed[0] == '\'') {
		quote := trimmed[0]
		if end := strings.IndexByte(trimmed[1:], quote); end >= 0 {
			value = trimmed[1 : 1+end]
			rest = strings.TrimSpace(trimmed[1+end+1:])
			rest = strings.TrimPrefix(rest, ",")
			return value, rest
		}
	}

	value = strings.TrimSuffix(trimmed, ",")
	value = stripQuotes(value)
	return value, ""
}

// stripQuotes removes a single matching pair of surrounding quote characters.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// setField records a key/value pair, keeping keys unique within one card.
// A repeated key overwrites its earlier value in place so field order stays
// stable.
func setField(fields []Field, key, value string) []Field {
	for i := range fields {
		if fields[i].Key == key {
			fields[i].Value = value
			return fields
		}
	}
	return append(fields, Field{Key: key, Value: value})
}

// =============================================================================
// STAGE 4: INLINE-MARKER FALLBACK
// =============================================================================

// inlineMatch is one candidate aside found during the stage-4 scan.
type inlineMatch struct {
	kind  Kind
	start int // Offset of the opening delimiter
	end   int // Offset just past the closing delimiter
	inner string
}

// splitInline repeatedly extracts the first of a [...] bracketed run
// (KindThought), a {...} braced run (KindWhisper), or a //...// doubled
// slash run (KindAction) from a plain span. All three patterns are
// non-greedy and may match across newlines; at equal start positions the
// precedence is bracket, brace, slash.
//
// A slash run that looks like part of a URL (the // sits directly after a
// scheme colon, or the matched text contains "http") fails the match and
// stays plain text.
func splitInline(span string) []Segment {
	var segs []Segment
	var plain strings.Builder
	cursor := 0

	flush := func() {
		if plain.Len() > 0 {
			segs = append(segs, Segment{Kind: KindPlainText, Text: plain.String()})
			plain.Reset()
		}
	}

	for cursor < len(span) {
		m, ok := nextInlineMatch(span, cursor)
		if !ok {
			plain.WriteString(span[cursor:])
			break
		}

		plain.WriteString(span[cursor:m.start])

		if m.kind == KindAction && isURLSlashRun(span, m) {
			// Failed the URL exclusion: the would-be action stays plain.
			plain.WriteString(span[m.start:m.end])
			cursor = m.end
			continue
		}

		flush()
		segs = append(segs, Segment{Kind: m.kind, Text: m.inner})
		cursor = m.end
	}

	flush()
	return segs
}

// nextInlineMatch finds the earliest complete aside at or after cursor.
// First-match-wins among the three patterns; ties break bracket, brace,
// then slash.
func nextInlineMatch(span string, cursor int) (inlineMatch, bool) {
	s := span[cursor:]
	best := inlineMatch{start: -1}

	consider := func(kind Kind, start, end int, inner string) {
		if start < 0 {
			return
		}
		if best.start < 0 || start < best.start {
			best = inlineMatch{kind: kind, start: cursor + start, end: cursor + end, inner: inner}
		}
	}

	if open := strings.Index(s, "["); open >= 0 {
		if closeIdx := strings.Index(s[open+1:], "]"); closeIdx >= 0 {
			consider(KindThought, open, open+1+closeIdx+1, s[open+1:open+1+closeIdx])
		}
	}
	if open := strings.Index(s, "{"); open >= 0 {
		if closeIdx := strings.Index(s[open+1:], "}"); closeIdx >= 0 {
			consider(KindWhisper, open, open+1+closeIdx+1, s[open+1:open+1+closeIdx])
		}
	}
	if open := strings.Index(s, "//"); open >= 0 {
		if closeIdx := strings.Index(s[open+2:], "//"); closeIdx >= 0 {
			consider(KindAction, open, open+2+closeIdx+2, s[open+2:open+2+closeIdx])
		}
	}

	if best.start < 0 {
		return inlineMatch{}, false
	}
	return best, true
}

// isURLSlashRun reports whether a slash-delimited candidate is URL debris
// rather than an action aside: the opening // directly follows a scheme
// colon ("https://..."), or the matched span contains "http" anywhere.
func isURLSlashRun(span string, m inlineMatch) bool {
	if m.start > 0 && span[m.start-1] == ':' {
		return true
	}
	return strings.Contains(span[m.start:m.end], "http")
}
