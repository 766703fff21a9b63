// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package segment classifies raw participant message text into typed,
// displayable segments.
//
// Participant output embeds several informal sub-languages inline in one
// text blob: code fences, a [[THOUGHT]]/[[RESULT]] logic protocol, bracketed
// thought asides, braced whisper asides, slash-delimited action asides, and
// loosely-JSON "social card" records. Tokenize turns one raw message string
// into an ordered []Segment; renderers switch on Segment.Kind.
//
// # Key Types
//
//   - Segment: one classified, ordered unit of a tokenized message
//   - Kind: closed enumeration of segment classifications
//   - Field: one key/value line of a social card
//
// # Key Functions
//
//   - Tokenize: raw string in, ordered segment list out
//   - NormalizeSymbols: LaTeX-style escapes to Unicode glyphs
//
// # Usage
//
//	for _, seg := range segment.Tokenize(msg.Content) {
//	    switch seg.Kind {
//	    case segment.KindCodeFence:
//	        renderCode(seg.Text)
//	    case segment.KindLogicThought, segment.KindLogicResult:
//	        renderMarkdown(segment.NormalizeSymbols(seg.Text))
//	    default:
//	        renderMarkdown(seg.Text)
//	    }
//	}
//
// Both functions are pure, synchronous and reentrant: no shared state, no
// I/O, safe to call concurrently on independent inputs. Tokenize never
// fails; malformed markup degrades silently to plain text. Brace matching
// is a shortest-match heuristic and does not handle nested braces or braces
// inside string values; that leniency is deliberate and preserving it is a
// compatibility requirement, not a bug.
package segment
