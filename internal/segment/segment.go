// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// segment.go - Segment kinds and the social card field vocabulary.
package segment

// =============================================================================
// SEGMENT KIND
// =============================================================================

// Kind identifies the classification of a segment. The set is closed:
// renderers switch over it exhaustively and fall back to plain text for
// anything they do not recognize.
type Kind int

const (
	KindPlainText    Kind = iota // Unclassified prose, rendered as markdown
	KindCodeFence                // Triple-backtick fenced block, verbatim
	KindThought                  // [...] internal monologue aside
	KindWhisper                  // {...} secret aside
	KindAction                   // //...// physical action aside
	KindLogicThought             // [[THOUGHT]]...[[/THOUGHT]] reasoning
	KindLogicResult              // [[RESULT]]...[[/RESULT]] answer
	KindSocialCard               // Loosely-JSON social interaction record
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlainText:
		return "text"
	case KindCodeFence:
		return "code"
	case KindThought:
		return "thought"
	case KindWhisper:
		return "whisper"
	case KindAction:
		return "action"
	case KindLogicThought:
		return "logic-thought"
	case KindLogicResult:
		return "logic-result"
	case KindSocialCard:
		return "social-card"
	default:
		return "unknown"
	}
}

// =============================================================================
// SEGMENT TYPE
// =============================================================================

// Segment is one classified, ordered unit of a tokenized message.
//
// Text holds the literal payload with the wrapping delimiters stripped
// (brackets, braces, slashes, logic markers). For KindCodeFence the text is
// the verbatim fenced block, delimiters included. For KindSocialCard the
// text is empty and Fields carries the parsed record.
type Segment struct {
	Kind   Kind
	Text   string
	Fields []Field
}

// Field is one key/value line of a social card. Fields preserve source
// order; keys are unique within one card.
type Field struct {
	Key   string
	Value string
}

// =============================================================================
// SOCIAL CARD FIELD VOCABULARY
// =============================================================================

// Recognized social card field names. Any key present in a source block is
// preserved verbatim; this is the vocabulary renderers should expect.
const (
	FieldVirtualTime        = "Virtual Timeline Time"
	FieldLanguage           = "Language" // The spoken line
	FieldSpecificActions    = "Specific Actions"
	FieldFacialExpressions  = "Facial Expressions"
	FieldPsychologicalState = "Psychological State"
	FieldNonSpecificActions = "Non-specific Actions"
)

// CardFieldOrder is the preferred display order for recognized card fields.
var CardFieldOrder = []string{
	FieldVirtualTime,
	FieldLanguage,
	FieldSpecificActions,
	FieldFacialExpressions,
	FieldPsychologicalState,
	FieldNonSpecificActions,
}

// Field returns the value for a key and whether it was present.
func (s *Segment) Field(key string) (string, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// IsAside reports whether the segment is one of the inline aside kinds.
func (s *Segment) IsAside() bool {
	return s.Kind == KindThought || s.Kind == KindWhisper || s.Kind == KindAction
}
