// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"time"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/segment"
)

// =============================================================================
// DOCUMENT CONVERSION
// =============================================================================

// Document is the serializable form of a transcript with classification
// applied. Consumers that cannot run the tokenizer themselves get both the
// raw content and the segment breakdown per message.
type Document struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
	Participants []model.Participant `json:"participants,omitempty"`
	Messages     []DocumentMessage   `json:"messages"`
}

// DocumentMessage is one message with its classified segments.
type DocumentMessage struct {
	ID        string            `json:"id"`
	Role      string            `json:"role"`
	Speaker   string            `json:"speaker,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Content   string            `json:"content"`
	Segments  []DocumentSegment `json:"segments"`
}

// DocumentSegment is one classified segment. Fields is present only for
// social cards and preserves first-seen key order.
type DocumentSegment struct {
	Kind   string          `json:"kind"`
	Text   string          `json:"text"`
	Fields []DocumentField `json:"fields,omitempty"`
}

// DocumentField is one social-card key/value pair.
type DocumentField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ConvertTranscript builds the serializable document for a transcript,
// running classification on every message.
func ConvertTranscript(tr *model.Transcript) *Document {
	if tr == nil {
		return nil
	}

	doc := &Document{
		ID:           tr.ID,
		Title:        tr.DisplayTitle(),
		CreatedAt:    tr.CreatedAt,
		UpdatedAt:    tr.UpdatedAt,
		Participants: tr.Participants,
		Messages:     make([]DocumentMessage, 0, len(tr.Messages)),
	}

	for _, msg := range tr.Messages {
		doc.Messages = append(doc.Messages, DocumentMessage{
			ID:        msg.ID,
			Role:      string(msg.Role),
			Speaker:   msg.Speaker,
			Timestamp: msg.Timestamp,
			Content:   msg.Content,
			Segments:  convertSegments(msg.Segments()),
		})
	}

	return doc
}

// convertSegments maps classified segments to their serializable form.
func convertSegments(segs []segment.Segment) []DocumentSegment {
	out := make([]DocumentSegment, 0, len(segs))
	for _, s := range segs {
		ds := DocumentSegment{
			Kind: s.Kind.String(),
			Text: s.Text,
		}
		for _, f := range s.Fields {
			ds.Fields = append(ds.Fields, DocumentField{Key: f.Key, Value: f.Value})
		}
		out = append(out, ds)
	}
	return out
}
