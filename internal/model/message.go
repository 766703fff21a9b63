// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/parley-tui/internal/segment"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the kind of sender behind a transcript message.
type Role string

const (
	RoleUser        Role = "user"
	RoleParticipant Role = "participant" // A language-model participant
	RoleSystem      Role = "system"
	RoleNarrator    Role = "narrator"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleParticipant:
		return "Participant"
	case RoleSystem:
		return "System"
	case RoleNarrator:
		return "Narrator"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a transcript.
type Message struct {
	// Identity
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Speaker   string    `json:"speaker,omitempty"` // Participant display name
	Timestamp time.Time `json:"timestamp"`

	// Content is the raw text exactly as the participant produced it,
	// sub-languages and all. Classification happens on demand.
	Content string `json:"content"`

	// Segment cache (not persisted).
	// PERFORMANCE: retokenizing on every render wastes work, so the parsed
	// segments are memoized keyed on the raw content that produced them.
	cachedSegments []segment.Segment
	cachedContent  string
	cacheValid     bool
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, speaker, content string) *Message {
	return &Message{
		ID:        "msg_" + uuid.NewString(),
		Role:      role,
		Speaker:   speaker,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewParticipantMessage creates a message from a named model participant.
func NewParticipantMessage(speaker, content string) *Message {
	return NewMessage(RoleParticipant, speaker, content)
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) *Message {
	return NewMessage(RoleUser, "", content)
}

// NewSystemMessage creates a new system message.
func NewSystemMessage(content string) *Message {
	return NewMessage(RoleSystem, "", content)
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// Segments returns the message content classified into ordered segments.
// The result is memoized on the raw content: repeated renders of an
// unmodified message reuse the cached list, and editing Content invalidates
// it on the next call.
func (m *Message) Segments() []segment.Segment {
	if m.cacheValid && m.cachedContent == m.Content {
		return m.cachedSegments
	}
	m.cachedSegments = segment.Tokenize(m.Content)
	m.cachedContent = m.Content
	m.cacheValid = true
	return m.cachedSegments
}

// SetContent replaces the raw content and drops the segment cache.
func (m *Message) SetContent(content string) {
	m.Content = content
	m.cacheValid = false
	m.cachedSegments = nil
}

// DisplaySpeaker returns the name to label the message with.
func (m *Message) DisplaySpeaker() string {
	if m.Speaker != "" {
		return m.Speaker
	}
	return m.Role.DisplayName()
}

// Preview returns a truncated single-line preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	content := strings.ReplaceAll(m.Content, "\n", " ")
	runes := []rune(content)
	if len(runes) <= maxLen {
		return content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// IsEmpty returns true if the message has no content.
func (m *Message) IsEmpty() bool {
	return len(m.Content) == 0
}

// HasLogicSegments reports whether the message contains any logic-mode
// reasoning, which viewers may collapse by default.
func (m *Message) HasLogicSegments() bool {
	for _, s := range m.Segments() {
		if s.Kind == segment.KindLogicThought || s.Kind == segment.KindLogicResult {
			return true
		}
	}
	return false
}
