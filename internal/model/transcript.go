// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// PARTICIPANT TYPE
// =============================================================================

// Participant describes one language-model speaker in a transcript.
type Participant struct {
	Name  string `json:"name"`
	Model string `json:"model,omitempty"` // Underlying model identifier, if known
	Color string `json:"color,omitempty"` // Optional hex accent for rendering
}

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is an ordered chat transcript between a user and one or more
// model participants.
type Transcript struct {
	// Identity
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Speakers
	Participants []Participant `json:"participants,omitempty"`

	// Messages in source order
	Messages []*Message `json:"messages"`
}

// NewTranscript creates an empty transcript with a generated ID.
func NewTranscript(title string) *Transcript {
	now := time.Now()
	return &Transcript{
		ID:        "tr_" + uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// =============================================================================
// TRANSCRIPT METHODS
// =============================================================================

// Add appends a message and bumps the updated timestamp.
func (t *Transcript) Add(msg *Message) {
	if msg == nil {
		return
	}
	t.Messages = append(t.Messages, msg)
	t.UpdatedAt = time.Now()
	t.noteSpeaker(msg)
}

// noteSpeaker records a participant the first time it speaks.
func (t *Transcript) noteSpeaker(msg *Message) {
	if msg.Role != RoleParticipant || msg.Speaker == "" {
		return
	}
	for _, p := range t.Participants {
		if p.Name == msg.Speaker {
			return
		}
	}
	t.Participants = append(t.Participants, Participant{Name: msg.Speaker})
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.Messages)
}

// LastMessage returns the most recent message, or nil for an empty
// transcript.
func (t *Transcript) LastMessage() *Message {
	if len(t.Messages) == 0 {
		return nil
	}
	return t.Messages[len(t.Messages)-1]
}

// DisplayTitle returns the title, falling back to a preview of the first
// message for untitled transcripts.
func (t *Transcript) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	for _, msg := range t.Messages {
		if !msg.IsEmpty() {
			return msg.Preview(50)
		}
	}
	return "Untitled transcript"
}

// Search returns the indexes of messages whose raw content contains the
// query, case-insensitive. An empty query matches nothing.
func (t *Transcript) Search(query string) []int {
	if query == "" {
		return nil
	}
	query = strings.ToLower(query)

	var hits []int
	for i, msg := range t.Messages {
		if strings.Contains(strings.ToLower(msg.Content), query) {
			hits = append(hits, i)
		}
	}
	return hits
}
