// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for transcripts, messages and
// participants.
//
// This package defines the core domain types used throughout the
// application for representing chat transcripts produced by language-model
// participants.
//
// # Key Types
//
//   - Transcript: ordered container for a chat session with participants
//   - Message: single message holding the raw participant output
//   - Participant: one named model speaker
//   - Role: message role enumeration (user, participant, system, narrator)
//
// # Usage
//
// Build a transcript and read back classified segments:
//
//	tr := model.NewTranscript("evening scene")
//	tr.Add(model.NewParticipantMessage("Mira", "[looks up] hello"))
//	for _, seg := range tr.Messages[0].Segments() {
//	    // render by seg.Kind
//	}
//
// Message.Segments memoizes the tokenizer output keyed on the raw content,
// so re-rendering an unmodified message never re-parses it.
package model
