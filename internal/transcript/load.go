// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/parley-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrUnknownFormat = errors.New("unknown transcript format")
	ErrEmptyFile     = errors.New("transcript file is empty")
)

// =============================================================================
// FILE LOADING
// =============================================================================

// jsonlRecord is one line of a JSONL transcript stream.
type jsonlRecord struct {
	Role      string    `json:"role,omitempty"`
	Speaker   string    `json:"speaker,omitempty"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// LoadFile reads a transcript from path. The format is chosen by
// extension: .json holds one whole transcript document, .jsonl holds one
// message object per line. Anything else is ErrUnknownFormat.
func LoadFile(path string) (*model.Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSON(f, path)
	case ".jsonl", ".ndjson":
		return decodeJSONL(f, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(path))
	}
}

// decodeJSON reads one whole transcript document.
func decodeJSON(r io.Reader, path string) (*model.Transcript, error) {
	var tr model.Transcript
	if err := json.NewDecoder(r).Decode(&tr); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(tr.Messages) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	if tr.ID == "" {
		fresh := model.NewTranscript(tr.Title)
		tr.ID = fresh.ID
	}
	if tr.Title == "" {
		tr.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &tr, nil
}

// decodeJSONL reads a message-per-line stream. Malformed lines are skipped
// rather than failing the whole file; participant output is untrusted and a
// torn final line is normal while a stream is still being written.
func decodeJSONL(r io.Reader, path string) (*model.Transcript, error) {
	tr := model.NewTranscript(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec jsonlRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		tr.Add(recordToMessage(rec))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(tr.Messages) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	return tr, nil
}

// recordToMessage converts one JSONL record into a domain message.
func recordToMessage(rec jsonlRecord) *model.Message {
	role := model.Role(rec.Role)
	switch role {
	case model.RoleUser, model.RoleParticipant, model.RoleSystem, model.RoleNarrator:
	case "":
		// A named speaker without a role is a model participant.
		if rec.Speaker != "" {
			role = model.RoleParticipant
		} else {
			role = model.RoleUser
		}
	default:
		role = model.RoleParticipant
	}

	msg := model.NewMessage(role, rec.Speaker, rec.Content)
	if !rec.Timestamp.IsZero() {
		msg.Timestamp = rec.Timestamp
	}
	return msg
}
