// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// transcripts.go - The transcript archive: schema, CRUD and search.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/parley-tui/internal/model"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrDatabaseError      = errors.New("database error")
)

// =============================================================================
// TRANSCRIPT STORE
// =============================================================================

// TranscriptStore archives transcripts in a local SQLite database.
type TranscriptStore struct {
	db *sql.DB

	// MaxTranscripts limits archived transcripts (0 = unlimited). When the
	// limit is exceeded the oldest transcripts by update time are removed.
	MaxTranscripts int
}

// TranscriptMeta contains metadata for listing archived transcripts.
type TranscriptMeta struct {
	ID           string
	Title        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	MessageCount int
	Preview      string // First message, truncated
}

// Open opens (or creates) the archive at path.
func Open(path string) (*TranscriptStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
	}

	store := &TranscriptStore{db: db, MaxTranscripts: 200}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database handle.
func (s *TranscriptStore) Close() error {
	return s.db.Close()
}

// migrate creates the schema if it does not exist.
func (s *TranscriptStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS transcripts (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	CREATE TABLE IF NOT EXISTS messages (
		id            TEXT PRIMARY KEY,
		transcript_id TEXT NOT NULL REFERENCES transcripts(id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		role          TEXT NOT NULL,
		speaker       TEXT NOT NULL DEFAULT '',
		content       TEXT NOT NULL,
		timestamp     TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_messages_transcript
		ON messages(transcript_id, seq);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return nil
}

// =============================================================================
// SAVE OPERATIONS
// =============================================================================

// Save persists a transcript (insert or full replace) and returns its ID.
func (s *TranscriptStore) Save(tr *model.Transcript) (string, error) {
	if tr == nil {
		return "", fmt.Errorf("transcript is nil")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	tr.UpdatedAt = time.Now()
	if tr.CreatedAt.IsZero() {
		tr.CreatedAt = tr.UpdatedAt
	}

	_, err = tx.Exec(`
		INSERT INTO transcripts (id, title, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			updated_at = excluded.updated_at`,
		tr.ID, tr.DisplayTitle(), tr.CreatedAt, tr.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	// Full replace keeps message rows in lockstep with the in-memory list.
	if _, err := tx.Exec(`DELETE FROM messages WHERE transcript_id = ?`, tr.ID); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	for i, msg := range tr.Messages {
		_, err := tx.Exec(`
			INSERT INTO messages (id, transcript_id, seq, role, speaker, content, timestamp)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			msg.ID, tr.ID, i, string(msg.Role), msg.Speaker, msg.Content, msg.Timestamp)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	if s.MaxTranscripts > 0 {
		s.enforceLimit()
	}
	return tr.ID, nil
}

// enforceLimit removes the oldest transcripts when over the limit.
func (s *TranscriptStore) enforceLimit() {
	s.db.Exec(`
		DELETE FROM transcripts WHERE id IN (
			SELECT id FROM transcripts
			ORDER BY updated_at DESC
			LIMIT -1 OFFSET ?
		)`, s.MaxTranscripts)
}

// =============================================================================
// LOAD OPERATIONS
// =============================================================================

// Load retrieves a transcript by ID.
func (s *TranscriptStore) Load(id string) (*model.Transcript, error) {
	tr := &model.Transcript{ID: id}

	err := s.db.QueryRow(`
		SELECT title, created_at, updated_at FROM transcripts WHERE id = ?`, id).
		Scan(&tr.Title, &tr.CreatedAt, &tr.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTranscriptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}

	rows, err := s.db.Query(`
		SELECT id, role, speaker, content, timestamp
		FROM messages WHERE transcript_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		msg := &model.Message{}
		var role string
		if err := rows.Scan(&msg.ID, &role, &msg.Speaker, &msg.Content, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		msg.Role = model.Role(role)
		tr.Add(msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	// Add bumped UpdatedAt while rebuilding; restore the stored value.
	s.db.QueryRow(`SELECT updated_at FROM transcripts WHERE id = ?`, id).Scan(&tr.UpdatedAt)
	return tr, nil
}

// =============================================================================
// LIST AND SEARCH
// =============================================================================

// List returns all archived transcripts, most recently updated first.
func (s *TranscriptStore) List() ([]TranscriptMeta, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.title, t.created_at, t.updated_at,
		       COUNT(m.id),
		       COALESCE(MIN(CASE WHEN m.seq = 0 THEN m.content END), '')
		FROM transcripts t
		LEFT JOIN messages m ON m.transcript_id = t.id
		GROUP BY t.id
		ORDER BY t.updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	return scanMetas(rows)
}

// Search returns transcripts with at least one message containing the
// query, case-insensitive, most recently updated first.
func (s *TranscriptStore) Search(query string) ([]TranscriptMeta, error) {
	if query == "" {
		return s.List()
	}

	rows, err := s.db.Query(`
		SELECT t.id, t.title, t.created_at, t.updated_at,
		       COUNT(m.id),
		       COALESCE(MIN(CASE WHEN m.seq = 0 THEN m.content END), '')
		FROM transcripts t
		LEFT JOIN messages m ON m.transcript_id = t.id
		WHERE t.id IN (
			SELECT DISTINCT transcript_id FROM messages
			WHERE content LIKE '%' || ? || '%' COLLATE NOCASE
		)
		GROUP BY t.id
		ORDER BY t.updated_at DESC`, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	return scanMetas(rows)
}

// scanMetas drains a meta query result set.
func scanMetas(rows *sql.Rows) ([]TranscriptMeta, error) {
	var metas []TranscriptMeta
	for rows.Next() {
		var m TranscriptMeta
		var preview string
		if err := rows.Scan(&m.ID, &m.Title, &m.CreatedAt, &m.UpdatedAt, &m.MessageCount, &preview); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
		}
		runes := []rune(preview)
		if len(runes) > 80 {
			preview = string(runes[:77]) + "..."
		}
		m.Preview = preview
		metas = append(metas, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	return metas, nil
}

// =============================================================================
// DELETE OPERATIONS
// =============================================================================

// Delete removes a transcript and its messages.
func (s *TranscriptStore) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM transcripts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseError, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTranscriptNotFound
	}
	return nil
}
