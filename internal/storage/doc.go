// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the SQLite transcript archive for parley.
//
// Transcripts imported from files can be archived locally and later
// listed, searched by message content, reloaded, and deleted. The archive
// is a single SQLite database (pure Go driver, WAL mode) under ~/.parley.
//
// # Key Types
//
//   - TranscriptStore: the archive handle
//   - TranscriptMeta: listing metadata (title, counts, preview)
//
// # Usage
//
//	store, err := storage.Open(path)
//	if err != nil { ... }
//	defer store.Close()
//
//	id, err := store.Save(tr)
//	metas, err := store.Search("harbor")
//
// Use errors.Is(err, storage.ErrTranscriptNotFound) to detect a missing
// transcript.
package storage
