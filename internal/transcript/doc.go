// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transcript reads chat transcripts from disk and follows files
// that are still being written.
//
// # Key Types
//
//   - Watcher: debounced file-change notifier for live tail mode
//
// # Formats
//
// Two on-disk formats are understood, chosen by file extension:
//
//   - .json: a single model.Transcript document
//   - .jsonl / .ndjson: one message object per line with role, speaker,
//     content and optional timestamp fields
//
// JSONL parsing is deliberately lenient: blank and malformed lines are
// skipped, because the file may be mid-write when it is read.
//
// # Usage
//
//	tr, err := transcript.LoadFile("session.jsonl")
//	if err != nil {
//	    return err
//	}
//
//	w, err := transcript.NewWatcher("session.jsonl", 250*time.Millisecond)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	for range w.Events() {
//	    // reload the file
//	}
package transcript
