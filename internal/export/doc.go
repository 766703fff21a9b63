// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export converts transcripts to shareable formats.
//
// Every exporter classifies message content into segments before
// formatting, so asides, logic-mode reasoning and social cards keep their
// identity in the output instead of leaking through as raw marker text.
// Logic segments are rendered with normalized math symbols.
//
// # Key Types
//
//   - Exporter: common export interface
//   - Options: export configuration
//   - Document: serializable transcript with per-message segments
//
// # Supported Formats
//
//   - JSON: machine-readable, includes the segment breakdown per message
//   - Markdown: human-readable, reasoning folded into <details> blocks
//   - HTML: styled standalone page with per-segment element classes
//
// # Usage
//
//	opts := export.DefaultOptions()
//	opts.OutputDir = "~/exports"
//	path, err := export.ExportFormat(tr, "markdown", opts)
package export
