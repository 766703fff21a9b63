// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/segment"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports transcripts to Markdown format.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a new Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a transcript to Markdown format.
func (e *MarkdownExporter) Export(tr *model.Transcript) ([]byte, error) {
	if tr == nil {
		return nil, fmt.Errorf("transcript is nil")
	}
	if len(tr.Messages) == 0 {
		return nil, fmt.Errorf("transcript has no messages")
	}

	var sb strings.Builder

	// YAML frontmatter with metadata
	if e.options.IncludeMetadata {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", escapeYAML(tr.DisplayTitle())))
		if names := participantNames(tr); len(names) > 0 {
			sb.WriteString(fmt.Sprintf("participants: %s\n", escapeYAML(strings.Join(names, ", "))))
		}
		sb.WriteString(fmt.Sprintf("date: %s\n", tr.CreatedAt.Format(time.RFC3339)))
		sb.WriteString(fmt.Sprintf("updated: %s\n", tr.UpdatedAt.Format(time.RFC3339)))
		sb.WriteString(fmt.Sprintf("messages: %d\n", len(tr.Messages)))
		sb.WriteString(fmt.Sprintf("exported: %s\n", time.Now().Format(time.RFC3339)))
		sb.WriteString("generator: parley-tui\n")
		sb.WriteString("---\n\n")
	}

	// Title
	sb.WriteString(fmt.Sprintf("# %s\n\n", escapeMarkdown(tr.DisplayTitle())))

	// Messages
	for i, msg := range tr.Messages {
		label := escapeMarkdown(msg.DisplaySpeaker())
		if e.options.IncludeTimestamps {
			sb.WriteString(fmt.Sprintf("### %s <sub>%s</sub>\n\n",
				label,
				formatShortTimestamp(msg.Timestamp)))
		} else {
			sb.WriteString(fmt.Sprintf("### %s\n\n", label))
		}

		e.writeSegments(&sb, msg.Segments())

		// Separator between messages (except last)
		if i < len(tr.Messages)-1 {
			sb.WriteString("---\n\n")
		}
	}

	// Footer
	sb.WriteString("\n---\n\n")
	sb.WriteString(fmt.Sprintf("*Exported from parley on %s*\n",
		time.Now().Format("January 2, 2006 at 3:04 PM")))

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the MIME type for Markdown.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}

// =============================================================================
// SEGMENT RENDERING
// =============================================================================

// writeSegments renders one message's classified segments.
func (e *MarkdownExporter) writeSegments(sb *strings.Builder, segs []segment.Segment) {
	for _, s := range segs {
		switch s.Kind {
		case segment.KindPlainText:
			text := strings.TrimSpace(s.Text)
			if text == "" {
				continue
			}
			sb.WriteString(text)
			sb.WriteString("\n\n")

		case segment.KindCodeFence:
			// Already carries its own fences, emit verbatim.
			sb.WriteString(strings.TrimRight(s.Text, "\n"))
			sb.WriteString("\n\n")

		case segment.KindThought:
			sb.WriteString(fmt.Sprintf("> *thinks: %s*\n\n", s.Text))

		case segment.KindWhisper:
			sb.WriteString(fmt.Sprintf("> *whispers: %s*\n\n", s.Text))

		case segment.KindAction:
			sb.WriteString(fmt.Sprintf("*%s*\n\n", s.Text))

		case segment.KindLogicThought:
			if !e.options.IncludeLogic {
				continue
			}
			sb.WriteString("<details>\n<summary>Reasoning</summary>\n\n```\n")
			sb.WriteString(segment.NormalizeSymbols(s.Text))
			sb.WriteString("\n```\n\n</details>\n\n")

		case segment.KindLogicResult:
			sb.WriteString(fmt.Sprintf("**Result:** %s\n\n", segment.NormalizeSymbols(s.Text)))

		case segment.KindSocialCard:
			e.writeCard(sb, s)
		}
	}
}

// writeCard renders a social card as a two-column table in field order.
func (e *MarkdownExporter) writeCard(sb *strings.Builder, s segment.Segment) {
	if len(s.Fields) == 0 {
		return
	}
	sb.WriteString("| | |\n|---|---|\n")
	for _, f := range s.Fields {
		sb.WriteString(fmt.Sprintf("| **%s** | %s |\n",
			escapeTableCell(f.Key), escapeTableCell(f.Value)))
	}
	sb.WriteString("\n")
}

// =============================================================================
// ESCAPING HELPERS
// =============================================================================

// escapeMarkdown escapes special Markdown characters in plain text.
func escapeMarkdown(s string) string {
	// Only escape characters that would break formatting in titles/headings
	s = strings.ReplaceAll(s, "#", "\\#")
	s = strings.ReplaceAll(s, "*", "\\*")
	s = strings.ReplaceAll(s, "_", "\\_")
	s = strings.ReplaceAll(s, "[", "\\[")
	s = strings.ReplaceAll(s, "]", "\\]")
	return s
}

// escapeTableCell keeps pipes and newlines from breaking a table row.
func escapeTableCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// escapeYAML escapes special YAML characters in values.
func escapeYAML(s string) string {
	// Quote if contains special characters (including backslash)
	if strings.ContainsAny(s, ":#|>@`\"'[]{}!%&*\n\r\\") || strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		s = strings.ReplaceAll(s, "\\", "\\\\")
		s = strings.ReplaceAll(s, "\"", "\\\"")
		s = strings.ReplaceAll(s, "\n", "\\n")
		s = strings.ReplaceAll(s, "\r", "\\r")
		return fmt.Sprintf("\"%s\"", s)
	}
	return s
}

// participantNames lists the transcript's model participants in order.
func participantNames(tr *model.Transcript) []string {
	names := make([]string, 0, len(tr.Participants))
	for _, p := range tr.Participants {
		names = append(names, p.Name)
	}
	return names
}
