// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jeranaias/parley-tui/internal/model"
	"github.com/jeranaias/parley-tui/internal/segment"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports transcripts to HTML format with embedded CSS. Each
// segment kind gets its own element class so asides, reasoning and social
// cards stay visually distinct in the exported page.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// Export converts a transcript to HTML format.
func (e *HTMLExporter) Export(tr *model.Transcript) ([]byte, error) {
	if tr == nil {
		return nil, fmt.Errorf("transcript is nil")
	}
	if len(tr.Messages) == 0 {
		return nil, fmt.Errorf("transcript has no messages")
	}

	var sb strings.Builder

	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(tr.DisplayTitle())))
	sb.WriteString("    <meta name=\"generator\" content=\"parley-tui\">\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"date\" content=\"%s\">\n", tr.CreatedAt.Format(time.RFC3339)))
	sb.WriteString(e.getCSS())
	sb.WriteString("</head>\n")
	sb.WriteString(fmt.Sprintf("<body class=\"%s-theme\">\n", e.options.Theme))
	sb.WriteString("    <div class=\"container\">\n")

	if e.options.IncludeMetadata {
		sb.WriteString(e.renderHeader(tr))
	}

	sb.WriteString("        <main class=\"transcript\">\n")
	for _, msg := range tr.Messages {
		sb.WriteString(e.renderMessage(msg))
	}
	sb.WriteString("        </main>\n")

	sb.WriteString("        <footer class=\"footer\">\n")
	sb.WriteString(fmt.Sprintf("            <p>Exported from <strong>parley</strong> on %s</p>\n",
		time.Now().Format("January 2, 2006 at 3:04 PM")))
	sb.WriteString("        </footer>\n")
	sb.WriteString("    </div>\n")
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

// =============================================================================
// RENDERING FUNCTIONS
// =============================================================================

// renderHeader renders the header section with metadata.
func (e *HTMLExporter) renderHeader(tr *model.Transcript) string {
	var sb strings.Builder

	sb.WriteString("        <header class=\"header\">\n")
	sb.WriteString(fmt.Sprintf("            <h1>%s</h1>\n", html.EscapeString(tr.DisplayTitle())))
	sb.WriteString("            <div class=\"metadata\">\n")
	if names := participantNames(tr); len(names) > 0 {
		sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\"><strong>Participants:</strong> %s</span>\n",
			html.EscapeString(strings.Join(names, ", "))))
	}
	sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\"><strong>Created:</strong> %s</span>\n", formatTimestamp(tr.CreatedAt)))
	sb.WriteString(fmt.Sprintf("                <span class=\"meta-item\"><strong>Messages:</strong> %d</span>\n", len(tr.Messages)))
	sb.WriteString("            </div>\n")
	sb.WriteString("        </header>\n")

	return sb.String()
}

// renderMessage renders a single message, one element per segment.
func (e *HTMLExporter) renderMessage(msg *model.Message) string {
	var sb strings.Builder

	roleClass := strings.ToLower(string(msg.Role))
	sb.WriteString(fmt.Sprintf("            <div class=\"message %s-message\">\n", roleClass))

	sb.WriteString("                <div class=\"message-header\">\n")
	sb.WriteString(fmt.Sprintf("                    <span class=\"speaker\">%s</span>\n", html.EscapeString(msg.DisplaySpeaker())))
	if e.options.IncludeTimestamps {
		sb.WriteString(fmt.Sprintf("                    <span class=\"timestamp\">%s</span>\n", formatShortTimestamp(msg.Timestamp)))
	}
	sb.WriteString("                </div>\n")

	sb.WriteString("                <div class=\"message-content\">\n")
	for _, s := range msg.Segments() {
		sb.WriteString(e.renderSegment(s))
	}
	sb.WriteString("                </div>\n")
	sb.WriteString("            </div>\n")

	return sb.String()
}

// renderSegment renders one classified segment.
func (e *HTMLExporter) renderSegment(s segment.Segment) string {
	switch s.Kind {
	case segment.KindPlainText:
		text := strings.TrimSpace(s.Text)
		if text == "" {
			return ""
		}
		return fmt.Sprintf("<p>%s</p>\n", escapeWithBreaks(text))

	case segment.KindCodeFence:
		lang, code := splitFenceBody(s.Text)
		langLabel := ""
		if lang != "" {
			langLabel = fmt.Sprintf("<div class=\"code-lang\">%s</div>", html.EscapeString(lang))
		}
		return fmt.Sprintf("<div class=\"code-block\">%s<pre><code>%s</code></pre></div>\n",
			langLabel, html.EscapeString(code))

	case segment.KindThought:
		return fmt.Sprintf("<p class=\"aside thought\">%s</p>\n", escapeWithBreaks(s.Text))

	case segment.KindWhisper:
		return fmt.Sprintf("<p class=\"aside whisper\">%s</p>\n", escapeWithBreaks(s.Text))

	case segment.KindAction:
		return fmt.Sprintf("<p class=\"aside action\">%s</p>\n", escapeWithBreaks(s.Text))

	case segment.KindLogicThought:
		if !e.options.IncludeLogic {
			return ""
		}
		return fmt.Sprintf("<details class=\"logic\"><summary>Reasoning</summary><pre>%s</pre></details>\n",
			html.EscapeString(segment.NormalizeSymbols(s.Text)))

	case segment.KindLogicResult:
		return fmt.Sprintf("<p class=\"logic-result\"><strong>Result:</strong> %s</p>\n",
			escapeWithBreaks(segment.NormalizeSymbols(s.Text)))

	case segment.KindSocialCard:
		return e.renderCard(s)
	}
	return ""
}

// renderCard renders a social card as a definition list in field order.
func (e *HTMLExporter) renderCard(s segment.Segment) string {
	if len(s.Fields) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<dl class=\"social-card\">\n")
	for _, f := range s.Fields {
		sb.WriteString(fmt.Sprintf("<dt>%s</dt><dd>%s</dd>\n",
			html.EscapeString(f.Key), html.EscapeString(f.Value)))
	}
	sb.WriteString("</dl>\n")
	return sb.String()
}

// =============================================================================
// CONTENT HELPERS
// =============================================================================

// escapeWithBreaks HTML-escapes text and turns newlines into <br>.
func escapeWithBreaks(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>\n")
}

// splitFenceBody splits a verbatim fenced segment into its info string and
// body. Unterminated fences have their opening delimiter stripped only.
func splitFenceBody(text string) (lang, code string) {
	body := strings.TrimPrefix(text, "```")
	body = strings.TrimSuffix(body, "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		first := strings.TrimSpace(body[:nl])
		if first != "" && !strings.ContainsAny(first, " \t") {
			return first, strings.TrimRight(body[nl+1:], "\n")
		}
	}
	return "", strings.Trim(body, "\n")
}

// =============================================================================
// EMBEDDED CSS
// =============================================================================

// getCSS returns the embedded CSS for the HTML export.
func (e *HTMLExporter) getCSS() string {
	return `    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        :root {
            --font-sans: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            --font-mono: "SF Mono", "Monaco", "Inconsolata", "Fira Code", "Source Code Pro", monospace;
        }

        .dark-theme {
            --bg-primary: #1a1b26;
            --bg-secondary: #24283b;
            --bg-tertiary: #414868;
            --text-primary: #c0caf5;
            --text-secondary: #a9b1d6;
            --text-muted: #565f89;
            --border-color: #414868;
            --user-bg: #1f2335;
            --participant-bg: #24283b;
            --code-bg: #1a1b26;
            --accent-blue: #7aa2f7;
            --accent-green: #9ece6a;
            --accent-purple: #bb9af7;
            --accent-yellow: #e0af68;
        }

        .light-theme {
            --bg-primary: #ffffff;
            --bg-secondary: #f7f8fa;
            --bg-tertiary: #e1e4e8;
            --text-primary: #24292e;
            --text-secondary: #586069;
            --text-muted: #6a737d;
            --border-color: #e1e4e8;
            --user-bg: #f6f8fa;
            --participant-bg: #ffffff;
            --code-bg: #f6f8fa;
            --accent-blue: #0366d6;
            --accent-green: #22863a;
            --accent-purple: #6f42c1;
            --accent-yellow: #b08800;
        }

        body {
            font-family: var(--font-sans);
            font-size: 16px;
            line-height: 1.6;
            color: var(--text-primary);
            background: var(--bg-primary);
            padding: 20px;
        }

        .container {
            max-width: 900px;
            margin: 0 auto;
            background: var(--bg-secondary);
            border-radius: 12px;
            overflow: hidden;
        }

        .header {
            padding: 32px;
            background: var(--bg-tertiary);
            border-bottom: 2px solid var(--border-color);
        }

        .header h1 {
            font-size: 28px;
            margin-bottom: 16px;
        }

        .metadata {
            display: flex;
            flex-wrap: wrap;
            gap: 16px;
            font-size: 14px;
            color: var(--text-secondary);
        }

        .transcript {
            padding: 24px 32px;
        }

        .message {
            margin-bottom: 24px;
            padding: 20px;
            border-radius: 8px;
            border-left: 4px solid transparent;
        }

        .user-message {
            background: var(--user-bg);
            border-left-color: var(--accent-blue);
        }

        .participant-message {
            background: var(--participant-bg);
            border-left-color: var(--accent-green);
        }

        .system-message, .narrator-message {
            background: var(--bg-tertiary);
            border-left-color: var(--accent-purple);
        }

        .message-header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 12px;
            font-size: 14px;
        }

        .speaker {
            font-weight: 600;
        }

        .timestamp {
            color: var(--text-muted);
            font-size: 13px;
            font-family: var(--font-mono);
        }

        .message-content p {
            margin-bottom: 12px;
        }

        .aside {
            font-style: italic;
            color: var(--text-secondary);
        }

        .aside.thought::before { content: "thinks: "; color: var(--text-muted); }
        .aside.whisper::before { content: "whispers: "; color: var(--text-muted); }

        .logic {
            margin: 12px 0;
            padding: 8px 12px;
            background: var(--code-bg);
            border: 1px solid var(--border-color);
            border-radius: 6px;
        }

        .logic summary {
            cursor: pointer;
            color: var(--accent-purple);
            font-size: 14px;
        }

        .logic pre {
            margin-top: 8px;
            font-family: var(--font-mono);
            font-size: 14px;
            white-space: pre-wrap;
        }

        .logic-result {
            color: var(--accent-green);
        }

        .social-card {
            margin: 12px 0;
            padding: 12px 16px;
            background: var(--code-bg);
            border: 1px solid var(--accent-yellow);
            border-radius: 6px;
            display: grid;
            grid-template-columns: max-content 1fr;
            gap: 4px 16px;
        }

        .social-card dt {
            font-weight: 600;
            color: var(--accent-yellow);
        }

        .code-block {
            margin: 16px 0;
            border-radius: 8px;
            overflow: hidden;
            background: var(--code-bg);
            border: 1px solid var(--border-color);
        }

        .code-lang {
            padding: 8px 16px;
            background: var(--bg-tertiary);
            font-size: 12px;
            font-weight: 600;
            color: var(--text-secondary);
            text-transform: uppercase;
        }

        .code-block pre {
            margin: 0;
            padding: 16px;
            overflow-x: auto;
        }

        .code-block code {
            font-family: var(--font-mono);
            font-size: 14px;
        }

        .footer {
            padding: 20px 32px;
            text-align: center;
            font-size: 14px;
            color: var(--text-muted);
            border-top: 1px solid var(--border-color);
        }

        @media print {
            .message { page-break-inside: avoid; }
        }
    </style>
`
}
