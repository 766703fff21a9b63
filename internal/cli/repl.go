// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - The repl command: interactive segment inspection.
//
// Paste raw transcript text at the prompt and see how it classifies. Useful
// for checking why a line renders the way it does without building a file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/parley-tui/internal/config"
	"github.com/jeranaias/parley-tui/internal/segment"
)

// HandleRepl runs the tokenizer REPL.
func HandleRepl(args *Args) error {
	if !IsTTY() {
		return replPipe(args)
	}

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer line.Close()

	historyFile := replHistoryPath()
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	if !args.Quiet {
		fmt.Println(TitleStyle.Render("parley tokenizer repl"))
		fmt.Println(DimStyle.Render("type a transcript line, :q to quit"))
	}

	for {
		input, err := line.Prompt("> ")
		if err == liner.ErrPromptAborted || err != nil {
			break
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == ":q" || trimmed == ":quit" || trimmed == "exit" {
			break
		}

		line.AppendHistory(input)
		dumpSegments(input, args.JSON)
	}

	if historyFile != "" {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
	return nil
}

// replPipe tokenizes stdin line by line for non-interactive use:
//
//	echo '[[THOUGHT]]x[[RESULT]]y' | parley repl --json
func replPipe(args *Args) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	dumpSegments(string(data), args.JSON)
	return nil
}

// replHistoryPath returns the history file location, or "" when there is no
// usable config directory.
func replHistoryPath() string {
	dir, err := config.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "repl_history")
}

// dumpSegments prints the classification of raw text.
func dumpSegments(raw string, asJSON bool) {
	segs := segment.Tokenize(raw)

	if asJSON {
		type jsonField struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		}
		type jsonSeg struct {
			Kind   string      `json:"kind"`
			Text   string      `json:"text"`
			Fields []jsonField `json:"fields,omitempty"`
		}
		out := make([]jsonSeg, 0, len(segs))
		for _, s := range segs {
			js := jsonSeg{Kind: s.Kind.String(), Text: s.Text}
			for _, f := range s.Fields {
				js.Fields = append(js.Fields, jsonField{Key: f.Key, Value: f.Value})
			}
			out = append(out, js)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
		return
	}

	for i, s := range segs {
		fmt.Printf("%s %s\n",
			LabelStyle.Render(fmt.Sprintf("%d %s", i, s.Kind)),
			ValueStyle.Render(preview(s.Text)))
		for _, f := range s.Fields {
			fmt.Printf("%s %s\n",
				LabelStyle.Render("  ·"+f.Key),
				DimStyle.Render(preview(f.Value)))
		}
	}
}

// preview flattens newlines and shortens long text for one-line display.
func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", "⏎")
	return truncate(s, 90)
}
