// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"testing"
)

func TestArgParser_FlagFormats(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		chk  func(t *testing.T, p *ArgParser)
	}{
		{
			name: "long flag with space",
			raw:  []string{"ls", "--limit", "20"},
			chk: func(t *testing.T, p *ArgParser) {
				if p.Subcommand() != "ls" {
					t.Errorf("subcommand = %q, want ls", p.Subcommand())
				}
				if p.Flag("limit") != "20" {
					t.Errorf("limit = %q, want 20", p.Flag("limit"))
				}
			},
		},
		{
			name: "long flag with equals",
			raw:  []string{"--format=html"},
			chk: func(t *testing.T, p *ArgParser) {
				if p.Flag("format") != "html" {
					t.Errorf("format = %q, want html", p.Flag("format"))
				}
			},
		},
		{
			name: "boolean flag",
			raw:  []string{"rm", "abc123", "--yes"},
			chk: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("yes") {
					t.Error("yes flag not set")
				}
				if p.Positional(1) != "abc123" {
					t.Errorf("positional(1) = %q, want abc123", p.Positional(1))
				}
			},
		},
		{
			name: "explicit boolean value",
			raw:  []string{"--json=false"},
			chk: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("json") {
					t.Error("json=false parsed as true")
				}
			},
		},
		{
			name: "short flag with value",
			raw:  []string{"-f", "markdown"},
			chk: func(t *testing.T, p *ArgParser) {
				if p.Flag("f") != "markdown" {
					t.Errorf("f = %q, want markdown", p.Flag("f"))
				}
			},
		},
		{
			name: "positional args preserved in order",
			raw:  []string{"search", "gamma", "factor"},
			chk: func(t *testing.T, p *ArgParser) {
				got := p.PositionalFrom(1)
				if len(got) != 2 || got[0] != "gamma" || got[1] != "factor" {
					t.Errorf("positionalFrom(1) = %v", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.chk(t, NewArgParser(tt.raw))
		})
	}
}

func TestArgParser_Defaults(t *testing.T) {
	p := NewArgParser([]string{"ls"})

	if got := p.FlagOrDefault("limit", "10"); got != "10" {
		t.Errorf("FlagOrDefault = %q, want 10", got)
	}
	if got := p.FlagIntOrDefault("limit", 25); got != 25 {
		t.Errorf("FlagIntOrDefault = %d, want 25", got)
	}
	if p.HasFlag("limit") {
		t.Error("HasFlag(limit) = true for absent flag")
	}

	p = NewArgParser([]string{"--limit", "notanumber"})
	if got := p.FlagIntOrDefault("limit", 7); got != 7 {
		t.Errorf("malformed int flag = %d, want default 7", got)
	}
}

func TestParse_CommandWords(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{[]string{"view", "chat.jsonl"}, CmdView},
		{[]string{"tail", "chat.jsonl"}, CmdTail},
		{[]string{"follow", "chat.jsonl"}, CmdTail},
		{[]string{"sessions", "ls"}, CmdSessions},
		{[]string{"export", "chat.json"}, CmdExport},
		{[]string{"repl"}, CmdRepl},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{}, CmdHelp},
		{[]string{"definitely-not-a-command"}, CmdHelp},
	}

	for _, tt := range tests {
		cmd, _ := parse(tt.argv)
		if cmd != tt.want {
			t.Errorf("parse(%v) = %v, want %v", tt.argv, cmd, tt.want)
		}
	}
}

func TestParse_GlobalFlags(t *testing.T) {
	_, args := parse([]string{"sessions", "ls", "--json", "--quiet"})
	if !args.JSON {
		t.Error("JSON flag not lifted")
	}
	if !args.Quiet {
		t.Error("Quiet flag not lifted")
	}
}

func TestUsageError_ExitCode(t *testing.T) {
	err := NewUsageError("sessions", "ls|search|show|save|rm")
	if got := ExitCodeFor(err); got != ExitUsageError {
		t.Errorf("ExitCodeFor(usage) = %d, want %d", got, ExitUsageError)
	}
	if got := ExitCodeFor(nil); got != ExitSuccess {
		t.Errorf("ExitCodeFor(nil) = %d, want %d", got, ExitSuccess)
	}
	if got := ExitCodeFor(errors.New("boom")); got != ExitGeneralError {
		t.Errorf("ExitCodeFor(generic) = %d, want %d", got, ExitGeneralError)
	}

	wrapped := &CommandError{Command: "export", Action: "html", Reason: "writing", Err: errors.New("disk full")}
	if !errors.Is(wrapped, wrapped.Err) {
		t.Error("CommandError does not unwrap to its cause")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a very long title indeed", 10); len([]rune(got)) != 10 {
		t.Errorf("truncate length = %d, want 10", len([]rune(got)))
	}
	// Rune-safe, not byte-safe.
	if got := truncate("ガンマ係数の計算ログです", 5); len([]rune(got)) != 5 {
		t.Errorf("truncate(cjk) = %q", got)
	}
}
