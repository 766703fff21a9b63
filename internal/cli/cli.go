// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and dispatch for parley.
//
// USABILITY: Comprehensive help and examples for all commands

package cli

import (
	"fmt"
	"os"
	"runtime"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdView Command = iota
	CmdTail
	CmdSessions
	CmdExport
	CmdRepl
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments for the selected command.
type Args struct {
	// Global flags
	Quiet bool
	JSON  bool

	// Command-specific arguments (everything after the command word).
	Parser *ArgParser
}

// Parse reads os.Args and returns the command plus its arguments.
func Parse() (Command, *Args) {
	return parse(os.Args[1:])
}

// parse is the testable core of Parse.
func parse(argv []string) (Command, *Args) {
	args := &Args{}

	if len(argv) == 0 {
		return CmdHelp, args
	}

	cmd := CmdHelp
	switch argv[0] {
	case "view":
		cmd = CmdView
	case "tail", "follow":
		cmd = CmdTail
	case "sessions", "session":
		cmd = CmdSessions
	case "export":
		cmd = CmdExport
	case "repl", "tokenize":
		cmd = CmdRepl
	case "version", "--version", "-v":
		cmd = CmdVersion
	case "help", "--help", "-h":
		cmd = CmdHelp
	default:
		// A bare path argument means "view this file".
		if _, err := os.Stat(argv[0]); err == nil {
			args.Parser = NewArgParser(argv)
			applyGlobalFlags(args)
			return CmdView, args
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", argv[0])
		return CmdHelp, args
	}

	args.Parser = NewArgParser(argv[1:])
	applyGlobalFlags(args)
	return cmd, args
}

// applyGlobalFlags lifts flags every command understands out of the parser.
func applyGlobalFlags(args *Args) {
	if args.Parser == nil {
		return
	}
	args.Quiet = args.Parser.BoolFlag("quiet") || args.Parser.BoolFlag("q")
	args.JSON = args.Parser.BoolFlag("json")
}

// HandleVersion prints version information.
func HandleVersion(args *Args) {
	if args.JSON {
		fmt.Printf(`{"version":%q,"commit":%q,"built":%q,"go":%q}`+"\n",
			Version, GitCommit, BuildDate, runtime.Version())
		return
	}
	fmt.Printf("parley %s (%s, built %s, %s)\n",
		Version, GitCommit, BuildDate, runtime.Version())
}

// HandleHelp prints usage for all commands.
func HandleHelp() {
	fmt.Print(helpText)
}

const helpText = `parley - transcript viewer for LLM chat logs

Usage:
  parley <file>                     View a transcript (shorthand for view)
  parley view <file> [flags]        View a transcript file (.json or .jsonl)
  parley tail <file> [flags]        View a transcript and follow changes
  parley sessions <subcmd> [flags]  Manage the transcript archive
  parley export <file> [flags]      Export a transcript to another format
  parley repl                       Tokenize lines interactively
  parley version                    Print version information
  parley help                       Show this help

View flags:
  --expand-logic        Start with reasoning segments expanded
  --no-timestamps       Hide per-message timestamps
  --style <name>        Chroma style for code fences (default from config)

Tail flags:
  --debounce <ms>       Minimum interval between reloads (default 200)
  (view flags also apply)

Sessions subcommands:
  ls [--limit N] [--json]       List archived transcripts
  search <query> [--json]       Search archived transcripts by content
  show <id>                     View an archived transcript
  save <file>                   Archive a transcript file
  rm <id> [--yes]               Delete an archived transcript

Export flags:
  --format <fmt>        markdown (default), html, or json
  --out <dir>           Output directory (default current directory)
  --no-logic            Drop reasoning segments, keep results
  --theme <name>        HTML theme: dark (default) or light

Examples:
  parley chat.jsonl
  parley tail ~/logs/live.jsonl --debounce 500
  parley sessions search "gamma factor"
  parley export chat.json --format html --out ./site
`
