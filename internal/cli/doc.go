// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli implements the parley command line interface.

Structure:

  - cli.go - command words, global flags, help text, Parse()
  - args.go - the shared ArgParser all commands use
  - view.go - view and tail (full-screen viewer, optionally live)
  - sessions.go - the sqlite transcript archive (ls/search/show/save/rm)
  - export_cmd.go - markdown/html/json export
  - repl.go - interactive tokenizer inspection
  - errors.go - CommandError/UsageError and exit codes
  - terminal.go - TTY and color detection
  - styles.go - shared lipgloss styles for command output

Handlers return errors; main maps them to exit codes with ExitCodeFor and
prints them. Output styling degrades to plain text when stdout is not a
terminal or NO_COLOR is set.
*/
package cli
