// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - The export command: transcript files to markdown/html/json.

package cli

import (
	"fmt"

	"github.com/jeranaias/parley-tui/internal/export"
	"github.com/jeranaias/parley-tui/internal/transcript"
)

// HandleExport converts a transcript file into another format on disk.
func HandleExport(args *Args) error {
	path := args.Parser.Positional(0)
	if path == "" {
		return NewUsageError("export", "<file> [--format markdown|html|json] [--out <dir>]")
	}

	tr, err := transcript.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	opts := export.DefaultOptions()
	opts.OutputDir = args.Parser.FlagOrDefault("out", ".")
	opts.IncludeLogic = !args.Parser.BoolFlag("no-logic")
	opts.IncludeTimestamps = !args.Parser.BoolFlag("no-timestamps")
	opts.Theme = args.Parser.FlagOrDefault("theme", "dark")
	opts.OpenAfterExport = args.Parser.BoolFlag("open")

	format := args.Parser.FlagOrDefault("format", "markdown")
	exporter, err := export.ForFormat(format, opts)
	if err != nil {
		return NewUsageError("export", "--format must be markdown, html or json")
	}

	outPath, err := export.ExportToFile(tr, exporter, opts)
	if err != nil {
		return &CommandError{Command: "export", Action: format, Reason: "writing output", Err: err}
	}

	if !args.Quiet {
		fmt.Printf("%s %s\n", SuccessStyle.Render("exported"), ValueStyle.Render(outPath))
	}
	return nil
}
