// parley - a terminal viewer for LLM chat transcripts.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/jeranaias/parley-tui/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdView:
		err = cli.HandleView(args)
	case cli.CmdTail:
		err = cli.HandleTail(args)
	case cli.CmdSessions:
		err = cli.HandleSessions(args)
	case cli.CmdExport:
		err = cli.HandleExport(args)
	case cli.CmdRepl:
		err = cli.HandleRepl(args)
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render("error: ")+err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}
}
