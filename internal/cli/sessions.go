// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// sessions.go - The sessions command: managing the transcript archive.

package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/parley-tui/internal/config"
	"github.com/jeranaias/parley-tui/internal/storage"
	"github.com/jeranaias/parley-tui/internal/transcript"
)

// HandleSessions dispatches the sessions subcommands against the sqlite
// archive.
func HandleSessions(args *Args) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	switch args.Parser.Subcommand() {
	case "ls", "list", "":
		return sessionsList(store, args)
	case "search":
		return sessionsSearch(store, args)
	case "show":
		return sessionsShow(store, args)
	case "save":
		return sessionsSave(store, args)
	case "rm", "delete":
		return sessionsRemove(store, args)
	default:
		return NewUsageError("sessions", "ls|search|show|save|rm")
	}
}

// openStore opens the archive database at the configured path.
func openStore() (*storage.TranscriptStore, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, &CommandError{Command: "sessions", Action: "open", Reason: "resolving archive path", Err: err}
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, &CommandError{Command: "sessions", Action: "open", Reason: "opening archive", Err: err}
	}
	return store, nil
}

func sessionsList(store *storage.TranscriptStore, args *Args) error {
	metas, err := store.List()
	if err != nil {
		return &CommandError{Command: "sessions", Action: "ls", Reason: "listing archive", Err: err}
	}

	limit := args.Parser.FlagIntOrDefault("limit", 0)
	if limit > 0 && limit < len(metas) {
		metas = metas[:limit]
	}

	if args.JSON {
		return printMetasJSON(metas)
	}
	printMetas(metas)
	return nil
}

func sessionsSearch(store *storage.TranscriptStore, args *Args) error {
	query := strings.Join(args.Parser.PositionalFrom(1), " ")
	if query == "" {
		return NewUsageError("sessions", "search <query>")
	}

	metas, err := store.Search(query)
	if err != nil {
		return &CommandError{Command: "sessions", Action: "search", Reason: "searching archive", Err: err}
	}

	if args.JSON {
		return printMetasJSON(metas)
	}
	if len(metas) == 0 {
		fmt.Println(DimStyle.Render("no transcripts match " + query))
		return nil
	}
	printMetas(metas)
	return nil
}

func sessionsShow(store *storage.TranscriptStore, args *Args) error {
	id := args.Parser.Positional(1)
	if id == "" {
		return NewUsageError("sessions", "show <id>")
	}

	tr, err := store.Load(id)
	if err != nil {
		return &CommandError{Command: "sessions", Action: "show", Reason: "loading " + id, Err: err}
	}

	cfg := loadConfig(args)
	return runViewer(tr, cfg, nil, "")
}

func sessionsSave(store *storage.TranscriptStore, args *Args) error {
	path := args.Parser.Positional(1)
	if path == "" {
		return NewUsageError("sessions", "save <file>")
	}

	tr, err := transcript.LoadFile(path)
	if err != nil {
		return &CommandError{Command: "sessions", Action: "save", Reason: "loading " + path, Err: err}
	}

	id, err := store.Save(tr)
	if err != nil {
		return &CommandError{Command: "sessions", Action: "save", Reason: "writing archive", Err: err}
	}

	if !args.Quiet {
		fmt.Printf("%s %s\n", SuccessStyle.Render("saved"), IDStyle.Render(id))
	}
	return nil
}

func sessionsRemove(store *storage.TranscriptStore, args *Args) error {
	id := args.Parser.Positional(1)
	if id == "" {
		return NewUsageError("sessions", "rm <id> [--yes]")
	}

	if !args.Parser.BoolFlag("yes") && !args.Parser.BoolFlag("y") {
		if !confirm(fmt.Sprintf("delete transcript %s?", id)) {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := store.Delete(id); err != nil {
		return &CommandError{Command: "sessions", Action: "rm", Reason: "deleting " + id, Err: err}
	}

	if !args.Quiet {
		fmt.Printf("%s %s\n", SuccessStyle.Render("deleted"), IDStyle.Render(id))
	}
	return nil
}

// =============================================================================
// OUTPUT
// =============================================================================

// printMetas renders the archive listing as an aligned table.
func printMetas(metas []storage.TranscriptMeta) {
	if len(metas) == 0 {
		fmt.Println(DimStyle.Render("archive is empty (parley sessions save <file>)"))
		return
	}

	fmt.Println(TitleStyle.Render(fmt.Sprintf("Archive (%d transcripts)", len(metas))))
	for _, m := range metas {
		fmt.Printf("%s  %s  %s\n",
			IDStyle.Render(m.ID),
			ValueStyle.Render(fmt.Sprintf("%-32s", truncate(m.Title, 32))),
			DimStyle.Render(fmt.Sprintf("%3d msgs  %s", m.MessageCount, m.UpdatedAt.Format("2006-01-02 15:04"))))
		if m.Preview != "" {
			fmt.Printf("          %s\n", DimStyle.Render(truncate(m.Preview, 70)))
		}
	}
}

// printMetasJSON renders the listing as a JSON array for scripting.
func printMetasJSON(metas []storage.TranscriptMeta) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(metas)
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// confirm asks a yes/no question on stdin. Non-interactive runs answer no,
// forcing --yes for scripted deletes.
func confirm(question string) bool {
	if !IsTTY() {
		return false
	}
	fmt.Printf("%s [y/N] ", question)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
