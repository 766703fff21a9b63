// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/parley-tui/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_JSON(t *testing.T) {
	path := writeFile(t, "chat.json", `{
		"id": "tr_1",
		"title": "Planning",
		"messages": [
			{"id": "msg_1", "role": "user", "content": "hello"},
			{"id": "msg_2", "role": "participant", "speaker": "Mira", "content": "[waves] hi"}
		]
	}`)

	tr, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "tr_1", tr.ID)
	require.Equal(t, "Planning", tr.Title)
	require.Len(t, tr.Messages, 2)
	require.Equal(t, model.RoleParticipant, tr.Messages[1].Role)
	require.Equal(t, "Mira", tr.Messages[1].Speaker)
}

func TestLoadFile_JSONFillsTitleFromFilename(t *testing.T) {
	path := writeFile(t, "standup.json", `{"messages": [{"role": "user", "content": "hi"}]}`)

	tr, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "standup", tr.Title)
	require.NotEmpty(t, tr.ID)
}

func TestLoadFile_JSONL(t *testing.T) {
	path := writeFile(t, "stream.jsonl",
		`{"role": "user", "content": "what is 2+2?"}
{"speaker": "Mira", "content": "[[THOUGHT]]2+2[[/THOUGHT]][[RESULT]]4[[/RESULT]]"}
{"role": "system", "content": "session resumed"}
`)

	tr, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, tr.Messages, 3)
	require.Equal(t, model.RoleUser, tr.Messages[0].Role)
	// Speaker without role defaults to participant.
	require.Equal(t, model.RoleParticipant, tr.Messages[1].Role)
	require.True(t, tr.Messages[1].HasLogicSegments())
	require.Equal(t, model.RoleSystem, tr.Messages[2].Role)
	require.Equal(t, "stream", tr.Title)
}

func TestLoadFile_JSONLSkipsMalformedLines(t *testing.T) {
	path := writeFile(t, "torn.jsonl",
		`{"role": "user", "content": "first"}
not json at all
{"role": "user", "content": "second"}
{"role": "user", "content": "torn off mid-wr`)

	tr, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, tr.Messages, 2)
	require.Equal(t, "first", tr.Messages[0].Content)
	require.Equal(t, "second", tr.Messages[1].Content)
}

func TestLoadFile_JSONLUnknownRoleBecomesParticipant(t *testing.T) {
	path := writeFile(t, "odd.jsonl", `{"role": "assistant", "speaker": "Bot", "content": "hi"}`)

	tr, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, model.RoleParticipant, tr.Messages[0].Role)
}

func TestLoadFile_Empty(t *testing.T) {
	path := writeFile(t, "empty.jsonl", "\n\n")
	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrEmptyFile)
}

func TestLoadFile_UnknownExtension(t *testing.T) {
	path := writeFile(t, "chat.txt", "hello")
	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestWatcher_DeliversWriteEvents(t *testing.T) {
	path := writeFile(t, "live.jsonl", `{"role": "user", "content": "hi"}`+"\n")

	w, err := NewWatcher(path, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(`{"role": "user", "content": "again"}` + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case _, ok := <-w.Events():
		require.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification after write")
	}
}

func TestWatcher_RedeliversWriteInsideDebounceWindow(t *testing.T) {
	path := writeFile(t, "live.jsonl", `{"role": "user", "content": "hi"}`+"\n")

	w, err := NewWatcher(path, 500*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	appendLine := func(line string) {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		require.NoError(t, err)
		_, err = f.WriteString(line + "\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	appendLine(`{"role": "user", "content": "first"}`)
	select {
	case _, ok := <-w.Events():
		require.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("no notification for the first write")
	}

	// The consumer has drained the pending notification. A write landing
	// inside the cooldown window must still be reported once the window
	// expires, or the tail view shows a stale file forever.
	time.Sleep(100 * time.Millisecond)
	appendLine(`{"role": "user", "content": "last"}`)

	select {
	case _, ok := <-w.Events():
		require.True(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("final write of the burst was never notified")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	w, err := NewWatcher(path, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.jsonl"), []byte("{}\n"), 0o644))

	select {
	case <-w.Events():
		t.Fatal("notified for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_CloseClosesEvents(t *testing.T) {
	path := writeFile(t, "live.jsonl", "{}\n")

	w, err := NewWatcher(path, 50*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Events():
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("events channel not closed")
	}
}
