// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package viewer implements the interactive transcript browser.

The viewer is a Bubble Tea model that composes the components package into
a scrollable view: a header with the transcript title, a viewport holding
the rendered messages, and a status bar (or search prompt) at the bottom.

# State

The model tracks three kinds of state on top of the transcript itself:

  - Selection: one message is focused at a time; J/K move between messages
    and the viewport scrolls to keep the focused message visible.
  - Expansion: each logic reasoning segment has its own expanded/collapsed
    flag keyed by (message ID, segment index). Tab toggles every logic
    segment of the focused message at once; ctrl+e toggles all of them
    everywhere.
  - Search: / opens a prompt, enter runs a case-insensitive search over
    message content, n/N cycle through the hits with wraparound.

# Render Cache

Rendering a message (markdown, syntax highlighting, wrapping) is the
expensive part of the view, so each rendered message is cached keyed on
its raw content, the current width and its expand state. Toggling or a
resize invalidates exactly the affected entries.

# Live Mode

Follow() attaches a transcript.Watcher. File-change events trigger a
reload; if the reader was pinned to the bottom and the transcript grew,
the viewport follows the new tail.
*/
package viewer
