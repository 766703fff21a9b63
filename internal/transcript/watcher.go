// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package transcript

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// =============================================================================
// LIVE TAIL WATCHER
// =============================================================================

// Watcher follows one transcript file on disk and reports when its content
// changes. Change notifications are rate limited so that a burst of writes
// from a streaming producer reloads the file once, not once per syscall.
//
// RELIABILITY: the watch is registered on the parent directory, not the
// file itself. Producers that write via rename (tmp file + mv) replace the
// inode, and a file-level watch would silently go dead after the first swap.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	limiter *rate.Limiter
	events  chan struct{}
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewWatcher starts watching path. debounce is the minimum interval between
// delivered change notifications; values below 50ms are raised to 50ms.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	if debounce < 50*time.Millisecond {
		debounce = 50 * time.Millisecond
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		limiter: rate.NewLimiter(rate.Every(debounce), 1),
		events:  make(chan struct{}, 1),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go w.run(ctx)
	return w, nil
}

// Events delivers one value per (debounced) change to the watched file.
// The channel is closed when the watcher is closed.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher and releases its OS resources.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.fsw.Close()
	<-w.done
	return err
}

// run consumes raw fsnotify events until the context is cancelled.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer close(w.events)

	// trailing redelivers the last suppressed change once the debounce
	// window expires. Without it a burst whose final write lands inside
	// the window would never be reported and the tail would stay stale.
	var trailing *time.Timer
	var trailingC <-chan time.Time
	defer func() {
		if trailing != nil {
			trailing.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if w.limiter.Allow() {
				w.notify()
				continue
			}
			// Inside the cooldown window. One armed timer covers the
			// whole burst; the consumer re-reads the file anyway.
			if trailingC == nil {
				res := w.limiter.Reserve()
				trailing = time.NewTimer(res.Delay())
				trailingC = trailing.C
			}

		case <-trailingC:
			trailing = nil
			trailingC = nil
			w.notify()

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// notify delivers one change notification without blocking. A single
// pending value is enough: reloads read the whole file.
func (w *Watcher) notify() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// relevant reports whether ev touches the watched file in a way that can
// change its content.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}
