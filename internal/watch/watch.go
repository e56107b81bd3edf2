// Package watch reprocesses exported transcripts as they appear in a
// directory. Files are handled one at a time; the idempotence marker
// keeps events fired by our own rewrites cheap.
package watch

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler processes one transcript file.
type Handler func(path string) error

// Options tunes the watcher.
type Options struct {
	Debounce   time.Duration // minimum gap between handling the same path
	Extensions []string      // file suffixes to react to, e.g. ".md"
}

// Watch blocks, invoking h for every created or written transcript file
// under dir. It returns when the watcher is closed or fails.
func Watch(dir string, opts Options, h Handler) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	deb := newDebouncer(opts.Debounce)

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !wanted(ev.Name, opts.Extensions) {
				continue
			}
			if !deb.allow(ev.Name, time.Now()) {
				continue
			}

			if err := h(ev.Name); err != nil {
				log.Printf("warning: %s: %v", filepath.Base(ev.Name), err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("warning: watcher: %v", err)
		}
	}
}

// debouncer suppresses repeat events for a path within the window.
type debouncer struct {
	window time.Duration
	seen   map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, seen: make(map[string]time.Time)}
}

// allow reports whether path may be handled now and records the touch.
// Entries outside the window are evicted on every touch so the map does
// not grow with the lifetime of the watcher.
func (d *debouncer) allow(path string, now time.Time) bool {
	if t, ok := d.seen[path]; ok && now.Sub(t) < d.window {
		return false
	}
	for p, t := range d.seen {
		if now.Sub(t) >= d.window {
			delete(d.seen, p)
		}
	}
	d.seen[path] = now
	return true
}

// wanted reports whether path has one of the watched suffixes.
func wanted(path string, exts []string) bool {
	for _, e := range exts {
		if strings.HasSuffix(path, e) {
			return true
		}
	}
	return false
}
