// Package watch rebuilds the canonical documents whenever source content
// changes. It exists for the authoring loop: edit a content file, see the
// output update.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/fernhollow/stile/pkg/build"
	"github.com/fernhollow/stile/pkg/site"
)

// debounceWindow batches editor write bursts (temp files, double saves) into
// one rebuild.
const debounceWindow = 250 * time.Millisecond

// Watcher runs builds in response to filesystem events.
type Watcher struct {
	layout site.Layout
	log    *slog.Logger
}

// New creates a Watcher for the given site layout.
func New(layout site.Layout, log *slog.Logger) *Watcher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Watcher{layout: layout, log: log}
}

// Run builds once, then blocks rebuilding on every relevant change until ctx
// is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{
		w.layout.EventsDir,
		w.layout.LinksDir,
		w.layout.NewsDir,
		w.layout.GalleryMetaDir,
	} {
		if _, err := os.Stat(dir); err == nil {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", w.layout.Rel(dir), err)
			}
			w.log.Debug("watching", "dir", w.layout.Rel(dir))
		}
	}

	w.rebuild()

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("change detected", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.rebuild()

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Error("watch error", "error", err)
		}
	}
}

// relevant filters watcher noise: only writes/creates/removes/renames of
// files matching the source patterns trigger a rebuild.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(event.Name)
	patterns := append([]string{"*.json"}, w.layout.Include...)
	for _, pat := range patterns {
		if ok, _ := doublestar.Match(pat, name); ok {
			return true
		}
	}
	return false
}

func (w *Watcher) rebuild() {
	if _, err := build.New(w.layout, w.log).Run(); err != nil {
		w.log.Error("rebuild failed", "error", err)
	}
}
