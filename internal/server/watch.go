package server

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docwidgets/internal/foundation/errors"
	"git.home.luguber.info/inful/docwidgets/internal/logfields"
)

const reloadDebounce = 300 * time.Millisecond

// watchChangelog reloads store whenever a Markdown file in its directory
// changes. It returns once ctx is done.
func watchChangelog(ctx context.Context, store *changelogStore) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "cannot create file watcher").Build()
	}
	defer func() {
		_ = watcher.Close()
	}()
	if err := watcher.Add(store.dir); err != nil {
		return errors.FileSystemError(err, "cannot watch changelog directory").WithContext("dir", store.dir).Build()
	}

	trigger, stop := debounce(reloadDebounce, func() { _ = store.Reload() })
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if shouldIgnoreEvent(ev.Name) {
				continue
			}
			slog.Debug("Changelog change detected", logfields.File(ev.Name), slog.String("op", ev.Op.String()))
			trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// debounce returns a trigger that runs fn once calls have been quiet for d.
func debounce(d time.Duration, fn func()) (trigger func(), stop func()) {
	var mu sync.Mutex
	var timer *time.Timer
	trigger = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, fn)
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return trigger, stop
}

// shouldIgnoreEvent skips hidden files, editor swap files and non-Markdown files.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "#") || strings.HasSuffix(base, "~") {
		return true
	}
	return !strings.EqualFold(filepath.Ext(base), ".md")
}
