package server

import (
	"log/slog"
	"sync"

	"git.home.luguber.info/inful/docwidgets/internal/logfields"
	"git.home.luguber.info/inful/docwidgets/internal/migration"
)

// changelogStore holds the last loaded migration notes of a directory.
type changelogStore struct {
	dir string

	mu   sync.RWMutex
	docs []*migration.Document
	err  error
}

func newChangelogStore(dir string) *changelogStore {
	return &changelogStore{dir: dir}
}

// Reload re-reads the directory. On failure the previous documents are kept
// and the error is reported by Get until the next successful reload.
func (s *changelogStore) Reload() error {
	docs, err := migration.LoadDir(s.dir)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	if err != nil {
		slog.Warn("Changelog reload failed", logfields.Path(s.dir), logfields.Error(err))
		return err
	}
	s.docs = docs
	slog.Info("Changelog loaded", logfields.Path(s.dir), logfields.Count(len(docs)))
	return nil
}

func (s *changelogStore) Get() ([]*migration.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs, s.err
}
