package config

import (
	"sync/atomic"

	"emmetls/internal/syntax"
)

// Store holds the process-wide settings snapshot. Updates replace the
// whole snapshot atomically, so readers never observe a partial reload
// and never need a lock.
type Store struct {
	current atomic.Pointer[Settings]
}

// NewStore returns a Store primed with the default settings.
func NewStore() *Store {
	s := &Store{}
	cfg := Default()
	s.current.Store(&cfg)
	return s
}

// Current returns the active settings snapshot.
func (s *Store) Current() Settings {
	return *s.current.Load()
}

// Replace swaps in a new settings snapshot.
func (s *Store) Replace(cfg Settings) {
	s.current.Store(&cfg)
}

// IsExcluded reports whether expansion is disabled for the given language
// id. The exclusion list may name either the source-level language id
// (e.g. "php") or its canonical syntax (e.g. "html"); both match.
func (s *Store) IsExcluded(language string) bool {
	cfg := s.current.Load()
	canonical := syntax.Canonical(language)
	for _, excluded := range cfg.ExcludeLanguages {
		if excluded == language || excluded == canonical {
			return true
		}
	}
	return false
}
