// Package store persists local data: the TUI's UI preferences and the SQLite
// table behind the `todo serve` development backend.
package store

import (
	"os"
	"path/filepath"
)

// Store is a directory holding local state files.
type Store struct {
	Dir string
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) path(name string) string {
	return filepath.Join(s.Dir, name)
}
