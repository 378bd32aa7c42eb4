// internal/scores/file.go
//
// JSON-file Store implementation — the canonical persisted format.
//
// Layout: a JSON array of entry objects, in append order. Ranking is
// never written to disk; Top computes it on read.
//
// Durability model:
//   - Append loads the whole collection, appends, and rewrites the file
//     in full. Parent directories are created as needed.
//   - A missing, unreadable, or corrupt file reads as an empty
//     collection (availability over strict integrity); the reset is
//     logged, not surfaced.
//   - No cross-process locking: concurrent writers to the same path can
//     lose updates and must serialize externally.

package scores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// FileStore persists entries as a JSON array at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore constructs a store over the given file path.
// The file need not exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append records one entry, rewriting the whole collection.
func (s *FileStore) Append(ctx context.Context, e Entry) error {
	entries := s.load()
	entries = append(entries, e)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Top returns at most limit entries, best score first, earlier
// timestamp winning ties.
func (s *FileStore) Top(ctx context.Context, limit int) ([]Entry, error) {
	return rank(s.load(), limit), nil
}

// All returns every entry in append order.
func (s *FileStore) All() []Entry { return s.load() }

// load reads the collection, degrading to empty on any failure.
// A file that exists but cannot be parsed is treated as empty rather
// than blocking future scores.
func (s *FileStore) load() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", s.path).Msg("scores file unreadable, starting empty")
		}
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("scores file corrupt, starting empty")
		return nil
	}
	return entries
}
