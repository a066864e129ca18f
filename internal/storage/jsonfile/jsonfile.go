// Package jsonfile provides a flat-file implementation of the storage.Store
// interface: one JSON-encoded list per file, rewritten in full on every save.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tillkeep/tillkeep/internal/storage"
)

// Ensure Store implements storage.Store.
var _ storage.Store[struct{}] = (*Store[struct{}])(nil)

// Store persists a record list as an indented JSON array at a fixed path.
type Store[T any] struct {
	path string
}

// New creates a Store backed by the file at path, creating parent
// directories as needed.
func New[T any](path string) (*Store[T], error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return &Store[T]{path: path}, nil
}

// Load reads the record list from the file. A missing file yields an empty
// list. An unreadable file, undecodable payload, or payload that is not a
// JSON list also yields an empty list, with a warning logged; callers never
// see a damaged file as a hard failure.
func (s *Store[T]) Load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		slog.Warn("Could not read data file, starting with empty data", "file", s.path, "error", err)
		return nil, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("Could not decode data file, starting with empty data", "file", s.path, "error", err)
		return nil, nil
	}
	return records, nil
}

// Save overwrites the file with the full record list.
func (s *Store[T]) Save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
