// Package favorites persists saved parameter sets as an ordered JSON
// list on disk.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TimeFormat is the timestamp layout stored in favorite records.
const TimeFormat = "2006-01-02 15:04:05"

// DefaultPath is the favorites file used when none is configured.
const DefaultPath = "favorites.json"

// Record is one saved favorite.
type Record struct {
	ObjectType string             `json:"object_type"`
	Parameters map[string]float64 `json:"parameters"`
	Timestamp  string             `json:"timestamp"`
}

// NewRecord builds a record stamped at the given time.
func NewRecord(objectType string, params map[string]float64, at time.Time) Record {
	return Record{
		ObjectType: objectType,
		Parameters: params,
		Timestamp:  at.Format(TimeFormat),
	}
}

// Store reads and appends the favorites list.
type Store struct {
	path string
}

// NewStore creates a store over the given file path. An empty path
// falls back to DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the favorites list. A missing file is an empty list; a
// file that cannot be parsed is an error.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read favorites: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse favorites %s: %w", s.path, err)
	}
	return records, nil
}

// Append adds a record and rewrites the file, returning the new total.
// An existing file that cannot be read or parsed is abandoned and a
// fresh list started, so one corrupt save never blocks future ones.
func (s *Store) Append(r Record) (int, error) {
	records, err := s.Load()
	if err != nil {
		records = nil
	}
	records = append(records, r)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode favorites: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("create favorites dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return 0, fmt.Errorf("write favorites: %w", err)
	}
	return len(records), nil
}

// Clear removes the favorites file. A missing file is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}
