package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Persisted collection keys.
const (
	TasksKey          = "tasks"
	CustomHolidaysKey = "customHolidays"
)

// FileStore persists one JSON document per key in a directory on an
// afero filesystem. Writes go to a temp file first and are renamed into
// place so a failed write never truncates the previous value.
type FileStore struct {
	fs  afero.Fs
	dir string
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{fs: fs, dir: dir}, nil
}

// Load reads and decodes the value stored under key. An absent key
// reports found=false with no error.
func (s *FileStore) Load(key string, dest interface{}) (bool, error) {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return true, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// Save encodes value and stores it under key.
func (s *FileStore) Save(key string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to commit %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// NoopStore is the store used when no persistent storage is available.
// Loads report absent data and saves are discarded, so callers run
// entirely on in-memory state.
type NoopStore struct{}

func (NoopStore) Load(key string, dest interface{}) (bool, error) { return false, nil }

func (NoopStore) Save(key string, value interface{}) error { return nil }
