package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStorage implements Storage on the local filesystem.
// Each key is kept in its own <key>.json file under the configured directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a FileStorage rooted at dir, creating the directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &FileStorage{dir: dir}, nil
}

// Load retrieves the value saved under key.
// Returns ErrKeyNotFound if the key file does not exist.
func (s *FileStorage) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, nil
}

// Save writes value under key. The write goes through a temp file followed by
// a rename so a crash mid-write never leaves a truncated value behind.
func (s *FileStorage) Save(key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for key %s: %w", key, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for key %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("failed to replace key %s: %w", key, err)
	}
	return nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
