package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists blobs as files under a base directory, one file per
// key. Writes go through a temp file and rename so a crashed save never
// leaves a truncated blob behind.
type FileStore struct {
	dir string
}

// NewFileStore ensures the base directory exists and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	blob, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return blob, nil
}

func (s *FileStore) Save(_ context.Context, key string, blob []byte) error {
	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("writing blob: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("replacing %s: %w", key, err)
	}
	return nil
}

// path maps a key onto a file name; separators in keys would escape the
// base directory, so they are flattened.
func (s *FileStore) path(key string) string {
	safe := make([]rune, 0, len(key))
	for _, r := range key {
		switch r {
		case '/', '\\', ':':
			safe = append(safe, '_')
		default:
			safe = append(safe, r)
		}
	}
	return filepath.Join(s.dir, string(safe)+".json")
}
