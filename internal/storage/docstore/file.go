package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each document as a JSON file under a single directory.
// Used for local runs and tests; production wires the postgres-backed store.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create document dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document %s: %w", name, err)
	}
	return data, nil
}

func (s *FileStore) Save(ctx context.Context, name string, doc []byte) error {
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, doc, 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", name, err)
	}
	return os.Rename(tmp, s.path(name))
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
