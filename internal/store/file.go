package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 50 * time.Millisecond

// FileStore implements the Storage interface on a single JSON object file.
// Access from several processes is coordinated through a sibling lock file.
type FileStore struct {
	path string
	flk  *flock.Flock
}

// NewFileStore creates a file-backed store at path. The file itself is
// created lazily on the first write.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{
		path: path,
		flk:  flock.New(path + ".lock"),
	}, nil
}

// Close releases the lock file handle.
func (s *FileStore) Close() error {
	return s.flk.Close()
}

// GetItem retrieves the value stored under key.
func (s *FileStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	if _, err := s.flk.TryRLockContext(ctx, lockRetryDelay); err != nil {
		return "", false, fmt.Errorf("failed to acquire read lock: %w", err)
	}
	defer s.flk.Unlock()

	items, err := s.read()
	if err != nil {
		return "", false, err
	}
	value, ok := items[key]
	return value, ok, nil
}

// SetItems merges items into the file and rewrites it atomically.
func (s *FileStore) SetItems(ctx context.Context, items map[string]string) error {
	if len(items) == 0 {
		return nil
	}
	return s.update(ctx, func(current map[string]string) {
		for k, v := range items {
			current[k] = v
		}
	})
}

// RemoveItems deletes keys from the file and rewrites it atomically.
func (s *FileStore) RemoveItems(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.update(ctx, func(current map[string]string) {
		for _, k := range keys {
			delete(current, k)
		}
	})
}

func (s *FileStore) update(ctx context.Context, fn func(map[string]string)) error {
	if _, err := s.flk.TryLockContext(ctx, lockRetryDelay); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer s.flk.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}
	fn(items)
	return s.write(items)
}

func (s *FileStore) read() (map[string]string, error) {
	items := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return items, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return items, nil
	}

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	return items, nil
}

// write replaces the file using a temporary file and an atomic rename.
func (s *FileStore) write(items map[string]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode items: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, s.path)
}
