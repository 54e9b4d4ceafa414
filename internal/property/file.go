package property

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"
)

// FileStore keeps properties in a single JSON object on disk. The whole
// file is rewritten on every Set.
type FileStore struct {
	path   string
	values map[string]string

	mu sync.RWMutex
}

var _ Store = (*FileStore)(nil)

// OpenFileStore loads path, treating a missing file as empty.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: map[string]string{},
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading properties: %w", err)
	}

	if len(data) > 0 {
		err = json.Unmarshal(data, &s.values)
		if err != nil {
			return nil, fmt.Errorf("unmarshalling properties: %w", err)
		}
	}

	return s, nil
}

func (s *FileStore) Get(_ context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[name], nil
}

func (s *FileStore) Set(_ context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.values[name]
	s.values[name] = value

	data, err := json.MarshalIndent(s.values, "", "  ")
	if err == nil {
		err = atomicWrite(s.path, data, 0644)
	}
	if err != nil {
		// Keep memory consistent with what is on disk.
		if existed {
			s.values[name] = prev
		} else {
			delete(s.values, name)
		}
		return err
	}
	return nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
// This prevents partial or empty files if the process is interrupted.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			slog.Warn("failed to remove temp file after rename failure", "path", tmp, "error", removeErr)
		}
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
