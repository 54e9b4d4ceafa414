package property

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrInvalidValue = errors.New("invalid property value")
)

// Store persists string properties by name. A missing property reads as
// the empty string.
type Store interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
}

// MemoryStore keeps properties in a map. Useful in tests and as a
// scratch store.
type MemoryStore struct {
	values map[string]string
	mu     sync.RWMutex
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(values map[string]string) *MemoryStore {
	s := &MemoryStore{values: make(map[string]string, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[name], nil
}

func (s *MemoryStore) Set(_ context.Context, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = map[string]string{}
	}
	s.values[name] = value
	return nil
}
