// internal/pipeline/contextstore/memory.go
package contextstore

import (
	"context"
	"sync"

	"trip-planner/internal/common/errors"
)

// MemoryStore is an in-process Store for tests and single-shot CLI runs.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", errors.NewContextStoreFailedError(errNotFound{key})
	}
	return v, nil
}

func (s *MemoryStore) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

type errNotFound struct{ key string }

func (e errNotFound) Error() string { return "key not found: " + e.key }
