package recordstore

import (
	"context"
	"sync"
)

// MemoryStore keeps collections in process memory. It models the shared
// storage namespace of a single execution context and is the default for
// tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, collection string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection]
	if !ok {
		return nil, nil
	}

	// copy so callers cannot mutate the stored payload
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, collection string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.collections[collection] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections, collection)
	return nil
}
