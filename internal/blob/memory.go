package blob

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte

	// PutErr and DeleteErr, when set, are returned by the corresponding
	// method.
	PutErr    error
	DeleteErr error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// Put stores data under key.
func (s *MemoryStore) Put(_ context.Context, key string, data []byte, _ string) (*Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.PutErr != nil {
		return nil, s.PutErr
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	s.objects[key] = buf
	return &Object{Key: key, URL: fmt.Sprintf("memory://%s", key)}, nil
}

// Delete removes the object with the given key.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	if _, ok := s.objects[key]; !ok {
		return fmt.Errorf("object %q not found", key)
	}
	delete(s.objects, key)
	return nil
}

// Len returns the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// Get returns a stored object's data.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}
