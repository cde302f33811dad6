package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type memoryStore struct {
	docs map[string][]byte
	mu   sync.RWMutex
}

// NewMemory returns an in-memory Store. Used in tests and for running the
// server without Redis.
func NewMemory() Store {
	return &memoryStore{docs: make(map[string][]byte)}
}

func (s *memoryStore) Read(ctx context.Context, name string, out interface{}) (bool, error) {
	s.mu.RLock()
	data, ok := s.docs[name]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal document %s: %w", name, err)
	}
	return true, nil
}

func (s *memoryStore) Write(ctx context.Context, name string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", name, err)
	}

	s.mu.Lock()
	s.docs[name] = data
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Update(ctx context.Context, name string, apply UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := apply(s.docs[name])
	if err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", name, err)
	}
	s.docs[name] = data
	return nil
}
