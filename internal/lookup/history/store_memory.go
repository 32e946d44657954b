package history

import (
	"context"
	"sync"
)

// InMemoryKV is a process-local KV used when Redis is not configured.
type InMemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewInMemoryKV creates an empty in-memory KV.
func NewInMemoryKV() *InMemoryKV {
	return &InMemoryKV{values: make(map[string][]byte)}
}

// Get returns a copy of the stored value or ErrNotFound.
func (m *InMemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (m *InMemoryKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}
