package store

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process key-value store with the same surface as Store.
type Memory struct {
	mu      sync.Mutex
	values  map[string]string
	updated map[string]time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		values:  map[string]string{},
		updated: map[string]time.Time{},
	}
}

// Get returns the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.updated[key] = time.Now().UTC()
	return nil
}

// Remove deletes key.
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	delete(m.updated, key)
	return nil
}

// UpdatedAt reports when key was last written.
func (m *Memory) UpdatedAt(_ context.Context, key string) (time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.updated[key]
	return t, ok, nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
