package storage

import (
	"context"
	"sync"

	"tasklist/internal/errors"
)

// Memory is a map-backed Storage. Values are copied on the way in and out.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory creates an empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewSlotError("read slot", key, err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, errors.NewNotFoundError("slot", key)
	}
	return append([]byte(nil), value...), nil
}

// Put replaces the value stored under key.
func (m *Memory) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.NewSlotError("write slot", key, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
