// Package prefs is durable key-value preference storage, the place user
// choices such as favorites live between runs.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Store is a key-value preference store
type Store interface {
	// Get returns the value for key and whether it was set
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// StringSlice reads key as a list of strings. ok is false if key was never set.
func StringSlice(ctx context.Context, s Store, key string) (values []string, ok bool, err error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, true, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	if values == nil {
		values = []string{}
	}
	return values, true, nil
}

// SetStringSlice stores values under key
func SetStringSlice(ctx context.Context, s Store, key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}

// Memory is an in-process Store. Values do not survive a restart.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
