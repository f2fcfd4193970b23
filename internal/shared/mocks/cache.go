package mocks

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sync"
	"time"
)

// MemoryCache là cache in-memory cho test, match pattern theo path.Match như Redis glob
type MemoryCache struct {
	mu      sync.Mutex
	Items   map[string][]byte
	FailGet bool
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{Items: map[string][]byte{}}
}

func (m *MemoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailGet {
		return false, errors.New("connection refused")
	}
	b, ok := m.Items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (m *MemoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.Items[key] = b
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.Items, k)
	}
	return nil
}

func (m *MemoryCache) DeletePattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.Items {
		if ok, _ := path.Match(pattern, k); ok {
			delete(m.Items, k)
		}
	}
	return nil
}

func (m *MemoryCache) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Items[key]
	return ok
}

func (m *MemoryCache) Ping(context.Context) error { return nil }
