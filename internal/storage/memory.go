package storage

import (
	"context"
	"sync"
	"time"
)

type memEntry struct {
	value     string
	expiresAt time.Time
}

// Memory keeps everything in process; it is the default backend and the one tests use.
type Memory struct {
	mu   sync.RWMutex
	data map[string]memEntry
	now  func() time.Time
}

func NewMemory() *Memory {
	return &Memory{data: map[string]memEntry{}, now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.data[key]
	if !ok || m.expired(e) {
		return "", ErrNotFound
	}
	return e.value, nil
}

func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := memEntry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = e
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Exists(ctx context.Context, key string) (bool, error) {
	_, err := m.Get(ctx, key)
	if err == ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (m *Memory) expired(e memEntry) bool {
	return !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt)
}
