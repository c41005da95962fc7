package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is the in-process backend used when no Redis address is configured.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	e         Entry
	expiresAt time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(_ context.Context, key string) (Entry, bool, error) {
	m.mu.RLock()
	me, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || time.Now().After(me.expiresAt) {
		return Entry{}, false, nil
	}
	return me.e, true, nil
}

func (m *Memory) Set(_ context.Context, key string, e Entry, keepFor time.Duration) error {
	m.mu.Lock()
	m.entries[key] = memoryEntry{e: e, expiresAt: time.Now().Add(keepFor)}
	m.mu.Unlock()
	return nil
}
