package storage

import "sync"

// MemoryStorage keeps values in memory only. Used when persistence is
// disabled and in tests.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries map[string]string
	flushes int
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{entries: make(map[string]string)}
}

// GetString implements Storage.
func (m *MemoryStorage) GetString(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// SetString implements Storage.
func (m *MemoryStorage) SetString(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

// Remove implements Storage.
func (m *MemoryStorage) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Flush implements Storage. It only counts calls.
func (m *MemoryStorage) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
	return nil
}

// Flushes returns how many times Flush was called.
func (m *MemoryStorage) Flushes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flushes
}
