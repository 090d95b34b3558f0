package storage

import "sync"

// Memory implements Storage with an in-process map. Nothing survives a restart;
// it exists for tests and for running the storefront without a data directory.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory creates an empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Load retrieves the value saved under key.
// Returns ErrKeyNotFound if nothing has been saved under the key.
func (m *Memory) Load(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

// Save writes value under key, replacing any previous value.
func (m *Memory) Save(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.values[key] = cp
	return nil
}
