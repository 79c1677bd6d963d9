// Package store persists sticky-note tickets in a flat key-value space.
//
// Each key is a ticket id and each value is the JSON-encoded
// model.Record for that ticket. The layout deliberately matches what the
// browser version of the board kept in localStorage. Three backends are
// available: a JSON file, a SQLite database and an in-memory map.
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// BackendType identifies a storage backend.
type BackendType string

const (
	// BackendJSON is a single JSON object file (localStorage dump layout).
	BackendJSON BackendType = "json"
	// BackendSQLite is a SQLite database with a single kv table.
	BackendSQLite BackendType = "sqlite"
	// BackendMemory keeps everything in process memory.
	BackendMemory BackendType = "memory"
)

// ParseBackendType maps a config or flag value to a BackendType.
func ParseBackendType(s string) (BackendType, error) {
	switch BackendType(strings.ToLower(strings.TrimSpace(s))) {
	case BackendJSON, "":
		return BackendJSON, nil
	case BackendSQLite, "sqlite3", "db":
		return BackendSQLite, nil
	case BackendMemory, "mem":
		return BackendMemory, nil
	default:
		return "", fmt.Errorf("unknown store backend %q (want json, sqlite or memory)", s)
	}
}

// Backend is a flat string-keyed byte store. Implementations write through:
// once Set or Delete returns nil the change is durable.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	// Keys returns every key in backend-native order.
	Keys() ([]string, error)
	Close() error
}

// Open opens a backend of the given type at path. path is ignored for the
// memory backend.
func Open(typ BackendType, path string) (Backend, error) {
	switch typ {
	case BackendJSON:
		return OpenJSONFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", typ)
	}
}

// MemoryBackend is a map-backed Backend.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryBackend) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys returns the keys sorted, since map order is not stable.
func (m *MemoryBackend) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryBackend) Close() error { return nil }
