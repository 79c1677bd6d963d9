package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	json "github.com/goccy/go-json"
)

// JSONFileBackend keeps the whole key space in one JSON object file:
//
//	{"<id>": "<json-encoded record>", ...}
//
// which is exactly what JSON.stringify(localStorage) produces in a browser.
// The file is read once at open and rewritten atomically on every mutation.
type JSONFileBackend struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// OpenJSONFile opens (or lazily creates) a JSON file backend at path.
// A missing file is an empty store; the file is created on first write.
func OpenJSONFile(path string) (*JSONFileBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("json store: empty path")
	}
	b := &JSONFileBackend{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return nil, fmt.Errorf("json store: reading %s: %w", path, err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(raw)) == 0 {
		return b, nil
	}
	if err := json.Unmarshal(raw, &b.data); err != nil {
		return nil, fmt.Errorf("json store: parsing %s: %w", path, err)
	}
	if b.data == nil {
		b.data = make(map[string]string)
	}
	return b, nil
}

// Path returns the backing file path.
func (b *JSONFileBackend) Path() string { return b.path }

func (b *JSONFileBackend) Get(key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (b *JSONFileBackend) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev, had := b.data[key]
	b.data[key] = string(value)
	if err := b.flushLocked(); err != nil {
		if had {
			b.data[key] = prev
		} else {
			delete(b.data, key)
		}
		return err
	}
	return nil
}

func (b *JSONFileBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev, had := b.data[key]
	if !had {
		return nil
	}
	delete(b.data, key)
	if err := b.flushLocked(); err != nil {
		b.data[key] = prev
		return err
	}
	return nil
}

// Keys returns the keys sorted; a JSON object carries no usable order once
// decoded into a map.
func (b *JSONFileBackend) Keys() ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (b *JSONFileBackend) Close() error { return nil }

// flushLocked writes the key space to disk via temp file + rename.
func (b *JSONFileBackend) flushLocked() error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("json store: creating directory: %w", err)
	}

	data, err := json.MarshalIndent(b.data, "", "  ")
	if err != nil {
		return fmt.Errorf("json store: encoding: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("json store: creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("json store: writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("json store: closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("json store: replacing %s: %w", b.path, err)
	}
	return nil
}
