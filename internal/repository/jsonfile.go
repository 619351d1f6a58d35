package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// collection is a flat file holding one JSON array. Every mutation reads the
// whole file, rewrites the whole file. A per-collection mutex serializes
// writers within the process so concurrent requests cannot drop each other's
// updates, and writes go through a temp file renamed into place so a failed
// write never truncates the collection.
type collection[T any] struct {
	path string
	mu   sync.Mutex
}

func newCollection[T any](dir, name string) *collection[T] {
	return &collection[T]{path: filepath.Join(dir, name)}
}

// read returns the decoded array; a missing file is an empty collection.
func (c *collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", filepath.Base(c.path), err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(c.path), err)
	}
	return items, nil
}

func (c *collection[T]) write(items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(c.path), err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(c.path), err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(c.path), err)
	}
	return nil
}

// List returns a snapshot of the collection in file-append order.
func (c *collection[T]) List() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read()
}

// Update applies fn to the current contents under the collection lock and
// rewrites the file with whatever fn returns.
func (c *collection[T]) Update(fn func(items []T) []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.read()
	if err != nil {
		return err
	}
	return c.write(fn(items))
}
