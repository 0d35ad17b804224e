package cache

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// ErrEmpty means the cache has never been written (or was cleared).
var ErrEmpty = errors.New("cache empty")

// Cache is a single-key persistent store: one JSON value in one file. It is
// the fallback tier that survives restarts when the review API is down.
type Cache struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Cache {
	return &Cache{path: path}
}

// Put serializes v and replaces the cached value.
func (c *Cache) Put(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.WriteFile(c.path, raw, 0o644)
}

// Get unmarshals the cached value into v. Returns ErrEmpty when nothing has
// been cached yet.
func (c *Cache) Get(v any) error {
	c.mu.Lock()
	raw, err := os.ReadFile(c.path)
	c.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return ErrEmpty
		}
		return err
	}
	return json.Unmarshal(raw, v)
}
