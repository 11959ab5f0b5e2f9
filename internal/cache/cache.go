// Package cache is the local persistent store snapshot cache: one JSON file
// per store name, rewritten whole after each mutation and read once at
// startup. There is no incremental write and no snapshot versioning.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Cache struct {
	basePath string
}

// Open creates a Cache rooted at basePath, creating the directory if
// needed.
func Open(basePath string) (*Cache, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory %s: %w", basePath, err)
	}
	return &Cache{basePath: basePath}, nil
}

func (c *Cache) snapshotPath(name string) string {
	return filepath.Join(c.basePath, name+".json")
}

// Put serializes v and replaces the snapshot stored under name.
func (c *Cache) Put(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", name, err)
	}
	if err := os.WriteFile(c.snapshotPath(name), data, 0644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", name, err)
	}
	return nil
}

// Get loads the snapshot stored under name into v. It reports false with a
// nil error when no snapshot exists.
func (c *Cache) Get(name string, v any) (bool, error) {
	data, err := os.ReadFile(c.snapshotPath(name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read snapshot %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("unmarshal snapshot %s: %w", name, err)
	}
	return true, nil
}
