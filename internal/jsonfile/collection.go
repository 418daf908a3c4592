// Package jsonfile stores a collection of records as one JSON array on disk.
//
// Every mutation reads the whole document, changes it in memory and writes
// the whole document back. A Collection serializes those cycles with a mutex
// and replaces the file through a temp file + rename, so a reader never sees
// a half-written document and two requests in the same process cannot lose
// each other's update.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MikeMC777/verduleria-ecom/internal/apperr"
)

type Collection[T any] struct {
	mu   sync.Mutex
	path string
	name string
}

// Open prepares the collection stored at path. The parent directory is
// created if needed; the file itself is created lazily on first write.
func Open[T any](path string) (*Collection[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("jsonfile: create dir for %s: %w", path, err)
	}
	name := filepath.Base(path)
	return &Collection[T]{path: path, name: name}, nil
}

func (c *Collection[T]) Path() string { return c.path }

// Lock and Unlock give callers that coordinate several collections
// exclusive access. ReadAll, WriteAll, Snapshot and Restore assume the lock
// is held.
func (c *Collection[T]) Lock()   { c.mu.Lock() }
func (c *Collection[T]) Unlock() { c.mu.Unlock() }

// List returns a copy of every record.
func (c *Collection[T]) List() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ReadAll()
}

// Update runs fn over the current records and writes back what it returns.
// When fn fails nothing is written.
func (c *Collection[T]) Update(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.ReadAll()
	if err != nil {
		return err
	}
	out, err := fn(items)
	if err != nil {
		return err
	}
	return c.WriteAll(out)
}

// ReadAll decodes the document. A missing or empty file is an empty
// collection.
func (c *Collection[T]) ReadAll() ([]T, error) {
	raw, err := c.Snapshot()
	if err != nil {
		return nil, err
	}
	items := []T{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperr.Storage("failed to read "+c.name, fmt.Errorf("decode %s: %w", c.path, err))
	}
	return items, nil
}

// WriteAll replaces the document with items.
func (c *Collection[T]) WriteAll(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return apperr.Storage("failed to write "+c.name, fmt.Errorf("encode %s: %w", c.path, err))
	}
	return c.Restore(data)
}

// Snapshot returns the raw document bytes (nil when the file does not exist).
func (c *Collection[T]) Snapshot() ([]byte, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, apperr.Storage("failed to read "+c.name, err)
	}
	return raw, nil
}

// Restore writes raw bytes back as the document. A nil snapshot removes the
// file, returning the collection to "never written".
func (c *Collection[T]) Restore(raw []byte) error {
	if raw == nil {
		if err := os.Remove(c.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return apperr.Storage("failed to write "+c.name, err)
		}
		return nil
	}
	if err := writeAtomic(c.path, raw); err != nil {
		return apperr.Storage("failed to write "+c.name, err)
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
