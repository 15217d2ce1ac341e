package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/etnz/fundora"
)

// Dir stores each key in its own "<key>.json" file.
//
// Writes go to a temporary file renamed over the previous value, so a crash
// never leaves a half written value. A Dir is safe for concurrent use within
// a process.
type Dir struct {
	path string
	mu   sync.RWMutex
}

// NewDir returns a store in directory path, creating it if needed.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &Dir{path: path}, nil
}

func (d *Dir) file(key string) string { return filepath.Join(d.path, key+".json") }

func (d *Dir) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	data, err := os.ReadFile(d.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", fundora.ErrNotFound, key)
	}
	return data, err
}

func (d *Dir) Set(ctx context.Context, key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	tmp, err := os.CreateTemp(d.path, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create file for %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	return os.Rename(tmp.Name(), d.file(key))
}

func (d *Dir) Delete(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	err := os.Remove(d.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", fundora.ErrNotFound, key)
	}
	return err
}

// Close does nothing, a Dir holds no resource.
func (d *Dir) Close() error { return nil }
