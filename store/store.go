// Package store persists the application state as key-value pairs.
//
// Two backends implement fundora.KV: Dir keeps one JSON file per key in a
// directory, SQLite keeps a single table in a SQLite database.
package store

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/etnz/fundora"
)

// Store is a fundora.KV that must be closed after use.
type Store interface {
	fundora.KV
	io.Closer
}

// Drivers accepted by Open.
const (
	DriverDir    = "dir"
	DriverSQLite = "sqlite"
)

// Open opens the store at path with driver. An empty driver is guessed from
// the path: a ".db" or ".sqlite" file is a SQLite database, anything else a
// directory.
func Open(driver, path string) (Store, error) {
	if driver == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".db", ".sqlite":
			driver = DriverSQLite
		default:
			driver = DriverDir
		}
	}
	switch driver {
	case DriverDir:
		return NewDir(path)
	case DriverSQLite:
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("%w: unknown store driver %q", fundora.ErrInvalidInput, driver)
	}
}

// validKey rejects keys that cannot be used as a file name.
func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: invalid key %q", fundora.ErrInvalidInput, key)
	}
	return nil
}

