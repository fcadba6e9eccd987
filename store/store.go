// Package store persists a pocket ledger between sessions.
//
// A ledger is read once when a command starts and written back once when it ends.
// Two backends are available:
//   - file: the plain text format of pocket.EncodeLedger (default)
//   - sqlite: a SQLite database, for users who want to query their records with SQL
package store

import (
	"context"
	"fmt"

	"github.com/etnz/pocket"
)

// Backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Backends lists the valid backend names.
var Backends = []string{BackendFile, BackendSQLite}

// Store loads and saves a ledger.
//
// Load returns an error wrapping fs.ErrNotExist when no ledger has been saved yet.
type Store interface {
	Load(ctx context.Context) (*pocket.Ledger, error)
	Save(ctx context.Context, l *pocket.Ledger) error
	Close() error
}

// Open returns the store for backend, persisting to path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown backend %q: must be one of %v", backend, Backends)
	}
}
