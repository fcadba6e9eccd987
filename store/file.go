package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/logger"
)

// FileStore keeps the ledger in a plain text file.
type FileStore struct {
	path string
}

// NewFileStore returns a store for the file at path.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Load reads the whole ledger file.
func (s *FileStore) Load(ctx context.Context) (*pocket.Ledger, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.path, err)
	}
	defer f.Close()

	ledger, err := pocket.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.path, err)
	}
	log := logger.FromContext(ctx)
	log.Debug().Str("file", s.path).Int("entries", ledger.Len()).Msg("ledger loaded")
	return ledger, nil
}

// Save overwrites the ledger file.
//
// The ledger is written to a temporary file first, then renamed over the previous one.
func (s *FileStore) Save(ctx context.Context, l *pocket.Ledger) error {
	var buf bytes.Buffer
	if err := pocket.EncodeLedger(&buf, l); err != nil {
		return fmt.Errorf("%w: %w", pocket.ErrPersist, err)
	}
	if err := writeFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %q: %w", pocket.ErrPersist, s.path, err)
	}
	log := logger.FromContext(ctx)
	log.Debug().Str("file", s.path).Int("entries", l.Len()).Msg("ledger saved")
	return nil
}

// Close does nothing, the file is only open during Load and Save.
func (s *FileStore) Close() error { return nil }

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
