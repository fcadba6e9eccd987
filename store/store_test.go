package store_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/store"
	"github.com/google/go-cmp/cmp"
)

func newLedger(t *testing.T) *pocket.Ledger {
	t.Helper()
	l := pocket.NewLedger(pocket.MustParseAmount("1000"))
	for _, raw := range []string{"meal breakfast -50", "meal breakfast -50", "bonus gift +100"} {
		if err := l.Add(raw, pocket.DefaultTree()); err != nil {
			t.Fatalf("Add(%q) returned an unexpected error: %v", raw, err)
		}
	}
	return l
}

func TestStores(t *testing.T) {
	for _, backend := range store.Backends {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "data", "records")

			s, err := store.Open(backend, path)
			if err != nil {
				t.Fatalf("Open(%q) returned an unexpected error: %v", backend, err)
			}
			defer s.Close()

			// 1. Nothing saved yet.
			if _, err := s.Load(ctx); !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("Load() on an empty store error = %v, want fs.ErrNotExist", err)
			}

			// 2. Save then load.
			want := newLedger(t)
			if err := s.Save(ctx, want); err != nil {
				t.Fatalf("Save() returned an unexpected error: %v", err)
			}
			got, err := s.Load(ctx)
			if err != nil {
				t.Fatalf("Load() returned an unexpected error: %v", err)
			}
			if diff := cmp.Diff(want.Serialize(), got.Serialize()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}

			// 3. Save overwrites the previous ledger.
			if err := got.Delete("bonus gift +100", nil); err != nil {
				t.Fatalf("Delete() returned an unexpected error: %v", err)
			}
			if err := s.Save(ctx, got); err != nil {
				t.Fatalf("Save() returned an unexpected error: %v", err)
			}
			again, err := s.Load(ctx)
			if err != nil {
				t.Fatalf("Load() returned an unexpected error: %v", err)
			}
			wantLines := []string{"1000", "meal breakfast -50", "meal breakfast -50"}
			if diff := cmp.Diff(wantLines, again.Serialize()); diff != "" {
				t.Errorf("overwrite mismatch (-want +got):\n%s", diff)
			}

			// 4. Records are kept as they are, even when they do not parse.
			again.Append("meal lunch 1.5", "bus  ticket   -10")
			if err := s.Save(ctx, again); err != nil {
				t.Fatalf("Save() returned an unexpected error: %v", err)
			}
			last, err := s.Load(ctx)
			if err != nil {
				t.Fatalf("Load() returned an unexpected error: %v", err)
			}
			wantLines = append(wantLines, "meal lunch 1.5", "bus  ticket   -10")
			if diff := cmp.Diff(wantLines, last.Serialize()); diff != "" {
				t.Errorf("verbatim round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFileStore_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	s := store.NewFileStore(path)

	if err := s.Save(context.Background(), newLedger(t)); err != nil {
		t.Fatalf("Save() returned an unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read ledger file: %v", err)
	}
	want := "1000\nmeal breakfast -50\nmeal breakfast -50\nbonus gift +100"
	if string(got) != want {
		t.Errorf("ledger file content mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	if err := os.WriteFile(path, []byte("a thousand\nmeal breakfast -50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := store.NewFileStore(path).Load(context.Background())
	if !errors.Is(err, pocket.ErrInvalidStartingBalance) {
		t.Errorf("Load() error = %v, want %v", err, pocket.ErrInvalidStartingBalance)
	}
}

func TestFileStore_SaveFailure(t *testing.T) {
	// the parent "directory" is a regular file.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	s := store.NewFileStore(filepath.Join(blocker, "records.txt"))
	err := s.Save(context.Background(), newLedger(t))
	if !errors.Is(err, pocket.ErrPersist) {
		t.Errorf("Save() error = %v, want %v", err, pocket.ErrPersist)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	if _, err := store.Open("csv", "records.csv"); err == nil {
		t.Error("Open(\"csv\") expected an error, got nil")
	}
}
