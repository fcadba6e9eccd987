package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore keeps the ledger in a SQLite database.
//
// The starting balance is the single row of table ledger, records are the rows of
// table entries ordered by line. Each record is stored as text, along with its fields
// when it parses. Amounts are stored as text to keep their spelling.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (and migrates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	// m is not closed: closing it would close db too.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Load reads the ledger from the database.
func (s *SQLiteStore) Load(ctx context.Context) (*pocket.Ledger, error) {
	var startText string
	err := s.db.QueryRowContext(ctx, `SELECT starting_balance FROM ledger WHERE id = 1`).Scan(&startText)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no ledger in database %q: %w", s.path, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("read starting balance: %w", err)
	}
	start, err := pocket.ParseAmount(startText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pocket.ErrInvalidStartingBalance, err)
	}
	ledger := pocket.NewLedger(start)

	rows, err := s.db.QueryContext(ctx, `SELECT record FROM entries ORDER BY line`)
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		ledger.Append(record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("database", s.path).Int("entries", ledger.Len()).Msg("ledger loaded")
	return ledger, nil
}

// Save replaces the ledger in the database in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, l *pocket.Ledger) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", pocket.ErrPersist, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO ledger (id, starting_balance) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET starting_balance = excluded.starting_balance`,
		l.Start().String()); err != nil {
		return fmt.Errorf("%w: write starting balance: %w", pocket.ErrPersist, err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("%w: clear entries: %w", pocket.ErrPersist, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (line, record, category, item, amount) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare insert: %w", pocket.ErrPersist, err)
	}
	defer stmt.Close()

	for n, record := range l.Records() {
		var category, item, amount sql.NullString
		if e, perr := pocket.ParseEntry(record); perr == nil {
			category = sql.NullString{String: e.Category, Valid: true}
			item = sql.NullString{String: e.Item, Valid: true}
			amount = sql.NullString{String: e.Amount.String(), Valid: true}
		}
		if _, err = stmt.ExecContext(ctx, n, record, category, item, amount); err != nil {
			return fmt.Errorf("%w: write entry %d: %w", pocket.ErrPersist, n, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", pocket.ErrPersist, err)
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("database", s.path).Int("entries", l.Len()).Msg("ledger saved")
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
