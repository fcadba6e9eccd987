// Package cmd implements the pkt command line: one-shot subcommands to manage the
// ledger and the interactive shell.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/logger"
	"github.com/etnz/pocket/store"
	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&shellCmd{}, "")

	c.Register(&initCmd{}, "records")
	c.Register(&addCmd{}, "records")
	c.Register(&viewCmd{}, "records")
	c.Register(&deleteCmd{}, "records")
	c.Register(&findCmd{}, "records")

	c.Register(&categoriesCmd{}, "categories")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger (default $"+EnvLedgerFile+", or "+DefaultLedgerFile+" and "+DefaultDatabaseFile+" for sqlite)")
var backend = flag.String("backend", "", "Storage backend, file or sqlite (default $"+EnvBackend+" or file)")
var verbose = flag.Bool("v", false, "Log debug events on stderr")

// standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var failure = color.New(color.FgRed)

// currentConfig returns the environment configuration overridden by the global flags.
func currentConfig() *Config {
	cfg := LoadConfig()
	if *backend != "" {
		cfg.Backend = *backend
		if os.Getenv(EnvLedgerFile) == "" {
			cfg.LedgerFile = defaultLedgerFile(cfg.Backend)
		}
	}
	if *ledgerFile != "" {
		cfg.LedgerFile = *ledgerFile
	}
	return cfg
}

// setup validates the configuration and returns a context carrying the logger.
func setup(ctx context.Context) (context.Context, *Config, error) {
	cfg := currentConfig()
	if err := cfg.Validate(); err != nil {
		return ctx, nil, err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	level, _ := logger.ParseLevel(cfg.LogLevel) // checked by Validate
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewWithWriter(zerolog.ConsoleWriter{Out: stderr, NoColor: cfg.NoColor}, level)
	log.Debug().Str("ledger", cfg.LedgerFile).Str("backend", cfg.Backend).Msg("configuration loaded")
	return logger.WithContext(ctx, log), cfg, nil
}

// handle is what one-shot commands share: the store and the ledger it holds.
type handle struct {
	cfg    *Config
	store  store.Store
	ledger *pocket.Ledger
}

// openLedger prepares a one-shot command: configuration, logger, store and ledger.
//
// A missing ledger is an error: "pkt init" or "pkt shell" create it.
func openLedger(ctx context.Context) (context.Context, *handle, error) {
	ctx, cfg, err := setup(ctx)
	if err != nil {
		return ctx, nil, err
	}
	st, err := store.Open(cfg.Backend, cfg.LedgerFile)
	if err != nil {
		return ctx, nil, err
	}
	l, err := st.Load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		st.Close()
		return ctx, nil, fmt.Errorf("no ledger at %q, run 'pkt init' first: %w", cfg.LedgerFile, err)
	}
	if err != nil {
		st.Close()
		return ctx, nil, err
	}
	return ctx, &handle{cfg: cfg, store: st, ledger: l}, nil
}

// save writes the ledger back and closes the store.
func (s *handle) save(ctx context.Context) error {
	defer s.store.Close()
	return s.store.Save(ctx, s.ledger)
}

// close releases the store without saving.
func (s *handle) close() { s.store.Close() }

// fail prints a user facing failure message on stderr.
func fail(msg string) {
	if msg == "" {
		return
	}
	failure.Fprint(stderr, msg)
}
