package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/etnz/pocket/logger"
	"github.com/etnz/pocket/store"
)

// Environment variables read by LoadConfig. Global flags override them.
const (
	EnvLedgerFile = "PKT_LEDGER_FILE"
	EnvBackend    = "PKT_BACKEND"
	EnvLogLevel   = "PKT_LOG_LEVEL"
	EnvNoColor    = "PKT_NO_COLOR"
)

// Ledger paths used when none is configured, per backend.
const (
	DefaultLedgerFile   = "records.txt"
	DefaultDatabaseFile = "records.db"
)

// defaultLedgerFile returns the ledger path for backend when none is configured.
func defaultLedgerFile(backend string) string {
	if backend == store.BackendSQLite {
		return DefaultDatabaseFile
	}
	return DefaultLedgerFile
}

// Config is the runtime configuration of pkt.
type Config struct {
	LedgerFile string
	Backend    string
	LogLevel   string
	NoColor    bool
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() *Config {
	backend := getEnv(EnvBackend, store.BackendFile)
	return &Config{
		LedgerFile: getEnv(EnvLedgerFile, defaultLedgerFile(backend)),
		Backend:    backend,
		LogLevel:   getEnv(EnvLogLevel, logger.DefaultLevel.String()),
		NoColor:    getEnvBool(EnvNoColor, false),
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.LedgerFile == "" {
		errs = append(errs, errors.New("ledger file cannot be empty"))
	}
	if !slices.Contains(store.Backends, c.Backend) {
		errs = append(errs, fmt.Errorf("invalid backend '%s': must be one of %v", c.Backend, store.Backends))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level '%s': %w", c.LogLevel, err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("configuration validation failed:\n%w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
