package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/etnz/pocket/logger"
	"github.com/rs/zerolog"
)

// RunExtension attempts to find and execute an external pkt-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension receives the resolved configuration in its environment
// (PKT_LEDGER_FILE, PKT_BACKEND, PKT_LOG_LEVEL), global flags included.
func RunExtension(ctx context.Context, subcommand string, args []string) (bool, int) {
	externalCmdName := "pkt-" + subcommand

	ctx, cfg, err := setup(ctx)
	if err != nil {
		fail(fmt.Sprintf("Error: %v\n", err))
		return true, 1
	}
	log := logger.FromContext(ctx)

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Debug().Err(err).Str("extension", externalCmdName).Msg("external command not found in PATH")
		return false, 0
	}

	level := cfg.LogLevel
	if *verbose {
		level = zerolog.DebugLevel.String()
	}

	cmd := exec.CommandContext(ctx, lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+cfg.LedgerFile,
		EnvBackend+"="+cfg.Backend,
		EnvLogLevel+"="+level,
	)

	log.Debug().Str("extension", lp).Strs("args", args).Msg("running external command")
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fail(fmt.Sprintf("Error executing external command %q: %v\n", externalCmdName, err))
		return true, 1
	}
	return true, 0
}
