package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, and never overrides the environment.
	_ = godotenv.Load()

	cmd.Completion(pocket.DefaultTree()).Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	ctx := context.Background()
	if flag.NArg() == 0 {
		os.Exit(int(cmd.RunShell(ctx)))
	}

	// Unknown commands may be pkt-<command> extensions.
	if name := flag.Arg(0); !isBuiltin(commander, name) {
		if found, code := cmd.RunExtension(ctx, name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(ctx)))
}

func isBuiltin(commander *subcommands.Commander, name string) bool {
	builtin := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			builtin = true
		}
	})
	return builtin
}
