package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/docs"
	"github.com/etnz/pocket/logger"
	"github.com/etnz/pocket/renderer"
	"github.com/etnz/pocket/store"
	"github.com/fatih/color"
	"github.com/google/subcommands"
)

const commandPrompt = "\nWhat do you want to do (add / view / delete / view categories / find / exit)? "

// Session is an interactive command loop over a ledger.
//
// The ledger lives in memory for the whole session: it is loaded by Start and
// handed back by Ledger once Run returns.
type Session struct {
	tree    *pocket.Tree
	ledger  *pocket.Ledger
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	failure *color.Color
}

// NewSession returns a session reading commands from in.
func NewSession(tree *pocket.Tree, in io.Reader, out, errOut io.Writer) *Session {
	return &Session{
		tree:    tree,
		in:      bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
		failure: failure,
	}
}

// Ledger returns the ledger of the session.
func (s *Session) Ledger() *pocket.Ledger { return s.ledger }

// Start loads the ledger from st.
//
// When there is no ledger yet, the user is asked for the money they have. Any other
// load error is returned: the session cannot start without a starting balance.
func (s *Session) Start(ctx context.Context, st store.Store) error {
	l, err := st.Load(ctx)
	if err == nil {
		s.ledger = l
		fmt.Fprintln(s.out, "Welcome back!")
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	log := logger.FromContext(ctx)
	log.Debug().Err(err).Msg("no ledger yet, asking for the starting balance")

	answer, _ := s.ask("How much money do you have? ")
	start, err := pocket.ParseStartingBalance(answer)
	if err != nil {
		s.fail(invalidStartingBalance)
	}
	s.ledger = pocket.NewLedger(start)
	return nil
}

// Run reads and executes commands until "exit" or the end of the input.
func (s *Session) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	for {
		command, err := s.ask(commandPrompt)
		if err != nil {
			log.Debug().Err(err).Msg("end of input")
			command = "exit"
		}
		command = strings.TrimSpace(command)
		log.Debug().Str("command", command).Msg("dispatch")

		switch command {
		case "add":
			s.add()
		case "view":
			s.view()
		case "delete":
			s.delete()
		case "view categories":
			s.categories()
		case "find":
			s.find()
		case "help":
			s.help()
		case "exit":
			fmt.Fprintln(s.out, "Bye!")
			return
		default:
			s.fail(invalidCommand)
		}
	}
}

func (s *Session) add() {
	raw, err := s.ask("Add an expense or income record with description and amount: ")
	if err != nil {
		return
	}
	if err := s.ledger.Add(raw, s.tree); err != nil {
		s.fail(addFailure(err))
	}
}

func (s *Session) view() {
	v := s.ledger.View()
	if err := renderer.Records(s.out, v); err != nil {
		s.fail(err.Error() + "\n")
	}
	s.fail(skippedRecords(v.Skipped))
}

func (s *Session) delete() {
	raw, err := s.ask("Which record do you want to delete? ")
	if err != nil {
		return
	}

	var line int
	pick := func(record string, lines []int) (string, error) {
		answer, err := s.ask(fmt.Sprintf("Which line of the record \"%s\" is going to be deleted? ", record))
		line, _ = strconv.Atoi(strings.TrimSpace(answer))
		return answer, err
	}
	if err := s.ledger.Delete(raw, pick); err != nil {
		s.fail(deleteFailure(err, strings.Join(strings.Fields(raw), " "), line))
	}
}

func (s *Session) categories() {
	if err := s.tree.Print(s.out); err != nil {
		s.fail(err.Error() + "\n")
	}
}

func (s *Session) find() {
	category, err := s.ask("Which category do you want to find? ")
	if err != nil {
		return
	}
	category = strings.TrimSpace(category)

	rep, err := s.ledger.Find(s.tree.Subcategories(category))
	defer s.fail(skippedRecords(rep.Skipped))
	if err != nil {
		s.fail(findFailure(err, category))
		return
	}
	if err := renderer.Found(s.out, category, rep); err != nil {
		s.fail(err.Error() + "\n")
	}
}

func (s *Session) help() {
	doc, err := docs.GetTopic("shell")
	if err != nil {
		s.fail(err.Error() + "\n")
		return
	}
	fmt.Fprint(s.out, doc)
}

// ask prints prompt and reads one line, without its line terminator.
//
// A last line without terminator is returned. io.EOF is returned only when nothing
// was left to read.
func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) fail(msg string) {
	if msg == "" {
		return
	}
	s.failure.Fprint(s.errOut, msg)
}

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage the ledger interactively (default)" }
func (*shellCmd) Usage() string {
	return `pkt shell

  Starts the interactive command loop. This is what pkt does when no command is given.

  On the first run, pkt asks how much money you have. Then it repeatedly asks
  what to do: add, view, delete, view categories, find, help or exit.
  The ledger is saved when you exit (or at the end of the input).

`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return RunShell(ctx)
}

// RunShell runs an interactive session on the standard streams.
func RunShell(ctx context.Context) subcommands.ExitStatus {
	ctx, cfg, err := setup(ctx)
	if err != nil {
		fail(fmt.Sprintf("Error: %v\n", err))
		return subcommands.ExitFailure
	}
	st, err := store.Open(cfg.Backend, cfg.LedgerFile)
	if err != nil {
		fail(fmt.Sprintf("Error: %v\n", err))
		return subcommands.ExitFailure
	}
	defer st.Close()

	s := NewSession(pocket.DefaultTree(), stdin, stdout, stderr)
	if err := s.Start(ctx, st); err != nil {
		fail(fmt.Sprintf("Error: could not load ledger: %v\n", err))
		return subcommands.ExitFailure
	}
	s.Run(ctx)

	if err := st.Save(ctx, s.Ledger()); err != nil {
		log := logger.FromContext(ctx)
		log.Error().Err(err).Msg("ledger not saved")
		fail(cannotSave)
	}
	return subcommands.ExitSuccess
}
