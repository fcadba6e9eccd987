package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/renderer"
	"github.com/etnz/pocket/store"
	"github.com/google/subcommands"
)

type initCmd struct {
	balance string
	force   bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a ledger with a starting balance" }
func (*initCmd) Usage() string {
	return `pkt init [-balance <amount>] [-force]

  Creates an empty ledger starting with the money you have.
  An existing ledger is kept unless -force is given.

Usage Examples:
$ pkt init -balance 1000

`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.balance, "balance", "0", "The money you have, an integer")
	f.BoolVar(&c.force, "force", false, "Replace an existing ledger")
}

func (c *initCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := pocket.ParseStartingBalance(c.balance)
	if err != nil {
		fail(fmt.Sprintf("Error: %v\n", err))
		return subcommands.ExitUsageError
	}

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

	if !c.force {
		_, err := st.Load(ctx)
		if err == nil {
			fail(fmt.Sprintf("Error: a ledger already exists at %q, use -force to replace it\n", cfg.LedgerFile))
			return subcommands.ExitFailure
		}
		if !errors.Is(err, fs.ErrNotExist) {
			fail(fmt.Sprintf("Error: %v\n", err))
			return subcommands.ExitFailure
		}
	}

	if err := st.Save(ctx, pocket.NewLedger(start)); err != nil {
		fail(cannotSave)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Now you have %s dollars.\n", start)
	return subcommands.ExitSuccess
}

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an expense or income record" }
func (*addCmd) Usage() string {
	return `pkt add <category> <description> <amount>

  Adds a record to the ledger. The category must be in the category list
  (see "pkt categories"), the amount is an integer: negative for an expense,
  positive for an income.

Usage Examples:
$ pkt add meal breakfast -50
$ pkt add salary june +3000

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, h, err := openLedger(ctx)
	if err != nil {
		fail(fmt.Sprintf("Error: %v\n", err))
		return subcommands.ExitFailure
	}

	if err := h.ledger.Add(strings.Join(f.Args(), " "), pocket.DefaultTree()); err != nil {
		h.close()
		fail(addFailure(err))
		return subcommands.ExitFailure
	}
	if err := h.save(ctx); err != nil {
		fail(cannotSave)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type viewCmd struct {
	markdown bool
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display all records and the balance" }
func (*viewCmd) Usage() string {
	return `pkt view [-md]

  Displays every record with its line number, then the money you have now.

`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "Render a markdown report")
}

func (c *viewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, h, err := openLedger(ctx)
	if err != nil {
		fail(fmt.Sprintf("Error: %v\n", err))
		return subcommands.ExitFailure
	}
	defer h.close()

	v := h.ledger.View()
	defer fail(skippedRecords(v.Skipped))
	if c.markdown {
		printMarkdown(renderer.RecordsMarkdown(v))
		return subcommands.ExitSuccess
	}
	if err := renderer.Records(stdout, v); err != nil {
		fail(fmt.Sprintf("Error: %v\n", err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	line int
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a record" }
func (*deleteCmd) Usage() string {
	return `pkt delete [-line <n>] <category> <description> <amount>

  Deletes the record. When several lines hold the same record, -line tells
  which one to delete (see the line numbers of "pkt view").

Usage Examples:
$ pkt delete meal breakfast -50
$ pkt delete -line 3 meal breakfast -50

`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.line, "line", 0, "Line of the record to delete, when it appears several times")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, h, err := openLedger(ctx)
	if err != nil {
		fail(fmt.Sprintf("Error: %v\n", err))
		return subcommands.ExitFailure
	}

	raw := strings.Join(f.Args(), " ")
	pick := func(record string, lines []int) (string, error) {
		if c.line == 0 {
			return "", fmt.Errorf("%w: %q is on lines %v, choose one with -line", pocket.ErrInvalidLineInput, record, lines)
		}
		return strconv.Itoa(c.line), nil
	}
	if err := h.ledger.Delete(raw, pick); err != nil {
		h.close()
		if c.line == 0 && errors.Is(err, pocket.ErrInvalidLineInput) {
			fail(fmt.Sprintf("Error: %v\n", err))
		} else {
			fail(deleteFailure(err, strings.Join(f.Args(), " "), c.line))
		}
		return subcommands.ExitFailure
	}
	if err := h.save(ctx); err != nil {
		fail(cannotSave)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type findCmd struct {
	markdown bool
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "display the records of a category and its subcategories" }
func (*findCmd) Usage() string {
	return `pkt find [-md] <category>

  Displays the records whose category is <category> or any category below it,
  then their total.

Usage Examples:
$ pkt find food

`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "Render a markdown report")
}

func (c *findCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fail("Error: find expects exactly one category\n")
		return subcommands.ExitUsageError
	}
	category := f.Arg(0)

	_, h, err := openLedger(ctx)
	if err != nil {
		fail(fmt.Sprintf("Error: %v\n", err))
		return subcommands.ExitFailure
	}
	defer h.close()

	rep, err := h.ledger.Find(pocket.DefaultTree().Subcategories(category))
	defer fail(skippedRecords(rep.Skipped))
	if err != nil {
		fail(findFailure(err, category))
		return subcommands.ExitFailure
	}
	if c.markdown {
		printMarkdown(renderer.FoundMarkdown(category, rep))
		return subcommands.ExitSuccess
	}
	if err := renderer.Found(stdout, category, rep); err != nil {
		fail(fmt.Sprintf("Error: %v\n", err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
