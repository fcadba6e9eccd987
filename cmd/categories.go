package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/pocket"
	"github.com/etnz/pocket/renderer"
	"github.com/google/subcommands"
)

type categoriesCmd struct {
	markdown bool
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "display the category list" }
func (*categoriesCmd) Usage() string {
	return `pkt categories [-md]

  Displays the categories a record can use, subcategories indented below
  their parent.

`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "Render a markdown report")
}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tree := pocket.DefaultTree()
	if c.markdown {
		printMarkdown(renderer.CategoriesMarkdown(tree))
		return subcommands.ExitSuccess
	}
	if err := tree.Print(stdout); err != nil {
		fail(fmt.Sprintf("Error: %v\n", err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
