package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/backoffice/renderer"
	"github.com/google/subcommands"
)

type pagesCmd struct{}

func (*pagesCmd) Name() string     { return "pages" }
func (*pagesCmd) Synopsis() string { return "list the pages and their selectors" }
func (*pagesCmd) Usage() string {
	return `bo pages

  Lists the pages of the back office, the number of records in each, whether
  they accept date ranges and the selectors they can be filtered with.
  Each page is listed with its own command: bo <page> -help.
`
}

func (*pagesCmd) SetFlags(f *flag.FlagSet) {}

func (*pagesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cat, err := Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading pages: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderPages(renderer.NewPages(cat.Pages())))
	return subcommands.ExitSuccess
}
