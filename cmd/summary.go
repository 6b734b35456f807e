package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/backoffice"
	"github.com/etnz/backoffice/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	query   string
	account string
	dates   rangeFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the bank reconciliation totals" }
func (*summaryCmd) Usage() string {
	return `bo summary [-q <text>] [-account <account>] [-p <period> | -s <start>] [-d <end>]

  Displays the number and the total amount of the bank lines per
  reconciliation status and currency. The flags filter the bank lines like
  the bank page does.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Text searched in the bank lines, case-insensitive.")
	f.StringVar(&c.account, "account", "", "Only count the lines of this bank account.")
	c.dates.SetFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rng, err := c.dates.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	q := backoffice.Query{Criteria: backoffice.Criteria{Query: c.query}, Range: rng}
	if c.account != "" {
		q.Selected = map[string]string{"account": c.account}
	}

	cat, err := Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading pages: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := cat.Transactions.Validate(q); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.RenderSummary(cat, q))
	return subcommands.ExitSuccess
}
