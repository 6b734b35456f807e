package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/backoffice"
	"github.com/etnz/backoffice/renderer"
	"github.com/google/subcommands"
)

// listCmd lists the records of one page.
type listCmd struct {
	page     backoffice.Lister
	query    string
	selected map[string]*string
	dates    rangeFlags
	head     int
	tail     int
	json     bool
}

func newListCmd(l backoffice.Lister) *listCmd {
	return &listCmd{page: l, selected: make(map[string]*string)}
}

func (c *listCmd) Name() string { return c.page.Name() }
func (c *listCmd) Synopsis() string {
	return "list " + strings.ToLower(c.page.Title())
}
func (c *listCmd) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "bo %s [-q <text>]", c.page.Name())
	for _, s := range c.page.Selectors() {
		fmt.Fprintf(&b, " [-%s <%s>]", s.Name, s.Name)
	}
	if c.page.Dated() {
		b.WriteString(" [-p <period> | -s <start>] [-d <end>]")
	}
	b.WriteString(" [-head <n>] [-tail <n>] [-json]\n\n")
	fmt.Fprintf(&b, "  Lists the %s records matching the text query and the selectors.\n", c.page.Title())
	b.WriteString("  The query is case-insensitive. A selector set to \"\" or to its \"All\" value is ignored.\n\n")
	return b.String()
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Text searched in the records, case-insensitive.")
	for _, s := range c.page.Selectors() {
		c.selected[s.Name] = f.String(s.Name, "", fmt.Sprintf("Only list records with this %s (%q lists all).", s.Name, s.All))
	}
	if c.page.Dated() {
		c.dates.SetFlags(f)
	}
	f.IntVar(&c.head, "head", 0, "Only list the first n records.")
	f.IntVar(&c.tail, "tail", 0, "Only list the last n records.")
	f.BoolVar(&c.json, "json", false, "Print the records as JSON lines instead of a table.")
}

// Query returns the query set by the flags.
func (c *listCmd) Query() (backoffice.Query, error) {
	q := backoffice.Query{Criteria: backoffice.Criteria{Query: c.query}}
	for name, v := range c.selected {
		if *v == "" {
			continue
		}
		if q.Selected == nil {
			q.Selected = make(map[string]string)
		}
		q.Selected[name] = *v
	}
	var err error
	q.Range, err = c.dates.Range()
	return q, err
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q, use -q to search\n", f.Args())
		return subcommands.ExitUsageError
	}
	q, err := c.Query()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	cat, err := Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading pages: %v\n", err)
		return subcommands.ExitFailure
	}
	l, err := cat.Page(c.page.Name())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := l.Validate(q); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.json {
		var buf bytes.Buffer
		if err := l.Encode(&buf, q); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if buf.Len() == 0 {
			return subcommands.ExitSuccess
		}
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		for _, line := range limit(lines, c.head, c.tail) {
			fmt.Println(line)
		}
		return subcommands.ExitSuccess
	}

	t := renderer.NewTable(l, q)
	t.Limit(c.head, c.tail)
	printMarkdown(renderer.RenderTable(t))
	return subcommands.ExitSuccess
}
