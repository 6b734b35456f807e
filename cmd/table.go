package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/backoffice"
	"github.com/etnz/backoffice/renderer"
	"github.com/google/subcommands"
)

// whereFlag collects repeated -where path=value flags.
type whereFlag map[string]string

func (w whereFlag) String() string {
	var res []string
	for k, v := range w {
		res = append(res, k+"="+v)
	}
	slices.Sort(res)
	return strings.Join(res, ",")
}

func (w whereFlag) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("want path=value, got %q", s)
	}
	w[strings.TrimSpace(k)] = v
	return nil
}

type tableCmd struct {
	file    string
	search  string
	columns string
	where   whereFlag
	query   string
	head    int
	tail    int
	json    bool
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "filter the records of any JSONL file" }
func (*tableCmd) Usage() string {
	return `bo table -f <file.jsonl> [-q <text>] [-search <paths>] [-where <path>=<value>]... [-columns <paths>] [-json]

  Lists the records of a JSONL file, one JSON object per line, with the same
  filter as the pages: the text query is searched case-insensitively in the
  -search fields (every field by default), and every -where field must be
  equal to its value. Fields are JSON paths, a bare name like "city" is short
  for $["city"].

Usage Examples:
# Customers of Dhaka whose name or email contains "foods".
$ bo table -f customers.jsonl -search name,email -where city=Dhaka -q foods
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	c.where = make(whereFlag)
	f.StringVar(&c.file, "f", "", "JSONL file to read, - for stdin.")
	f.StringVar(&c.search, "search", "", "Comma separated fields searched by -q, all fields by default.")
	f.StringVar(&c.columns, "columns", "", "Comma separated fields to display, all fields by default.")
	f.Var(c.where, "where", "Only list records whose field is this value, as path=value. Can be repeated.")
	f.StringVar(&c.query, "q", "", "Text searched in the records, case-insensitive.")
	f.IntVar(&c.head, "head", 0, "Only list the first n records.")
	f.IntVar(&c.tail, "tail", 0, "Only list the last n records.")
	f.BoolVar(&c.json, "json", false, "Print the records as JSON lines instead of a table.")
}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}
	search, err := backoffice.ParsePaths(c.search)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in -search: %v\n", err)
		return subcommands.ExitUsageError
	}
	columns, err := backoffice.ParsePaths(c.columns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in -columns: %v\n", err)
		return subcommands.ExitUsageError
	}
	var selectors []backoffice.Path
	for _, k := range slices.Sorted(maps.Keys(c.where)) {
		p, err := backoffice.ParsePath(k)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in -where: %v\n", err)
			return subcommands.ExitUsageError
		}
		selectors = append(selectors, p)
	}

	records, name, err := c.decode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	page := backoffice.NewRecordPage(name, records, backoffice.RecordFilter(search, selectors...), columns...)
	q := backoffice.Query{Criteria: backoffice.Criteria{Query: c.query, Selected: c.where}}

	if c.json {
		for _, r := range limit(page.List(q), c.head, c.tail) {
			b, err := r.MarshalJSON()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			fmt.Println(string(b))
		}
		return subcommands.ExitSuccess
	}
	t := renderer.NewTable(page, q)
	t.Limit(c.head, c.tail)
	printMarkdown(renderer.RenderTable(t))
	return subcommands.ExitSuccess
}

// decode reads the records of the -f file, and returns the page name.
func (c *tableCmd) decode() ([]backoffice.Record, string, error) {
	var r io.Reader = os.Stdin
	name := "stdin"
	if c.file != "-" {
		f, err := os.Open(c.file)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		r = f
		name = strings.TrimSuffix(filepath.Base(c.file), filepath.Ext(c.file))
	}
	records, err := backoffice.DecodeRecords(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %q: %w", c.file, err)
	}
	return records, name, nil
}
