package renderer

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/backoffice"
)

// Placeholder is the first cell of the only row of an empty table.
const Placeholder = "No data available"

// Table is a list page as displayed: a title, a sentence describing the
// criteria, and the matching rows.
type Table struct {
	Title    string
	Criteria string
	Columns  []string
	Rows     [][]string
}

// NewTable lists l with q.
func NewTable(l backoffice.Lister, q backoffice.Query) *Table {
	rows := l.Rows(q)
	return &Table{
		Title:    l.Title(),
		Criteria: Describe(l, q, len(rows)),
		Columns:  l.Columns(),
		Rows:     rows,
	}
}

// Body returns the rows to display. An empty table has a single placeholder
// row, other cells left blank.
func (t *Table) Body() [][]string {
	if len(t.Rows) > 0 {
		return t.Rows
	}
	row := make([]string, max(len(t.Columns), 1))
	row[0] = Placeholder
	return [][]string{row}
}

// Limit keeps the first head rows, then the last tail rows. Zero means no
// limit. The criteria line then tells how many rows are shown.
func (t *Table) Limit(head, tail int) {
	n := len(t.Rows)
	if head > 0 && head < len(t.Rows) {
		t.Rows = t.Rows[:head]
	}
	if tail > 0 && tail < len(t.Rows) {
		t.Rows = t.Rows[len(t.Rows)-tail:]
	}
	if len(t.Rows) < n {
		t.Criteria = fmt.Sprintf("%s %d shown.", t.Criteria, len(t.Rows))
	}
}

// Describe returns a sentence like
//
//	Showing 1 of 5 records matching "admin" where scope is "Pakiza Accounts".
//
// shown is the number of records matching q.
func Describe(l backoffice.Lister, q backoffice.Query, shown int) string {
	var conds []string
	for _, s := range l.Selectors() {
		if v := q.Selected[s.Name]; v != "" && v != s.All {
			conds = append(conds, fmt.Sprintf("%s is %q", s.Name, v))
		}
	}
	// selectors unknown to the page restrict nothing, say so.
	var unknown []string
	for name := range q.Selected {
		if !slices.ContainsFunc(l.Selectors(), func(s backoffice.SelectorInfo) bool { return s.Name == name }) {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	for _, name := range unknown {
		conds = append(conds, name+" is ignored")
	}
	if !q.Range.IsZero() {
		conds = append(conds, "dated "+q.Range.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Showing %d of %d records", shown, l.Len())
	if q.Query != "" {
		fmt.Fprintf(&b, " matching %q", q.Query)
	}
	if len(conds) > 0 {
		b.WriteString(" where ")
		b.WriteString(strings.Join(conds, ", "))
	}
	b.WriteString(".")
	return b.String()
}

// RenderSummary renders the reconciliation totals of the bank lines
// matching q.
func RenderSummary(c *backoffice.Catalog, q backoffice.Query) string {
	totals := c.Reconciliation(q)
	lines := 0
	rows := make([][]string, 0, len(totals))
	for _, st := range totals {
		lines += st.Count
		rows = append(rows, []string{string(st.Status), st.Currency, strconv.Itoa(st.Count), st.Total.String()})
	}
	return RenderTable(&Table{
		Title:    "Reconciliation Summary",
		Criteria: Describe(c.Transactions, q, lines),
		Columns:  []string{"Status", "Currency", "Lines", "Total"},
		Rows:     rows,
	})
}

// Pages is the index of the list pages.
type Pages struct {
	Pages []PageInfo
}

// PageInfo describes a list page and how to filter it.
type PageInfo struct {
	Name      string
	Title     string
	Records   int
	Dated     bool
	Selectors []backoffice.SelectorInfo
}

// NewPages describes pages.
func NewPages(pages []backoffice.Lister) *Pages {
	res := &Pages{}
	for _, l := range pages {
		res.Pages = append(res.Pages, PageInfo{
			Name:      l.Name(),
			Title:     l.Title(),
			Records:   l.Len(),
			Dated:     l.Dated(),
			Selectors: l.Selectors(),
		})
	}
	return res
}
