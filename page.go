package backoffice

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/etnz/backoffice/date"
)

// Query is what a list page is asked for: the filter criteria and, for dated
// pages only, a range of days.
type Query struct {
	Criteria
	Range date.Range
}

// Column is a column of a list page.
type Column[T any] struct {
	Title string
	Value func(T) string
}

// SelectorInfo describes a selector of a page: its name, its sentinel and
// the values found in the page records, in first-seen order.
type SelectorInfo struct {
	Name   string
	All    string
	Values []string
}

// Lister is a list page whatever its record type.
type Lister interface {
	Name() string
	Title() string
	// Len is the number of records of the page, whatever the query.
	Len() int
	Columns() []string
	Selectors() []SelectorInfo
	// Dated reports whether the page accepts a Query.Range.
	Dated() bool
	// Validate checks q against the page selectors and records.
	Validate(q Query) error
	// Rows returns the matching records as table cells, one per column.
	Rows(q Query) [][]string
	// Encode writes the matching records as JSON lines.
	Encode(w io.Writer, q Query) error
}

// Page is a list page: a seed collection, its filter and its columns.
// A Page never modifies its records.
type Page[T any] struct {
	name    string
	title   string
	records []T
	filter  Filter[T]
	columns []Column[T]
	on      func(T) date.Date
}

var _ Lister = (*Page[Role])(nil)

// NewPage returns the page name listing records with filter f.
func NewPage[T any](name, title string, records []T, f Filter[T], columns ...Column[T]) *Page[T] {
	return &Page[T]{
		name:    name,
		title:   title,
		records: records,
		filter:  f,
		columns: columns,
	}
}

// Dates makes the page accept date ranges, on returns the date of a record.
func (p *Page[T]) Dates(on func(T) date.Date) *Page[T] {
	p.on = on
	return p
}

func (p *Page[T]) Name() string  { return p.name }
func (p *Page[T]) Title() string { return p.title }
func (p *Page[T]) Dated() bool   { return p.on != nil }
func (p *Page[T]) Len() int      { return len(p.records) }

// Filter returns the page filter.
func (p *Page[T]) Filter() Filter[T] { return p.filter }

// Records returns a copy of all the page records.
func (p *Page[T]) Records() []T { return slices.Clone(p.records) }

func (p *Page[T]) Columns() []string {
	titles := make([]string, 0, len(p.columns))
	for _, c := range p.columns {
		titles = append(titles, c.Title)
	}
	return titles
}

func (p *Page[T]) Selectors() []SelectorInfo {
	infos := make([]SelectorInfo, 0, len(p.filter.Selectors))
	for _, s := range p.filter.Selectors {
		info := SelectorInfo{Name: s.Name, All: s.All, Values: make([]string, 0)}
		for _, rec := range p.records {
			if v := s.Field(rec); !slices.Contains(info.Values, v) {
				info.Values = append(info.Values, v)
			}
		}
		infos = append(infos, info)
	}
	return infos
}

func (p *Page[T]) Validate(q Query) error {
	var errs []error
	if !q.Range.IsZero() && !p.Dated() {
		errs = append(errs, fmt.Errorf("page %q has no dates, it cannot be restricted to %s", p.name, q.Range))
	}
	infos := p.Selectors()
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	// map order is random, sort to report errors in a stable order.
	selected := make([]string, 0, len(q.Selected))
	for name := range q.Selected {
		selected = append(selected, name)
	}
	slices.Sort(selected)
	for _, name := range selected {
		value := q.Selected[name]
		i := slices.Index(names, name)
		if i < 0 {
			errs = append(errs, fmt.Errorf("page %q has no selector %q, want one of [%s]", p.name, name, strings.Join(names, ", ")))
			continue
		}
		info := infos[i]
		if value == "" || value == info.All || slices.Contains(info.Values, value) {
			continue
		}
		errs = append(errs, fmt.Errorf("no %s is %q on page %q, want %q or one of [%s]", name, value, p.name, info.All, strings.Join(info.Values, ", ")))
	}
	return errors.Join(errs...)
}

// List returns the records matching q in their seed order.
func (p *Page[T]) List(q Query) []T {
	return p.filter.Apply(p.records, q.Criteria, p.where(q)...)
}

// where returns the extra predicates implied by q.
func (p *Page[T]) where(q Query) []func(T) bool {
	if p.on == nil || q.Range.IsZero() {
		return nil
	}
	return []func(T) bool{func(rec T) bool { return q.Range.Contains(p.on(rec)) }}
}

func (p *Page[T]) Rows(q Query) [][]string {
	rows := make([][]string, 0)
	for _, rec := range p.filter.Records(p.records, q.Criteria, p.where(q)...) {
		row := make([]string, 0, len(p.columns))
		for _, c := range p.columns {
			row = append(row, c.Value(rec))
		}
		rows = append(rows, row)
	}
	return rows
}

func (p *Page[T]) Encode(w io.Writer, q Query) error {
	enc := json.NewEncoder(w)
	for _, rec := range p.filter.Records(p.records, q.Criteria, p.where(q)...) {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode %s record: %w", p.name, err)
		}
	}
	return nil
}
