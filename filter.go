package backoffice

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
)

// Criteria is what a list page is filtered with: a free-text query and the
// value picked in each categorical selector.
//
// An empty Query matches everything. A selector missing from Selected, set to
// "" or set to its sentinel (Selector.All) does not restrict the result.
type Criteria struct {
	Query    string
	Selected map[string]string
}

// Selector is a categorical filter on one field of T, like the "scope"
// dropdown of the roles page.
type Selector[T any] struct {
	Name  string         // Name used in Criteria.Selected, e.g. "scope".
	All   string         // All is the sentinel disabling the selector, e.g. "All Scopes".
	Field func(T) string // Field returns the value compared to the selection.
}

// active returns the selected value and whether it restricts the result.
func (s Selector[T]) active(c Criteria) (string, bool) {
	v, ok := c.Selected[s.Name]
	if !ok || v == "" || v == s.All {
		return "", false
	}
	return v, true
}

// Filter is the searchable, filterable list of a page.
//
// Text returns the fields searched by the free-text query. They are joined
// with a space and compared case-insensitively, so a query may span two
// consecutive fields ("admin pakiza").
type Filter[T any] struct {
	Text      func(T) []string
	Selectors []Selector[T]
}

// matcher holds the criteria prepared once for a whole pass over the records.
type matcher[T any] struct {
	f        Filter[T]
	query    string
	caser    cases.Caser
	selected []selection[T]
	where    []func(T) bool
}

type selection[T any] struct {
	field func(T) string
	value string
}

func (f Filter[T]) matcher(c Criteria, where []func(T) bool) *matcher[T] {
	m := &matcher[T]{f: f, caser: cases.Fold(), where: where}
	m.query = m.caser.String(c.Query)
	for _, s := range f.Selectors {
		if v, ok := s.active(c); ok {
			m.selected = append(m.selected, selection[T]{field: s.Field, value: v})
		}
	}
	return m
}

func (m *matcher[T]) match(rec T) bool {
	for _, s := range m.selected {
		if s.field(rec) != s.value {
			return false
		}
	}
	for _, w := range m.where {
		if !w(rec) {
			return false
		}
	}
	if m.query == "" {
		return true
	}
	if m.f.Text == nil {
		return false
	}
	text := m.caser.String(strings.Join(m.f.Text(rec), " "))
	return strings.Contains(text, m.query)
}

// Match reports whether rec satisfies the query and every active selector.
func (f Filter[T]) Match(rec T, c Criteria) bool {
	return f.matcher(c, nil).match(rec)
}

// Records returns an iterator over the records matching c and every where
// predicate. It yields the index of the record in records, in the original
// order. The criteria are read when the iteration starts, not before.
func (f Filter[T]) Records(records []T, c Criteria, where ...func(T) bool) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		m := f.matcher(c, where)
		for i, rec := range records {
			if !m.match(rec) {
				continue
			}
			if !yield(i, rec) {
				return
			}
		}
	}
}

// Apply returns the records matching c, in their original order. The result
// is a new slice, never nil, and records is left untouched.
func (f Filter[T]) Apply(records []T, c Criteria, where ...func(T) bool) []T {
	res := make([]T, 0)
	for _, rec := range f.Records(records, c, where...) {
		res = append(res, rec)
	}
	return res
}
