package backoffice

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Record is a row of an arbitrary collection: an identity and named fields
// as decoded from JSON (string, json.Number, bool, nil, or nested values).
type Record struct {
	ID     int
	Fields map[string]any
}

// Path addresses a field of a Record with JSONPath. A bare name like
// "email" is short for $["email"].
type Path struct {
	name string
	eval func(context.Context, any) (any, error)
}

// ParsePath compiles s.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Path{}, fmt.Errorf("empty field path")
	}
	expr := s
	if !strings.HasPrefix(s, "$") {
		expr = "$[" + strconv.Quote(s) + "]"
	}
	eval, err := jsonpath.New(expr)
	if err != nil {
		return Path{}, fmt.Errorf("invalid field path %q: %w", s, err)
	}
	return Path{name: s, eval: eval}, nil
}

// ParsePaths compiles a comma separated list of paths, like "name,email".
func ParsePaths(list string) ([]Path, error) {
	var paths []Path
	for _, s := range strings.Split(list, ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		p, err := ParsePath(s)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// String returns the path as written by the user.
func (p Path) String() string { return p.name }

// Value returns the value at p in r, nil if there is none.
func (p Path) Value(r Record) any {
	v, err := p.eval(context.Background(), r.Fields)
	if err != nil {
		return nil
	}
	// wildcards and slices return a list, keep the only answer if there is one.
	if list, ok := v.([]any); ok && strings.ContainsAny(p.name, "*:?") {
		switch len(list) {
		case 0:
			return nil
		case 1:
			return list[0]
		}
	}
	return v
}

// Text returns the value at p in r as displayed in a table.
func (p Path) Text(r Record) string { return text(p.Value(r)) }

// text formats a decoded JSON value. Nested values are compact JSON.
func text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// keys returns the field names of r, sorted, without "id".
func (r Record) keys() []string {
	keys := slices.Sorted(maps.Keys(r.Fields))
	return slices.DeleteFunc(keys, func(k string) bool { return k == "id" })
}

// MarshalJSON writes the id first then the fields sorted by name.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	for _, k := range r.keys() {
		w.Append(k, r.Fields[k])
	}
	return w.MarshalJSON()
}

// DecodeRecords reads one JSON object per line. Blank lines are skipped.
// The identity of a record is its integer "id" field, or its line number
// when it has none; two records cannot share an identity.
func DecodeRecords(r io.Reader) ([]Record, error) {
	records := make([]Record, 0)
	seen := make(map[int]int) // id -> line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(line))
		dec.UseNumber()
		fields := make(map[string]any)
		if err := dec.Decode(&fields); err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", n, err)
		}

		id := n
		if v, ok := fields["id"]; ok {
			num, ok := v.(json.Number)
			if !ok {
				return nil, fmt.Errorf("format error on line %d: id must be an integer, got %s", n, text(v))
			}
			i, err := strconv.Atoi(num.String())
			if err != nil {
				return nil, fmt.Errorf("format error on line %d: id must be an integer: %w", n, err)
			}
			id = i
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("format error on line %d: id %d is already used on line %d", n, id, prev)
		}
		seen[id] = n
		records = append(records, Record{ID: id, Fields: fields})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}

// RecordFilter returns a filter searching the fields at text and selecting on
// the fields at selectors. Selectors are named after their path and have no
// sentinel but the empty string. Without text paths the query searches every
// field.
func RecordFilter(text []Path, selectors ...Path) Filter[Record] {
	f := Filter[Record]{
		Text: func(r Record) []string {
			res := make([]string, 0, len(text))
			for _, p := range text {
				res = append(res, p.Text(r))
			}
			return res
		},
	}
	if len(text) == 0 {
		f.Text = allFields
	}
	for _, p := range selectors {
		f.Selectors = append(f.Selectors, Selector[Record]{Name: p.String(), Field: p.Text})
	}
	return f
}

// allFields returns the id then every field value sorted by field name.
func allFields(r Record) []string {
	res := []string{strconv.Itoa(r.ID)}
	for _, k := range r.keys() {
		res = append(res, text(r.Fields[k]))
	}
	return res
}

// NewRecordPage returns a page listing records with filter f. Without
// columns, the page shows every field found in records, sorted by name.
func NewRecordPage(name string, records []Record, f Filter[Record], columns ...Path) *Page[Record] {
	cols := []Column[Record]{{Title: "ID", Value: func(r Record) string { return strconv.Itoa(r.ID) }}}
	if len(columns) == 0 {
		names := make(map[string]struct{})
		for _, r := range records {
			for _, k := range r.keys() {
				names[k] = struct{}{}
			}
		}
		for _, k := range slices.Sorted(maps.Keys(names)) {
			p, err := ParsePath(k)
			if err != nil {
				continue
			}
			columns = append(columns, p)
		}
	}
	for _, p := range columns {
		cols = append(cols, Column[Record]{Title: p.String(), Value: p.Text})
	}
	return NewPage(name, name, records, f, cols...)
}
