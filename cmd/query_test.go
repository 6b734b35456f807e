package cmd

import (
	"flag"
	"testing"

	"github.com/etnz/backoffice"
	"github.com/etnz/backoffice/date"
	"github.com/google/go-cmp/cmp"
)

func TestRangeFlags(t *testing.T) {
	today := date.Today()
	testCases := []struct {
		args []string
		want date.Range
	}{
		{nil, date.Range{}},
		{[]string{"-p", "month", "-d", "2025-02-14"}, date.Range{From: date.New(2025, 2, 1), To: date.New(2025, 2, 28)}},
		{[]string{"-s", "2025-01-10", "-d", "2025-01-20"}, date.Range{From: date.New(2025, 1, 10), To: date.New(2025, 1, 20)}},
		{[]string{"-s", "2025-01-20", "-d", "2025-01-10"}, date.Range{From: date.New(2025, 1, 10), To: date.New(2025, 1, 20)}},
		{[]string{"-s", "2025-01-10", "-p", "year", "-d", "2025-01-20"}, date.Range{From: date.New(2025, 1, 10), To: date.New(2025, 1, 20)}},
		{[]string{"-d", "2025-03-01"}, date.Range{To: date.New(2025, 3, 1)}},
		{[]string{"-p", "day"}, date.Range{From: today, To: today}},
	}
	for _, tc := range testCases {
		var r rangeFlags
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		r.SetFlags(fs)
		if err := fs.Parse(tc.args); err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tc.args, err)
		}
		got, err := r.Range()
		if err != nil {
			t.Errorf("Range(%q) unexpected error: %v", tc.args, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Range(%q) = %v, want %v", tc.args, got, tc.want)
		}
	}
}

func TestRangeFlagsErrors(t *testing.T) {
	for _, r := range []rangeFlags{{period: "fortnight"}, {start: "someday"}, {end: "2025-13-01"}} {
		if _, err := r.Range(); err == nil {
			t.Errorf("Range(%+v) = nil error, want one", r)
		}
	}
}

func TestLimit(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	testCases := []struct {
		head, tail int
		want       []int
	}{
		{0, 0, []int{1, 2, 3, 4, 5}},
		{2, 0, []int{1, 2}},
		{0, 2, []int{4, 5}},
		{3, 2, []int{2, 3}},
		{9, 9, []int{1, 2, 3, 4, 5}},
	}
	for _, tc := range testCases {
		if diff := cmp.Diff(tc.want, limit(s, tc.head, tc.tail)); diff != "" {
			t.Errorf("limit(%d, %d) (-want +got):\n%s", tc.head, tc.tail, diff)
		}
	}
}

func TestListQuery(t *testing.T) {
	roles := backoffice.NewCatalog(new(backoffice.Dataset)).Roles
	c := newListCmd(roles)
	fs := flag.NewFlagSet("roles", flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse([]string{"-q", "admin", "-scope", "Pakiza Accounts"}); err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	got, err := c.Query()
	if err != nil {
		t.Fatalf("Query() unexpected error: %v", err)
	}
	want := backoffice.Query{Criteria: backoffice.Criteria{Query: "admin", Selected: map[string]string{"scope": "Pakiza Accounts"}}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(date.Date{})); diff != "" {
		t.Errorf("Query() (-want +got):\n%s", diff)
	}

	// undated pages have no range flags.
	if fs.Lookup("p") != nil {
		t.Error("the roles command has a -p flag")
	}
}

func TestWhereFlag(t *testing.T) {
	w := make(whereFlag)
	for _, s := range []string{"city=Dhaka", " status =Active", "note=a=b"} {
		if err := w.Set(s); err != nil {
			t.Fatalf("Set(%q) unexpected error: %v", s, err)
		}
	}
	if diff := cmp.Diff(whereFlag{"city": "Dhaka", "status": "Active", "note": "a=b"}, w); diff != "" {
		t.Errorf("where (-want +got):\n%s", diff)
	}
	if got := w.String(); got != "city=Dhaka,note=a=b,status=Active" {
		t.Errorf("String() = %q", got)
	}
	if err := w.Set("city"); err == nil {
		t.Error("Set(city) = nil error, want one")
	}
}
