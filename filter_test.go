package backoffice

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// exampleRoles are the role rows of the roles page example.
var exampleRoles = []Role{
	{ID: 1, Name: "Admin", Scope: "Pakiza Accounts", Description: "Full access"},
	{ID: 2, Name: "Manager", Scope: "Cripton Labs", Description: "Approves payments"},
	{ID: 3, Name: "Viewer", Scope: "All Tenants", Description: "Read-only access"},
}

var exampleCustomers = []Customer{
	{ID: 1, Name: "Akij Group"},
	{ID: 2, Name: "Edison Footwear Limited"},
	{ID: 3, Name: "Bashundhara Paper Mills"},
	{ID: 4, Name: "Square Pharmaceuticals"},
	{ID: 5, Name: "Pran Foods"},
	{ID: 6, Name: "Edison Real Estate Limited"},
	{ID: 7, Name: "Walton Hi-Tech"},
	{ID: 8, Name: "Meghna Cement"},
	{ID: 9, Name: "Grameen Textiles"},
	{ID: 10, Name: "Rahimafrooz Batteries"},
}

func names[T any](records []T, name func(T) string) []string {
	res := make([]string, 0, len(records))
	for _, r := range records {
		res = append(res, name(r))
	}
	return res
}

func roleName(r Role) string         { return r.Name }
func customerName(c Customer) string { return c.Name }

func scope(s string) Criteria { return Criteria{Selected: map[string]string{"scope": s}} }

func TestFilterApply(t *testing.T) {
	f := RoleFilter()
	testCases := []struct {
		name string
		c    Criteria
		want []string
	}{
		{"no criteria", Criteria{}, []string{"Admin", "Manager", "Viewer"}},
		{"scope", scope("Pakiza Accounts"), []string{"Admin"}},
		{"sentinel scope", scope("All Scopes"), []string{"Admin", "Manager", "Viewer"}},
		{"empty scope", scope(""), []string{"Admin", "Manager", "Viewer"}},
		{"scope named like a sentinel", scope("All Tenants"), []string{"Viewer"}},
		{"query on scope", Criteria{Query: "labs"}, []string{"Manager"}},
		{"query on description", Criteria{Query: "ACCESS"}, []string{"Admin", "Viewer"}},
		{"query and scope", Criteria{Query: "access", Selected: map[string]string{"scope": "All Tenants"}}, []string{"Viewer"}},
		{"query and scope disagree", Criteria{Query: "manager", Selected: map[string]string{"scope": "Pakiza Accounts"}}, []string{}},
		{"query spanning fields", Criteria{Query: "admin pakiza"}, []string{"Admin"}},
		{"unknown selector is ignored", Criteria{Selected: map[string]string{"colour": "blue"}}, []string{"Admin", "Manager", "Viewer"}},
		{"no match", Criteria{Query: "zzz-no-match"}, []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := names(f.Apply(exampleRoles, tc.c), roleName)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Apply(%+v) (-want +got):\n%s", tc.c, diff)
			}
		})
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	f := CustomerFilter()
	got := f.Apply(exampleCustomers, Criteria{})
	if diff := cmp.Diff(exampleCustomers, got); diff != "" {
		t.Errorf("Apply with no criteria changed the records (-want +got):\n%s", diff)
	}

	if got := f.Apply(nil, Criteria{Query: "x"}); got == nil || len(got) != 0 {
		t.Errorf("Apply(nil) = %#v, want an empty non nil slice", got)
	}
}

func TestFilterEdison(t *testing.T) {
	got := names(CustomerFilter().Apply(exampleCustomers, Criteria{Query: "Edison"}), customerName)
	want := []string{"Edison Footwear Limited", "Edison Real Estate Limited"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("customers matching Edison (-want +got):\n%s", diff)
	}
}

func TestFilterIdempotent(t *testing.T) {
	f := CustomerFilter()
	for _, q := range []string{"", "edison", "a", "limited", "zzz-no-match"} {
		c := Criteria{Query: q}
		once := f.Apply(exampleCustomers, c)
		twice := f.Apply(once, c)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("query %q: filtering twice differs (-once +twice):\n%s", q, diff)
		}
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	f := CustomerFilter()
	for _, q := range []string{"edison", "Real Estate", "pHARMA", "LIMITED"} {
		lower := f.Apply(exampleCustomers, Criteria{Query: strings.ToLower(q)})
		upper := f.Apply(exampleCustomers, Criteria{Query: strings.ToUpper(q)})
		asIs := f.Apply(exampleCustomers, Criteria{Query: q})
		if diff := cmp.Diff(asIs, lower); diff != "" {
			t.Errorf("query %q vs lower case (-as is +lower):\n%s", q, diff)
		}
		if diff := cmp.Diff(asIs, upper); diff != "" {
			t.Errorf("query %q vs upper case (-as is +upper):\n%s", q, diff)
		}
	}
}

func TestFilterFoldsUnicode(t *testing.T) {
	f := Filter[string]{Text: func(s string) []string { return []string{s} }}
	got := f.Apply([]string{"Straße", "Strasse", "Street"}, Criteria{Query: "STRASSE"})
	if diff := cmp.Diff([]string{"Straße", "Strasse"}, got); diff != "" {
		t.Errorf("folded search (-want +got):\n%s", diff)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	f := CustomerFilter()
	for _, q := range []string{"a", "e", "limited", "s"} {
		var indexes []int
		for i := range f.Records(exampleCustomers, Criteria{Query: q}) {
			indexes = append(indexes, i)
		}
		if !slices.IsSorted(indexes) {
			t.Errorf("query %q: indexes %v are not in input order", q, indexes)
		}
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	records := slices.Clone(exampleRoles)
	got := RoleFilter().Apply(records, scope("Cripton Labs"))
	if len(got) != 1 {
		t.Fatalf("got %d roles, want 1", len(got))
	}
	got[0].Name = "changed"
	if diff := cmp.Diff(exampleRoles, records); diff != "" {
		t.Errorf("records changed (-want +got):\n%s", diff)
	}
}

func TestFilterWhere(t *testing.T) {
	many := func(c Customer) bool { return c.ID > 5 }
	got := names(CustomerFilter().Apply(exampleCustomers, Criteria{Query: "edison"}, many), customerName)
	if diff := cmp.Diff([]string{"Edison Real Estate Limited"}, got); diff != "" {
		t.Errorf("Apply with a where predicate (-want +got):\n%s", diff)
	}
}

func TestFilterRecordsStops(t *testing.T) {
	n := 0
	for range CustomerFilter().Records(exampleCustomers, Criteria{}) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d records, want 3", n)
	}
}

func TestFilterWithoutText(t *testing.T) {
	f := Filter[Role]{Selectors: RoleFilter().Selectors}
	if got := f.Apply(exampleRoles, Criteria{Query: "admin"}); len(got) != 0 {
		t.Errorf("a filter without text fields matched %v", got)
	}
	if got := f.Apply(exampleRoles, scope("Cripton Labs")); len(got) != 1 {
		t.Errorf("got %d roles, want 1", len(got))
	}
}

func TestMatch(t *testing.T) {
	f := RoleFilter()
	if !f.Match(exampleRoles[0], Criteria{Query: "PAKIZA"}) {
		t.Error("Admin should match PAKIZA")
	}
	if f.Match(exampleRoles[1], scope("Pakiza Accounts")) {
		t.Error("Manager should not match the Pakiza Accounts scope")
	}
}
