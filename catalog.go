package backoffice

import (
	"fmt"
	"strconv"

	"github.com/etnz/backoffice/date"
)

// Dataset is the seed data of every page.
type Dataset struct {
	Companies    []Company
	Users        []User
	Roles        []Role
	Permissions  []Permission
	Policies     []Policy
	Audit        []AuditEntry
	Transactions []BankTransaction
	Accounts     []Account
	Customers    []Customer
	Invoices     []Invoice
	Plans        []Plan
}

// Catalog holds the list pages of the back office.
type Catalog struct {
	Companies    *Page[Company]
	Users        *Page[User]
	Roles        *Page[Role]
	Permissions  *Page[Permission]
	Policies     *Page[Policy]
	Audit        *Page[AuditEntry]
	Transactions *Page[BankTransaction]
	Accounts     *Page[Account]
	Customers    *Page[Customer]
	Invoices     *Page[Invoice]
	Plans        *Page[Plan]
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// NewCatalog builds every page on top of d. The pages share d's slices and
// never modify them.
func NewCatalog(d *Dataset) *Catalog {
	return &Catalog{
		Companies: NewPage("companies", "Companies", d.Companies,
			Filter[Company]{
				Text: func(c Company) []string { return []string{c.Name, c.Code, c.Email, c.Country} },
				Selectors: []Selector[Company]{
					{Name: "status", All: "All Statuses", Field: func(c Company) string { return string(c.Status) }},
					{Name: "country", All: "All Countries", Field: func(c Company) string { return c.Country }},
				},
			},
			Column[Company]{"Name", func(c Company) string { return c.Name }},
			Column[Company]{"Code", func(c Company) string { return c.Code }},
			Column[Company]{"Country", func(c Company) string { return c.Country }},
			Column[Company]{"Currency", func(c Company) string { return c.Currency }},
			Column[Company]{"Email", func(c Company) string { return c.Email }},
			Column[Company]{"Status", func(c Company) string { return string(c.Status) }},
		),

		Users: NewPage("users", "Users", d.Users,
			Filter[User]{
				Text: func(u User) []string { return []string{u.Name, u.Email, u.Role, u.Company} },
				Selectors: []Selector[User]{
					{Name: "company", All: "All Companies", Field: func(u User) string { return u.Company }},
					{Name: "role", All: "All Roles", Field: func(u User) string { return u.Role }},
					{Name: "status", All: "All Statuses", Field: func(u User) string { return string(u.Status) }},
				},
			},
			Column[User]{"Name", func(u User) string { return u.Name }},
			Column[User]{"Email", func(u User) string { return u.Email }},
			Column[User]{"Role", func(u User) string { return u.Role }},
			Column[User]{"Company", func(u User) string { return u.Company }},
			Column[User]{"Status", func(u User) string { return string(u.Status) }},
		),

		Roles: NewPage("roles", "Roles", d.Roles, RoleFilter(),
			Column[Role]{"Role", func(r Role) string { return r.Name }},
			Column[Role]{"Scope", func(r Role) string { return r.Scope }},
			Column[Role]{"Description", func(r Role) string { return r.Description }},
			Column[Role]{"Members", func(r Role) string { return strconv.Itoa(r.Members) }},
		),

		Permissions: NewPage("permissions", "Permissions", d.Permissions,
			Filter[Permission]{
				Text: func(p Permission) []string { return []string{p.Module, p.Action, p.Role} },
				Selectors: []Selector[Permission]{
					{Name: "module", All: "All Modules", Field: func(p Permission) string { return p.Module }},
					{Name: "role", All: "All Roles", Field: func(p Permission) string { return p.Role }},
				},
			},
			Column[Permission]{"Module", func(p Permission) string { return p.Module }},
			Column[Permission]{"Action", func(p Permission) string { return p.Action }},
			Column[Permission]{"Role", func(p Permission) string { return p.Role }},
			Column[Permission]{"Allowed", func(p Permission) string { return yesNo(p.Allowed) }},
		),

		Policies: NewPage("policies", "Policies", d.Policies,
			Filter[Policy]{
				Text: func(p Policy) []string { return []string{p.Name, p.Category, p.Description} },
				Selectors: []Selector[Policy]{
					{Name: "category", All: "All Categories", Field: func(p Policy) string { return p.Category }},
					{Name: "status", All: "All Statuses", Field: func(p Policy) string { return string(p.Status) }},
				},
			},
			Column[Policy]{"Policy", func(p Policy) string { return p.Name }},
			Column[Policy]{"Category", func(p Policy) string { return p.Category }},
			Column[Policy]{"Status", func(p Policy) string { return string(p.Status) }},
			Column[Policy]{"Description", func(p Policy) string { return p.Description }},
		),

		Audit: NewPage("audit", "Audit Log", d.Audit,
			Filter[AuditEntry]{
				Text: func(a AuditEntry) []string { return []string{a.User, a.Action, a.Module, a.IP} },
				Selectors: []Selector[AuditEntry]{
					{Name: "company", All: "All Companies", Field: func(a AuditEntry) string { return a.Company }},
					{Name: "module", All: "All Modules", Field: func(a AuditEntry) string { return a.Module }},
				},
			},
			Column[AuditEntry]{"Date", func(a AuditEntry) string { return a.Date.String() }},
			Column[AuditEntry]{"User", func(a AuditEntry) string { return a.User }},
			Column[AuditEntry]{"Company", func(a AuditEntry) string { return a.Company }},
			Column[AuditEntry]{"Module", func(a AuditEntry) string { return a.Module }},
			Column[AuditEntry]{"Action", func(a AuditEntry) string { return a.Action }},
			Column[AuditEntry]{"IP", func(a AuditEntry) string { return a.IP }},
		).Dates(func(a AuditEntry) date.Date { return a.Date }),

		Transactions: NewPage("bank", "Bank Reconciliation", d.Transactions,
			Filter[BankTransaction]{
				Text: func(t BankTransaction) []string { return []string{t.Description, t.Reference, t.Account} },
				Selectors: []Selector[BankTransaction]{
					{Name: "account", All: "All Accounts", Field: func(t BankTransaction) string { return t.Account }},
					{Name: "status", All: "All Statuses", Field: func(t BankTransaction) string { return string(t.Status) }},
				},
			},
			Column[BankTransaction]{"Date", func(t BankTransaction) string { return t.Date.String() }},
			Column[BankTransaction]{"Account", func(t BankTransaction) string { return t.Account }},
			Column[BankTransaction]{"Description", func(t BankTransaction) string { return t.Description }},
			Column[BankTransaction]{"Reference", func(t BankTransaction) string { return t.Reference }},
			Column[BankTransaction]{"Amount", func(t BankTransaction) string { return t.Amount.String() }},
			Column[BankTransaction]{"Status", func(t BankTransaction) string { return string(t.Status) }},
		).Dates(func(t BankTransaction) date.Date { return t.Date }),

		Accounts: NewPage("accounts", "Chart of Accounts", d.Accounts,
			Filter[Account]{
				Text: func(a Account) []string { return []string{a.Code, a.Name, a.Parent} },
				Selectors: []Selector[Account]{
					{Name: "type", All: "All Types", Field: func(a Account) string { return string(a.Type) }},
				},
			},
			Column[Account]{"Code", func(a Account) string { return a.Code }},
			Column[Account]{"Name", func(a Account) string { return a.Name }},
			Column[Account]{"Type", func(a Account) string { return string(a.Type) }},
			Column[Account]{"Parent", func(a Account) string { return a.Parent }},
			Column[Account]{"Balance", func(a Account) string { return a.Balance.String() }},
			Column[Account]{"Active", func(a Account) string { return yesNo(a.Active) }},
		),

		Customers: NewPage("customers", "Customers", d.Customers, CustomerFilter(),
			Column[Customer]{"Name", func(c Customer) string { return c.Name }},
			Column[Customer]{"Email", func(c Customer) string { return c.Email }},
			Column[Customer]{"Phone", func(c Customer) string { return c.Phone }},
			Column[Customer]{"City", func(c Customer) string { return c.City }},
		),

		Invoices: NewPage("invoices", "Invoices", d.Invoices,
			Filter[Invoice]{
				Text: func(i Invoice) []string { return []string{i.Number, i.Customer} },
				Selectors: []Selector[Invoice]{
					{Name: "status", All: "All Statuses", Field: func(i Invoice) string { return string(i.Status) }},
				},
			},
			Column[Invoice]{"Number", func(i Invoice) string { return i.Number }},
			Column[Invoice]{"Customer", func(i Invoice) string { return i.Customer }},
			Column[Invoice]{"Date", func(i Invoice) string { return i.Date.String() }},
			Column[Invoice]{"Amount", func(i Invoice) string { return i.Amount.String() }},
			Column[Invoice]{"Status", func(i Invoice) string { return string(i.Status) }},
		).Dates(func(i Invoice) date.Date { return i.Date }),

		Plans: NewPage("plans", "Pricing Plans", d.Plans,
			Filter[Plan]{Text: func(p Plan) []string { return []string{p.Name} }},
			Column[Plan]{"Plan", func(p Plan) string { return p.Name }},
			Column[Plan]{"Monthly", func(p Plan) string { return p.Monthly.String() }},
			Column[Plan]{"Yearly", func(p Plan) string { return p.Yearly.String() }},
			Column[Plan]{"Saving", func(p Plan) string { return p.Discount().String() }},
			Column[Plan]{"Seats", func(p Plan) string { return strconv.Itoa(p.Seats) }},
			Column[Plan]{"Popular", func(p Plan) string { return yesNo(p.Popular) }},
		),
	}
}

// RoleFilter is the filter of the roles page: search on name, scope and
// description, and a scope selector.
func RoleFilter() Filter[Role] {
	return Filter[Role]{
		Text: func(r Role) []string { return []string{r.Name, r.Scope, r.Description} },
		Selectors: []Selector[Role]{
			{Name: "scope", All: "All Scopes", Field: func(r Role) string { return r.Scope }},
		},
	}
}

// CustomerFilter is the filter of the customers page.
func CustomerFilter() Filter[Customer] {
	return Filter[Customer]{
		Text: func(c Customer) []string { return []string{c.Name, c.Email, c.Phone, c.City} },
	}
}

// Pages returns every page, in menu order.
func (c *Catalog) Pages() []Lister {
	return []Lister{
		c.Companies,
		c.Users,
		c.Roles,
		c.Permissions,
		c.Policies,
		c.Audit,
		c.Transactions,
		c.Accounts,
		c.Customers,
		c.Invoices,
		c.Plans,
	}
}

// Page returns the page called name.
func (c *Catalog) Page(name string) (Lister, error) {
	for _, p := range c.Pages() {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown page %q", name)
}
