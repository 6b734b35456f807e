package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/backoffice"
	"github.com/etnz/backoffice/date"
	"github.com/etnz/backoffice/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user is an accountant or an administrator of the back office. They want facts
			about companies, users, roles, permissions, policies, the audit log, bank lines,
			accounts, customers, invoices and pricing plans.

			Devise a plan of questions to ask to each expert and come up with the best response
			to the user's request. Never make up records: only report what the experts found.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewClerk returns the expert reading the list pages of c.
func NewClerk(c *backoffice.Catalog, model string) *Expert {
	var lib []Function
	for _, l := range c.Pages() {
		lib = append(lib, NewPageFunc(l))
	}

	var pages strings.Builder
	for _, l := range c.Pages() {
		fmt.Fprintf(&pages, "  - %s: %s\n", l.Name(), l.Title())
	}

	return &Expert{
		Name: "Clerk",
		Description: `This is the Clerk. They read the back office list pages and know every record of them:
		companies, users, roles, permissions, policies, audit log, bank reconciliation, chart of accounts,
		customers, invoices and pricing plans. Ask the Clerk for any fact about these records.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the clerk of the back office. You use the Tools to list the records
				of the back office pages, filtered with a free-text query and selectors.
				The query is a case-insensitive substring of the searched fields. An empty
				query lists every record.

				The pages are:
				` + pages.String()}}},
		},
		Library: NewLibrary(lib),
	}
}

// PageFunc lets a model list a page.
type PageFunc struct {
	l backoffice.Lister
}

// NewPageFunc returns the function listing l, called "list_<name>".
func NewPageFunc(l backoffice.Lister) *PageFunc { return &PageFunc{l: l} }

func (f *PageFunc) name() string { return "list_" + f.l.Name() }

func (f *PageFunc) description() string {
	return fmt.Sprintf("List the records of the %s page as a markdown table.", f.l.Title())
}

const (
	queryDoc = "Case-insensitive text searched in the records. Empty lists every record."
	fromDoc  = "First day listed, YYYY-MM-DD."
	toDoc    = "Last day listed, YYYY-MM-DD."
)

func selectorDoc(s backoffice.SelectorInfo) string {
	return fmt.Sprintf("Only list records whose %s is this value. %q lists them all.", s.Name, s.All)
}

func (f *PageFunc) Declaration() *genai.FunctionDeclaration {
	props := map[string]*genai.Schema{
		"query": {Type: genai.TypeString, Description: queryDoc},
	}
	for _, s := range f.l.Selectors() {
		props[s.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: selectorDoc(s),
			Enum:        append([]string{s.All}, s.Values...),
		}
	}
	if f.l.Dated() {
		props["from"] = &genai.Schema{Type: genai.TypeString, Description: fromDoc}
		props["to"] = &genai.Schema{Type: genai.TypeString, Description: toDoc}
	}
	return &genai.FunctionDeclaration{
		Name:        f.name(),
		Description: f.description(),
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: props,
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table of the matching records, with a sentence describing the filter.",
		},
	}
}

func (f *PageFunc) Call(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
	md, err := f.list(args)
	if err != nil {
		return failure(id, f.name(), err)
	}
	return success(id, f.name(), md)
}

// list renders the records matching args as a markdown table.
func (f *PageFunc) list(args map[string]any) (string, error) {
	q, err := f.query(args)
	if err == nil {
		err = f.l.Validate(q)
	}
	if err != nil {
		return "", err
	}
	return renderer.RenderTable(renderer.NewTable(f.l, q)), nil
}

// query reads the function arguments.
func (f *PageFunc) query(args map[string]any) (backoffice.Query, error) {
	var q backoffice.Query
	str := func(name string) (string, error) {
		v, ok := args[name]
		if !ok || v == nil {
			return "", nil
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
		}
		return s, nil
	}

	var err error
	if q.Query, err = str("query"); err != nil {
		return q, err
	}
	for _, s := range f.l.Selectors() {
		v, err := str(s.Name)
		if err != nil {
			return q, err
		}
		if v != "" {
			if q.Selected == nil {
				q.Selected = make(map[string]string)
			}
			q.Selected[s.Name] = v
		}
	}
	if q.Range.From, err = parseDate(str, "from"); err != nil {
		return q, err
	}
	if q.Range.To, err = parseDate(str, "to"); err != nil {
		return q, err
	}
	return q, nil
}

func parseDate(str func(string) (string, error), name string) (date.Date, error) {
	v, err := str(name)
	if err != nil || v == "" {
		return date.Date{}, err
	}
	d, err := date.Parse(v)
	if err != nil {
		return date.Date{}, fmt.Errorf("argument %q must be a date like 2025-01-31: %w", name, err)
	}
	return d, nil
}
