package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// RenderTable renders a Table to a markdown string.
func RenderTable(t *Table) string {
	partials := map[string]string{
		"table_title": "table_title.md",
		"table_rows":  "table_rows.md",
	}
	return renderTemplate("table", "table.md", partials, t)
}

// RenderPages renders the page index.
func RenderPages(p *Pages) string {
	partials := map[string]string{
		"pages_list": "pages_list.md",
	}
	return renderTemplate("pages", "pages.md", partials, p)
}

var funcs = template.FuncMap{
	"cell": Cell,
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

var cellReplacer = strings.NewReplacer(`\`, `\\`, "|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// Cell escapes s for a markdown table cell: pipes are escaped and line
// breaks become spaces.
func Cell(s string) string { return cellReplacer.Replace(s) }
