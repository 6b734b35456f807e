// Package seed embeds the demonstration data of the back office: one JSONL
// file per page.
package seed

import (
	"embed"

	"github.com/etnz/backoffice"
)

//go:embed *.jsonl
var FS embed.FS

// Dataset decodes the embedded seed files.
func Dataset() (*backoffice.Dataset, error) { return backoffice.DecodeDataset(FS) }

// Catalog returns the pages over the embedded seed files.
func Catalog() (*backoffice.Catalog, error) {
	d, err := Dataset()
	if err != nil {
		return nil, err
	}
	return backoffice.NewCatalog(d), nil
}
