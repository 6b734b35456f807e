// Package cmd implements the bo command-line application to browse the back
// office pages.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/backoffice"
	"github.com/etnz/backoffice/seed"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&pagesCmd{}, "pages")
	// the page structure does not depend on the data.
	for _, l := range backoffice.NewCatalog(new(backoffice.Dataset)).Pages() {
		c.Register(newListCmd(l), "pages")
	}
	c.Register(&summaryCmd{}, "pages")

	c.Register(&tableCmd{}, "records")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
	c.Register(&mcpCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to the YAML configuration file (default "+DefaultConfigFile+" or $"+EnvConfig+")")
	seedDir    = flag.String("seed-dir", "", "Folder of the JSONL seed files, the embedded demo data if empty")
	style      = flag.String("style", "auto", "Style of the terminal output: auto, dark, light, notty, ...")
	verbose    = flag.Bool("v", false, "Verbose logging on stderr")
)

// settings are the global flags merged with the configuration file by Setup.
var settings = defaults()

// Setup reads the configuration file and resolves the global settings. It
// must be called after flag.Parse.
func Setup() error {
	path, explicit := *configFile, *configFile != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultConfigFile
	}
	file, err := LoadConfig(path, !explicit)
	if err != nil {
		return err
	}
	settings = resolve(file, flag.CommandLine)
	setupLogging(settings.Verbose)
	log.Debug().Str("config", path).Str("seed_dir", settings.SeedDir).Str("style", settings.Style).Msg("settings resolved")
	return nil
}

// Catalog loads the pages from the seed folder, or the embedded seed files.
func Catalog() (*backoffice.Catalog, error) {
	if settings.SeedDir == "" {
		return seed.Catalog()
	}
	if _, err := os.Stat(settings.SeedDir); err != nil {
		return nil, fmt.Errorf("invalid seed folder: %w", err)
	}
	d, err := backoffice.DecodeDataset(os.DirFS(settings.SeedDir))
	if err != nil {
		return nil, fmt.Errorf("failed to load seed folder %q: %w", settings.SeedDir, err)
	}
	log.Debug().Str("seed_dir", settings.SeedDir).Int("customers", len(d.Customers)).Msg("seed folder loaded")
	return backoffice.NewCatalog(d), nil
}
