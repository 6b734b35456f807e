package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// printMarkdown prints md to stdout, rendered for the terminal if stdout is
// one. Pipes and files get the markdown source.
func printMarkdown(md string) {
	fd := int(os.Stdout.Fd())
	if settings.Style == "notty" || !term.IsTerminal(fd) {
		fmt.Print(md)
		return
	}

	opts := []glamour.TermRendererOption{glamour.WithEmoji()}
	if width, _, err := term.GetSize(fd); err == nil && width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	if settings.Style == "" || settings.Style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(settings.Style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		log.Warn().Err(err).Str("style", settings.Style).Msg("cannot render markdown")
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Warn().Err(err).Msg("cannot render markdown")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
