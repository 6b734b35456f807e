package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/etnz/backoffice/agent"
	"github.com/google/subcommands"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

type mcpCmd struct{}

func (*mcpCmd) Name() string     { return "mcp" }
func (*mcpCmd) Synopsis() string { return "serve the pages to MCP clients on stdin and stdout" }
func (*mcpCmd) Usage() string {
	return `bo mcp

  Runs a Model Context Protocol server on the standard input and output.
  Every page is a tool named list_<page>, taking the same query, selectors
  and dates as 'bo assist'. Register it in an MCP client as the command
  "bo mcp". Diagnostics go to stderr, use -v for the calls.
`
}

func (*mcpCmd) SetFlags(f *flag.FlagSet) {}

func (*mcpCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cat, err := Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading pages: %v\n", err)
		return subcommands.ExitFailure
	}
	version := "devel"
	if info, ok := debug.ReadBuildInfo(); ok {
		version = info.Main.Version
	}
	log.Debug().Str("version", version).Msg("mcp server started")
	if err := agent.NewServer(cat, version).Run(ctx, &mcp.StdioTransport{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
