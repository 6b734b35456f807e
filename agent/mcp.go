package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/etnz/backoffice"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// NewServer returns an MCP server whose tools are the list_<page> functions
// of the clerk, for assistants running outside of bo.
func NewServer(c *backoffice.Catalog, version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "bo", Version: version}, nil)
	for _, l := range c.Pages() {
		f := NewPageFunc(l)
		srv.AddTool(f.Tool(), f.handle)
	}
	return srv
}

// Tool describes f as an MCP tool.
func (f *PageFunc) Tool() *mcp.Tool {
	props := map[string]any{
		"query": map[string]any{"type": "string", "description": queryDoc},
	}
	for _, s := range f.l.Selectors() {
		props[s.Name] = map[string]any{
			"type":        "string",
			"description": selectorDoc(s),
			"enum":        append([]string{s.All}, s.Values...),
		}
	}
	if f.l.Dated() {
		props["from"] = map[string]any{"type": "string", "description": fromDoc}
		props["to"] = map[string]any{"type": "string", "description": toDoc}
	}
	return &mcp.Tool{
		Name:        f.name(),
		Description: f.description(),
		InputSchema: map[string]any{"type": "object", "properties": props},
	}
}

func (f *PageFunc) handle(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := make(map[string]any)
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			var res mcp.CallToolResult
			res.SetError(fmt.Errorf("invalid arguments: %w", err))
			return &res, nil
		}
	}
	log.Debug().Str("tool", f.name()).Any("args", args).Msg("mcp call")
	md, err := f.list(args)
	if err != nil {
		var res mcp.CallToolResult
		res.SetError(err)
		return &res, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: md}},
	}, nil
}
