package agent

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func mcpSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	srv := NewServer(exampleCatalog(), "test")
	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "bo-test", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func TestServerTools(t *testing.T) {
	session := mcpSession(t)
	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools() unexpected error: %v", err)
	}
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	for _, want := range []string{"list_roles", "list_invoices", "list_customers", "list_bank"} {
		if !slices.Contains(names, want) {
			t.Errorf("tools %v do not contain %q", names, want)
		}
	}
}

func TestServerCall(t *testing.T) {
	session := mcpSession(t)
	testCases := []struct {
		tool    string
		args    map[string]any
		want    string
		isError bool
	}{
		{"list_roles", map[string]any{"scope": "Pakiza Accounts"}, "| Admin | Pakiza Accounts |", false},
		{"list_roles", map[string]any{}, "Showing 2 of 2 records.", false},
		{"list_invoices", map[string]any{"query": "pran", "from": "2025-02-01"}, "| INV-002 | Pran Foods |", false},
		{"list_roles", map[string]any{"scope": "Nobody"}, `no scope is "Nobody"`, true},
		{"list_roles", map[string]any{"from": "2025-02-01"}, "has no dates", true},
	}
	for _, tc := range testCases {
		res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: tc.tool, Arguments: tc.args})
		if err != nil {
			t.Fatalf("CallTool(%s, %v) unexpected error: %v", tc.tool, tc.args, err)
		}
		if res.IsError != tc.isError {
			t.Errorf("CallTool(%s, %v).IsError = %v, want %v", tc.tool, tc.args, res.IsError, tc.isError)
		}
		text, ok := res.Content[0].(*mcp.TextContent)
		if !ok {
			t.Fatalf("CallTool(%s): got %T, want text content", tc.tool, res.Content[0])
		}
		if !strings.Contains(text.Text, tc.want) {
			t.Errorf("CallTool(%s, %v) = %q, want it to contain %q", tc.tool, tc.args, text.Text, tc.want)
		}
	}
}
