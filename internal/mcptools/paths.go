package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vcfready/vcfready/pkg/catalog"
)

// ListPathsTool handles the readiness_list_paths MCP tool.
type ListPathsTool struct {
	cat *catalog.Catalog
}

// NewListPathsTool creates a ListPathsTool.
func NewListPathsTool(cat *catalog.Catalog) *ListPathsTool {
	return &ListPathsTool{cat: cat}
}

// Definition returns the MCP tool definition for readiness_list_paths.
func (t *ListPathsTool) Definition() mcp.Tool {
	return mcp.NewTool("readiness_list_paths",
		mcp.WithDescription(
			"List the VCF 9.0 deployment paths with their optional component sub-paths.",
		),
	)
}

// Handle processes the readiness_list_paths tool call.
func (t *ListPathsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for _, p := range t.cat.Paths() {
		fmt.Fprintf(&b, "## %s (%s)\n%s\n", p.Title, p.ID, p.Description)
		for _, c := range p.Customer {
			fmt.Fprintf(&b, "- %s\n", c.Text)
		}
		if len(p.SubPaths) > 0 {
			b.WriteString("\nSub-paths:\n")
			for _, set := range p.SubPaths {
				fmt.Fprintf(&b, "- `%s`: %s (%d questions)\n", set.Prefix, set.Title, len(set.Questions))
			}
		}
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}
