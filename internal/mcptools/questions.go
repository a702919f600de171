package mcptools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vcfready/vcfready/pkg/catalog"
)

// ListQuestionsTool handles the readiness_list_questions MCP tool.
type ListQuestionsTool struct {
	cat *catalog.Catalog
}

// NewListQuestionsTool creates a ListQuestionsTool.
func NewListQuestionsTool(cat *catalog.Catalog) *ListQuestionsTool {
	return &ListQuestionsTool{cat: cat}
}

// Definition returns the MCP tool definition for readiness_list_questions.
func (t *ListQuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("readiness_list_questions",
		mcp.WithDescription(
			"List the questions asked on a deployment path. Each question is shown "+
				"with its ledger key (prefix:id) and its valid answers.",
		),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Deployment path ID, e.g. path1, path2, path3"),
		),
		mcp.WithString("subpaths",
			mcp.Description("Comma-separated sub-path prefixes to include, e.g. vsphere,nsx"),
		),
	)
}

// Handle processes the readiness_list_questions tool call.
func (t *ListQuestionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pathID := req.GetString("path", "")
	if pathID == "" {
		return mcp.NewToolResultError("'path' is required"), nil
	}
	subPaths := splitList(req.GetString("subpaths", ""))

	questions, err := t.cat.Questions(pathID, subPaths...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d questions on %s:\n\n", len(questions), pathID)
	for _, q := range questions {
		fmt.Fprintf(&b, "- `%s:%s` [%s] %s (answers: %s)\n",
			q.Prefix, q.ID, q.Category, q.Text, strings.Join(q.Answers(), " / "))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
