package mcptools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vcfready/vcfready/pkg/catalog"
	"github.com/vcfready/vcfready/pkg/ledger"
	"github.com/vcfready/vcfready/pkg/readiness"
	"github.com/vcfready/vcfready/pkg/surface"
)

// EvaluateTool handles the readiness_evaluate MCP tool.
type EvaluateTool struct {
	cat    *catalog.Catalog
	engine *readiness.Engine
}

// NewEvaluateTool creates an EvaluateTool. A nil engine classifies by
// phrase in catalog order.
func NewEvaluateTool(cat *catalog.Catalog, engine *readiness.Engine) *EvaluateTool {
	if engine == nil {
		engine = readiness.NewEngine(readiness.WithOrder(cat.Order()))
	}
	return &EvaluateTool{cat: cat, engine: engine}
}

// Definition returns the MCP tool definition for readiness_evaluate.
func (t *EvaluateTool) Definition() mcp.Tool {
	return mcp.NewTool("readiness_evaluate",
		mcp.WithDescription(
			"Score a set of answers and return the readiness report. "+
				"Answers are a JSON object mapping prefix:id to yes/no (or the select value).",
		),
		mcp.WithString("answers",
			mcp.Required(),
			mcp.Description(`JSON object, e.g. {"generic:g-hw":"yes","generic:g-vcd":"no"}`),
		),
		mcp.WithString("notes",
			mcp.Description(`Optional JSON object of notes keyed the same way`),
		),
	)
}

// Handle processes the readiness_evaluate tool call.
func (t *EvaluateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("answers", "")
	if raw == "" {
		return mcp.NewToolResultError("'answers' is required"), nil
	}
	var answers map[string]string
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid answers JSON: %v", err)), nil
	}
	var notes map[string]string
	if n := req.GetString("notes", ""); n != "" {
		if err := json.Unmarshal([]byte(n), &notes); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid notes JSON: %v", err)), nil
		}
	}

	l, err := t.buildLedger(answers, notes)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	if err := (&surface.MarkdownRenderer{}).Render(&buf, t.engine.Evaluate(l)); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render report: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (t *EvaluateTool) buildLedger(answers, notes map[string]string) (*ledger.Ledger, error) {
	l := ledger.New()
	for ks, answer := range answers {
		k, err := ledger.ParseKey(ks)
		if err != nil {
			return nil, err
		}
		q, ok := t.cat.Lookup(k.Prefix, k.QuestionID)
		if !ok {
			return nil, fmt.Errorf("unknown question %s", ks)
		}
		if _, err := l.Answer(k.Prefix, q, answer); err != nil {
			return nil, fmt.Errorf("%s: %w", ks, err)
		}
	}
	for ks, n := range notes {
		k, err := ledger.ParseKey(ks)
		if err != nil {
			return nil, err
		}
		l.SetNotes(k, n)
	}
	return l, nil
}
