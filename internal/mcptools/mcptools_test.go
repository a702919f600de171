package mcptools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vcfready/vcfready/pkg/catalog"
)

func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestNewRegistersTools(t *testing.T) {
	if s := New(catalog.Default(), nil); s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestListPathsTool(t *testing.T) {
	tool := NewListPathsTool(catalog.Default())
	if name := tool.Definition().Name; name != "readiness_list_paths" {
		t.Errorf("tool name = %q", name)
	}

	res, err := tool.Handle(context.Background(), makeReq(nil))
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	text := resultText(res)
	for _, want := range []string{"(path1)", "(path2)", "(path3)", "`vsphere`"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestListQuestionsTool(t *testing.T) {
	tool := NewListQuestionsTool(catalog.Default())
	def := tool.Definition()
	if def.Name != "readiness_list_questions" {
		t.Errorf("tool name = %q", def.Name)
	}
	if len(def.InputSchema.Required) != 1 || def.InputSchema.Required[0] != "path" {
		t.Errorf("required = %v, want [path]", def.InputSchema.Required)
	}

	tests := []struct {
		name    string
		args    map[string]interface{}
		isError bool
		want    string
		notWant string
	}{
		{name: "missing path", args: map[string]interface{}{}, isError: true},
		{name: "unknown path", args: map[string]interface{}{"path": "path9"}, isError: true},
		{name: "greenfield", args: map[string]interface{}{"path": "path1"}, want: "`greenfield:gf-ntp`"},
		{name: "brownfield base only", args: map[string]interface{}{"path": "path2"}, want: "`generic:g-hw`", notWant: "vsphere:"},
		{name: "brownfield with sub-paths", args: map[string]interface{}{"path": "path2", "subpaths": "nsx, vsphere"}, want: "`nsx:nsx-fed`"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tool.Handle(context.Background(), makeReq(tc.args))
			if err != nil {
				t.Fatalf("Handle() error: %v", err)
			}
			if res.IsError != tc.isError {
				t.Fatalf("IsError = %v, text %q", res.IsError, resultText(res))
			}
			text := resultText(res)
			if tc.want != "" && !strings.Contains(text, tc.want) {
				t.Errorf("output missing %q:\n%s", tc.want, text)
			}
			if tc.notWant != "" && strings.Contains(text, tc.notWant) {
				t.Errorf("output should not contain %q", tc.notWant)
			}
		})
	}
}

func TestEvaluateTool(t *testing.T) {
	tool := NewEvaluateTool(catalog.Default(), nil)
	if name := tool.Definition().Name; name != "readiness_evaluate" {
		t.Errorf("tool name = %q", name)
	}

	tests := []struct {
		name    string
		args    map[string]interface{}
		isError bool
		want    []string
	}{
		{name: "missing answers", args: map[string]interface{}{}, isError: true},
		{name: "bad JSON", args: map[string]interface{}{"answers": "{"}, isError: true},
		{name: "unknown question", args: map[string]interface{}{"answers": `{"generic:nope":"yes"}`}, isError: true},
		{name: "invalid answer", args: map[string]interface{}{"answers": `{"generic:g-hw":"maybe"}`}, isError: true},
		{
			name: "blocked",
			args: map[string]interface{}{
				"answers": `{"generic:g-hw":"yes","generic:g-vcd":"yes"}`,
				"notes":   `{"generic:g-vcd":"tenant portal still in use"}`,
			},
			want: []string{"| Score | 0% |", "Project Blocked!", "tenant portal still in use"},
		},
		{
			name: "all pass",
			args: map[string]interface{}{"answers": `{"generic:g-hw":"yes","generic:g-vcd":"no"}`},
			want: []string{"| Score | 100% |", "Great News!"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tool.Handle(context.Background(), makeReq(tc.args))
			if err != nil {
				t.Fatalf("Handle() error: %v", err)
			}
			if res.IsError != tc.isError {
				t.Fatalf("IsError = %v, text %q", res.IsError, resultText(res))
			}
			text := resultText(res)
			for _, w := range tc.want {
				if !strings.Contains(text, w) {
					t.Errorf("output missing %q:\n%s", w, text)
				}
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" vsphere, ,nsx ,")
	if len(got) != 2 || got[0] != "vsphere" || got[1] != "nsx" {
		t.Errorf("splitList = %v", got)
	}
	if splitList("") != nil {
		t.Error("empty input should give nil")
	}
}
