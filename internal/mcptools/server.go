// Package mcptools exposes the readiness catalog and evaluator as MCP tools
// so an assistant can walk a consultant through an assessment.
//
// Each tool is a struct with its dependencies injected via constructor:
// Definition() returns the mcp.Tool schema and Handle() serves the call.
package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/vcfready/vcfready/pkg/catalog"
	"github.com/vcfready/vcfready/pkg/readiness"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

const instructions = `vcfready scores VCF 9.0 readiness questionnaires.
Call readiness_list_paths to pick a deployment path, readiness_list_questions
to get the questions for it, then readiness_evaluate with the answers.`

// New builds an MCP server over the given catalog and engine.
func New(cat *catalog.Catalog, engine *readiness.Engine) *server.MCPServer {
	s := server.NewMCPServer(
		"vcfready",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	paths := NewListPathsTool(cat)
	s.AddTool(paths.Definition(), paths.Handle)

	questions := NewListQuestionsTool(cat)
	s.AddTool(questions.Definition(), questions.Handle)

	evaluate := NewEvaluateTool(cat, engine)
	s.AddTool(evaluate.Definition(), evaluate.Handle)

	return s
}
