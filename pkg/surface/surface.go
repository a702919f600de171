// Package surface renders readiness results for different output targets:
// terminal, JSON, and a Markdown proposal.
package surface

import (
	"fmt"
	"io"

	"github.com/vcfready/vcfready/pkg/readiness"
)

// Renderer produces formatted output from a readiness Result.
type Renderer interface {
	// Render writes the formatted result to the writer.
	Render(w io.Writer, result *readiness.Result) error
}

// ReportData is a rendered readiness report ready to be stored or posted.
type ReportData struct {
	Title      string `json:"title"`
	Body       string `json:"body"`       // Markdown
	Conclusion string `json:"conclusion"` // success, neutral, failure
}

// Output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// ForFormat returns the renderer for an output format name.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "", FormatText:
		return &TerminalRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatMarkdown, "md":
		return &MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or markdown)", format)
	}
}
