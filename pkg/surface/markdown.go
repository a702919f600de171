package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/vcfready/vcfready/pkg/readiness"
)

// MarkdownRenderer produces the readiness section of a customer proposal.
type MarkdownRenderer struct {
	// Title overrides the report heading.
	Title string
}

func (r *MarkdownRenderer) Render(w io.Writer, result *readiness.Result) error {
	_, err := io.WriteString(w, r.BuildReport(result).Body)
	return err
}

// BuildReport creates the ReportData for a Result.
func (r *MarkdownRenderer) BuildReport(result *readiness.Result) ReportData {
	title := r.Title
	if title == "" {
		title = fmt.Sprintf("VCF 9.0 Readiness: %s (Score %d%%)", result.Label, result.Score)
	}
	return ReportData{
		Title:      title,
		Body:       buildMarkdownBody(title, result),
		Conclusion: verdictToConclusion(result.Verdict),
	}
}

func verdictToConclusion(v readiness.Verdict) string {
	switch v {
	case readiness.VerdictClear:
		return "success"
	case readiness.VerdictBlocked:
		return "failure"
	default:
		return "neutral"
	}
}

func buildMarkdownBody(title string, result *readiness.Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s\n\n", title))

	sb.WriteString("| Metric | Value |\n|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Score | %d%% |\n", result.Score))
	sb.WriteString(fmt.Sprintf("| Status | %s |\n", result.Label))
	sb.WriteString(fmt.Sprintf("| Answered | %d |\n", result.Answered))
	sb.WriteString(fmt.Sprintf("| Blockers | %d |\n", len(result.Summary.Blockers)))
	sb.WriteString(fmt.Sprintf("| Warnings | %d |\n", len(result.Summary.Warnings)))
	sb.WriteString("\n")

	writeSection(&sb, "🛑 Blockers (Must Fix)", result.Summary.Blockers)
	writeSection(&sb, "⚠️ Warnings (Action Required)", result.Summary.Warnings)
	writeSection(&sb, "✅ Good to Go (No Action)", result.Summary.GoodToGo)

	switch result.Verdict {
	case readiness.VerdictClear:
		sb.WriteString("### Great News!\n\n")
		sb.WriteString("No blockers or warnings identified. Your environment appears ready for VCF 9.0 deployment/upgrade.\n")
	case readiness.VerdictBlocked:
		sb.WriteString("### Project Blocked!\n\n")
		sb.WriteString("Critical blockers must be resolved before proceeding with VCF 9.0 deployment/upgrade.\n")
	case readiness.VerdictNone:
		sb.WriteString("_No questions answered yet._\n")
	}

	return sb.String()
}

func writeSection(sb *strings.Builder, heading string, items []readiness.SummaryItem) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("### %s - %d\n\n", heading, len(items)))
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- **%s** %s\n", escapeMarkdown(item.Question), escapeMarkdown(item.Action)))
		if item.Notes != "" {
			sb.WriteString(fmt.Sprintf("  - Notes: %s\n", escapeMarkdown(item.Notes)))
		}
	}
	sb.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer(
	"\r\n", " ", "\n", " ", "\r", " ",
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "~", `\~`,
	"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`, "#", `\#`, "|", `\|`,
)

// escapeMarkdown keeps user text on one list line and renders it literally.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
