package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vcfready/vcfready/pkg/readiness"
)

// TerminalRenderer renders a Result as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func labelColor(label string) string {
	if noColor() {
		return ""
	}
	switch label {
	case readiness.LabelReady:
		return colorGreen
	case readiness.LabelWarning:
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, result *readiness.Result) error {
	lc := labelColor(result.Label)

	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("VCF 9.0 Readiness: %s (Score %d%%)",
			colored(result.Label, lc), result.Score)))

	fmt.Fprintf(w, "Answered: %d questions / %d of %d points / coverage %s\n\n",
		result.Answered, result.TotalScore, result.MaxScore, result.Coverage)

	sections := []struct {
		title string
		color string
		items []readiness.SummaryItem
	}{
		{"Blockers (Must Fix)", colorRed, result.Summary.Blockers},
		{"Warnings (Action Required)", colorYellow, result.Summary.Warnings},
		{"Good to Go (No Action)", colorGreen, result.Summary.GoodToGo},
	}
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s - %d\n", bold(s.title), len(s.items))
		for _, item := range s.items {
			fmt.Fprintf(w, "  %s %s\n", colored("●", s.color), item.Question)
			for _, line := range wrapText(item.Action, 70) {
				fmt.Fprintf(w, "    %s\n", dim(line))
			}
			if item.Notes != "" {
				fmt.Fprintf(w, "    %s\n", dim("Notes: "+item.Notes))
			}
		}
		fmt.Fprintln(w)
	}

	switch result.Verdict {
	case readiness.VerdictNone:
		fmt.Fprintln(w, "No questions answered yet.")
	case readiness.VerdictBlocked:
		fmt.Fprintln(w, colored("Project Blocked! Critical blockers must be resolved before proceeding.", colorRed))
	case readiness.VerdictClear:
		fmt.Fprintln(w, colored("Great News! No blockers or warnings identified.", colorGreen))
	}

	return nil
}

// RenderLint writes catalog lint findings, most severe first.
func RenderLint(w io.Writer, findings []readiness.LintFinding) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No findings.")
		return
	}
	for _, f := range findings {
		color := colorYellow
		if f.Severity == readiness.LintHigh {
			color = colorRed
		}
		fmt.Fprintf(w, "  %s %s %s=%s: %s\n",
			colored(strings.ToUpper(string(f.Severity)), color), bold(f.Path), f.Key, f.Answer, f.Message)
	}
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
