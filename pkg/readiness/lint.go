package readiness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vcfready/vcfready/pkg/catalog"
)

// LintSeverity ranks catalog lint findings.
type LintSeverity string

const (
	LintHigh   LintSeverity = "high"
	LintMedium LintSeverity = "medium"
	LintLow    LintSeverity = "low"
)

// Lint finding kinds.
const (
	LintSeverityMismatch   = "severity_mismatch"
	LintAmbiguousPhrase    = "ambiguous_phrase"
	LintUndeclaredSeverity = "undeclared_severity"
)

// LintFinding flags a catalog result whose phrase may not score the way its
// author intended.
type LintFinding struct {
	Severity LintSeverity     `json:"severity"`
	Kind     string           `json:"kind"`
	Path     string           `json:"path"`
	Key      string           `json:"key"`
	Answer   string           `json:"answer"`
	Declared catalog.Severity `json:"declared,omitempty"`
	Inferred Classification   `json:"inferred"`
	Message  string           `json:"message"`
}

// LintCatalog compares every declared severity with what the phrase rule
// infers from the result text. A disagreement involving a blocker is high
// severity because it changes whether the score is zeroed.
func LintCatalog(c *catalog.Catalog) []LintFinding {
	var findings []LintFinding
	for _, p := range c.Paths() {
		sets := append(append([]catalog.QuestionSet{}, p.Base...), p.SubPaths...)
		for _, set := range sets {
			for _, q := range set.Questions {
				key := set.Prefix + ":" + q.ID
				for _, o := range q.Options {
					findings = append(findings, lintOption(p.ID, key, o)...)
				}
			}
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return severityRank(findings[i].Severity) < severityRank(findings[j].Severity)
	})
	return findings
}

func lintOption(pathID, key string, o catalog.Option) []LintFinding {
	var out []LintFinding
	inferred := ClassifyText(o.Result.Text)
	base := LintFinding{
		Path:     pathID,
		Key:      key,
		Answer:   o.Value,
		Declared: o.Result.Severity,
		Inferred: inferred,
	}

	if o.Result.Severity == "" {
		f := base
		f.Severity = LintLow
		f.Kind = LintUndeclaredSeverity
		f.Message = fmt.Sprintf("no declared severity; phrase reads as %s", inferred)
		out = append(out, f)
	} else if Classification(o.Result.Severity) != inferred {
		f := base
		f.Kind = LintSeverityMismatch
		f.Severity = LintMedium
		if o.Result.Severity == catalog.SeverityBlocker || inferred == Blocker {
			f.Severity = LintHigh
		}
		f.Message = fmt.Sprintf("declared %s but phrase reads as %s", o.Result.Severity, inferred)
		out = append(out, f)
	}

	if triggers := phraseTriggers(o.Result.Text); len(triggers) > 1 {
		f := base
		f.Severity = LintMedium
		f.Kind = LintAmbiguousPhrase
		f.Message = fmt.Sprintf("phrase contains several triggers: %s", strings.Join(triggers, ", "))
		out = append(out, f)
	}
	return out
}

func phraseTriggers(text string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, p := range BlockerPhrases {
		if strings.Contains(lower, p) {
			hits = append(hits, p)
		}
	}
	if strings.Contains(lower, CautionMarker) {
		hits = append(hits, CautionMarker)
	}
	return hits
}

func severityRank(s LintSeverity) int {
	switch s {
	case LintHigh:
		return 0
	case LintMedium:
		return 1
	default:
		return 2
	}
}

// HasHigh reports whether any finding is high severity.
func HasHigh(findings []LintFinding) bool {
	for _, f := range findings {
		if f.Severity == LintHigh {
			return true
		}
	}
	return false
}
