// Package readiness evaluates an answer ledger into a readiness score,
// a per-answer classification, and a status label.
package readiness

// Classification buckets a single answer.
type Classification string

const (
	Blocker Classification = "blocker"
	Caution Classification = "caution"
	Pass    Classification = "pass"
)

// Points awarded per answer.
func (c Classification) Points() int {
	switch c {
	case Blocker:
		return 0
	case Caution:
		return 1
	default:
		return 2
	}
}

// Status labels.
const (
	LabelReady    = "Ready"
	LabelWarning  = "Warning - Review Required"
	LabelNotReady = "Not Ready"
)

// Coverage is the count-driven questionnaire status shown on dashboards.
// It is independent of Label.
type Coverage string

const (
	CoverageNotReady Coverage = "not-ready"
	CoverageWarning  Coverage = "warning"
	CoverageReady    Coverage = "ready"
)

// Verdict is the closing statement of a readiness summary.
type Verdict string

const (
	VerdictNone    Verdict = "none"    // nothing answered yet
	VerdictBlocked Verdict = "blocked" // at least one blocker
	VerdictReview  Verdict = "review"  // warnings but no blockers
	VerdictClear   Verdict = "clear"   // every answer passed
)

// Result is the outcome of evaluating a ledger. It is recomputed from
// scratch on every evaluation and never mutated afterwards.
type Result struct {
	Score           int                       `json:"score"` // 0-100
	Label           string                    `json:"label"`
	TotalScore      int                       `json:"total_score"`
	MaxScore        int                       `json:"max_score"`
	HasBlocker      bool                      `json:"has_blocker"`
	Answered        int                       `json:"answered"`
	Classifications map[string]Classification `json:"classifications"` // keyed by "prefix:questionId"
	Summary         Summary                   `json:"summary"`
	Gaps            []string                  `json:"gaps"`
	Coverage        Coverage                  `json:"coverage"`
	Verdict         Verdict                   `json:"verdict"`
}

// Summary groups answers by classification for display.
type Summary struct {
	Blockers []SummaryItem `json:"blockers"`
	Warnings []SummaryItem `json:"warnings"`
	GoodToGo []SummaryItem `json:"good_to_go"`
}

// SummaryItem is one answer as it appears in a readiness report.
type SummaryItem struct {
	Key      string `json:"key"`
	Question string `json:"question"`
	Category string `json:"category,omitempty"`
	Answer   string `json:"answer,omitempty"`
	Action   string `json:"action"`
	Notes    string `json:"notes,omitempty"`
}
