package readiness

import (
	"math"
	"sort"

	"github.com/vcfready/vcfready/pkg/ledger"
)

// Engine evaluates ledgers. An Engine holds no per-evaluation state and is
// safe for concurrent use.
type Engine struct {
	classifier Classifier
	order      map[string]int
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier replaces the default phrase classifier.
func WithClassifier(c Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.classifier = c
		}
	}
}

// WithOrder sets the display rank of ledger keys ("prefix:questionId"),
// normally catalog.Order(). Unranked keys sort after ranked ones, by key.
func WithOrder(order map[string]int) Option {
	return func(e *Engine) { e.order = order }
}

// NewEngine creates an evaluator. Without options it classifies by phrase.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{classifier: PhraseClassifier{}}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Classifier returns the classifier in use.
func (e *Engine) Classifier() Classifier { return e.classifier }

// Evaluate scores a ledger. It never fails; a nil ledger is empty.
func (e *Engine) Evaluate(l *ledger.Ledger) *Result {
	entries := e.sorted(l.Entries())

	result := &Result{
		Answered:        len(entries),
		Classifications: make(map[string]Classification, len(entries)),
		Summary: Summary{
			Blockers: []SummaryItem{},
			Warnings: []SummaryItem{},
			GoodToGo: []SummaryItem{},
		},
		Gaps: []string{},
	}

	for _, entry := range entries {
		c := e.classifier.Classify(entry)
		key := entry.Key().String()
		result.Classifications[key] = c
		result.MaxScore += 2
		result.TotalScore += c.Points()

		item := summaryItem(entry)
		switch c {
		case Blocker:
			result.HasBlocker = true
			result.Summary.Blockers = append(result.Summary.Blockers, item)
			result.Gaps = append(result.Gaps, item.Question)
		case Caution:
			result.Summary.Warnings = append(result.Summary.Warnings, item)
		default:
			result.Summary.GoodToGo = append(result.Summary.GoodToGo, item)
		}
	}

	result.Score = computeScore(result.TotalScore, result.MaxScore, result.HasBlocker)
	result.Label = LabelFor(float64(result.Score), result.Answered)
	result.Coverage = CoverageFor(result.Answered)
	result.Verdict = verdictFor(result.Summary)

	return result
}

// computeScore applies the scoring rule: any blocker zeroes the score, an
// empty ledger is fully ready, otherwise the rounded percentage.
func computeScore(total, max int, hasBlocker bool) int {
	switch {
	case hasBlocker:
		return 0
	case max == 0:
		return 100
	default:
		return int(math.Round(float64(total) / float64(max) * 100))
	}
}

func (e *Engine) sorted(entries []ledger.Entry) []ledger.Entry {
	if len(e.order) == 0 {
		return entries
	}
	sort.SliceStable(entries, func(i, j int) bool {
		ki, kj := entries[i].Key().String(), entries[j].Key().String()
		ri, oki := e.order[ki]
		rj, okj := e.order[kj]
		switch {
		case oki && okj:
			return ri < rj
		case oki != okj:
			return oki
		default:
			return ki < kj
		}
	})
	return entries
}

func verdictFor(s Summary) Verdict {
	switch {
	case len(s.Blockers) > 0:
		return VerdictBlocked
	case len(s.Warnings) > 0:
		return VerdictReview
	case len(s.GoodToGo) > 0:
		return VerdictClear
	default:
		return VerdictNone
	}
}

var defaultEngine = NewEngine()

// Evaluate scores a ledger with the phrase classifier.
func Evaluate(l *ledger.Ledger) *Result {
	return defaultEngine.Evaluate(l)
}
