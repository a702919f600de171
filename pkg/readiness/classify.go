package readiness

import (
	"fmt"
	"strings"

	"github.com/vcfready/vcfready/pkg/catalog"
	"github.com/vcfready/vcfready/pkg/ledger"
)

// BlockerPhrases mark a result text as a blocker when any of them appears,
// case-insensitively.
var BlockerPhrases = []string{
	"cannot deploy",
	"update to",
	"upgrade aria operations for networks",
	"you cannot upgrade",
}

// CautionMarker marks a result text as a caution.
const CautionMarker = "-- caution"

// Classifier assigns a classification to a ledger entry.
type Classifier interface {
	// Name returns the machine-readable classifier identifier.
	Name() string
	// Classify buckets a single entry.
	Classify(e ledger.Entry) Classification
}

// PhraseClassifier infers classification from the result text.
type PhraseClassifier struct{}

func (PhraseClassifier) Name() string { return "phrase" }

func (PhraseClassifier) Classify(e ledger.Entry) Classification {
	return ClassifyText(e.Result)
}

// ClassifyText applies the phrase rule to a result text. Empty text passes.
func ClassifyText(text string) Classification {
	lower := strings.ToLower(text)
	for _, p := range BlockerPhrases {
		if strings.Contains(lower, p) {
			return Blocker
		}
	}
	if strings.Contains(lower, CautionMarker) {
		return Caution
	}
	return Pass
}

// SeverityClassifier uses the severity copied from the catalog at answer
// time and falls back to the phrase rule for entries without one.
type SeverityClassifier struct{}

func (SeverityClassifier) Name() string { return "severity" }

func (SeverityClassifier) Classify(e ledger.Entry) Classification {
	switch e.Severity {
	case catalog.SeverityBlocker:
		return Blocker
	case catalog.SeverityCaution:
		return Caution
	case catalog.SeverityPass:
		return Pass
	default:
		return ClassifyText(e.Result)
	}
}

// ClassifierByName resolves a configured classifier name. Empty means phrase.
func ClassifierByName(name string) (Classifier, error) {
	switch name {
	case "", "phrase":
		return PhraseClassifier{}, nil
	case "severity":
		return SeverityClassifier{}, nil
	default:
		return nil, fmt.Errorf("unknown classifier %q (want phrase or severity)", name)
	}
}
