package readiness

import "math"

// WarningThreshold is the answered count at which an incomplete assessment
// is labelled for review instead of not ready.
const WarningThreshold = 6

// LabelFor derives the status label. Ready depends only on the rounded
// score; below that the answered count picks between warning and not ready.
// With nothing answered the vacuous 100 score is still labelled not ready.
func LabelFor(score float64, answered int) string {
	if answered == 0 {
		return LabelNotReady
	}
	if math.Round(score) >= 100 {
		return LabelReady
	}
	if answered >= WarningThreshold {
		return LabelWarning
	}
	return LabelNotReady
}

// CoverageFor maps the answered count onto the dashboard coverage status:
// 0-5 not ready, 6-8 warning, 9 or more ready.
func CoverageFor(answered int) Coverage {
	switch {
	case answered >= 9:
		return CoverageReady
	case answered >= 6:
		return CoverageWarning
	default:
		return CoverageNotReady
	}
}
