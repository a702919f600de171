package readiness

import (
	"regexp"
	"strings"

	"github.com/vcfready/vcfready/pkg/catalog"
	"github.com/vcfready/vcfready/pkg/ledger"
)

var (
	spanMarkup = regexp.MustCompile(`<span.*</span>`)
	inlineLink = regexp.MustCompile(` \(https://.*?\)`)
	cautionTag = regexp.MustCompile(`(?i)-- caution`)
)

const (
	storageQID   = "gf-storage"
	storageLabel = "Primary Storage used:"
)

// CleanQuestion shortens a question prompt for reports: markup, inline links
// and the "Yes or No" suffix are dropped, as are the "Deploy VCF" and
// "Upgrade to VCF 9.0" phrases. The greenfield storage question gets a fixed
// label.
func CleanQuestion(prefix, questionID, text string) string {
	s := spanMarkup.ReplaceAllString(text, "")
	s = inlineLink.ReplaceAllString(s, "")
	s = strings.TrimSpace(strings.ReplaceAll(s, " Yes or No", ""))

	if questionID == storageQID && prefix == catalog.PrefixGreenfield {
		return storageLabel
	}
	s = strings.ReplaceAll(s, "Deploy VCF", "")
	s = strings.ReplaceAll(s, "Upgrade to VCF 9.0", "")
	return strings.TrimSpace(s)
}

// ActionText is the result phrase without its caution marker.
func ActionText(result string) string {
	if loc := cautionTag.FindStringIndex(result); loc != nil {
		result = result[:loc[0]] + result[loc[1]:]
	}
	return strings.TrimSpace(result)
}

func summaryItem(e ledger.Entry) SummaryItem {
	question := e.Question
	if question == "" {
		question = e.QuestionID
	}
	return SummaryItem{
		Key:      e.Key().String(),
		Question: CleanQuestion(e.Prefix, e.QuestionID, question),
		Category: e.Category,
		Answer:   e.Answer,
		Action:   ActionText(e.Result),
		Notes:    e.Notes,
	}
}
