// Package catalog holds the VCF 9.0 readiness question sets, keyed by
// deployment path. A Catalog is immutable once built.
package catalog

// Kind is the answer shape of a question.
type Kind string

const (
	KindBoolean Kind = "boolean"
	KindSelect  Kind = "select"
)

// Boolean answer values.
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// Severity is the explicit classification declared for an answer result.
// An empty Severity means "undeclared".
type Severity string

const (
	SeverityBlocker Severity = "blocker"
	SeverityCaution Severity = "caution"
	SeverityPass    Severity = "pass"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityBlocker, SeverityCaution, SeverityPass:
		return true
	}
	return false
}

// Result is what an answer leads to.
type Result struct {
	Text     string   `json:"text" yaml:"text"`
	Severity Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
}

// Option is one selectable answer of a question.
type Option struct {
	Value  string `json:"value" yaml:"value"`
	Result Result `json:"result" yaml:"result"`
}

// Question is a single catalog question.
type Question struct {
	ID       string   `json:"id" yaml:"id"`
	Text     string   `json:"text" yaml:"text"`
	Category string   `json:"category" yaml:"category"`
	Kind     Kind     `json:"kind" yaml:"kind"`
	Options  []Option `json:"options" yaml:"options"`
}

// ResultFor returns the result for the given answer value.
func (q Question) ResultFor(answer string) (Result, bool) {
	for _, o := range q.Options {
		if o.Value == answer {
			return o.Result, true
		}
	}
	return Result{}, false
}

// Answers lists the valid answer values in catalog order.
func (q Question) Answers() []string {
	out := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		out = append(out, o.Value)
	}
	return out
}

// Consideration is one bullet of customer-facing guidance.
type Consideration struct {
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Text string `json:"text" yaml:"text"`
}

// DeliverySection groups delivery notes under a heading.
type DeliverySection struct {
	Title string   `json:"title" yaml:"title"`
	Icon  string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Items []string `json:"items" yaml:"items"`
}

// QuestionSet is a list of questions answered under one ledger prefix.
type QuestionSet struct {
	Prefix    string     `json:"prefix" yaml:"prefix"`
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Path is a deployment path. Base sets are always asked; SubPaths are
// opt-in component sets (keyed by their prefix).
type Path struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description" yaml:"description"`
	Customer    []Consideration   `json:"customer,omitempty" yaml:"customer,omitempty"`
	Delivery    []DeliverySection `json:"delivery,omitempty" yaml:"delivery,omitempty"`
	Base        []QuestionSet     `json:"base" yaml:"base"`
	SubPaths    []QuestionSet     `json:"sub_paths,omitempty" yaml:"sub_paths,omitempty"`
}

// SubPath returns the opt-in set with the given prefix.
func (p *Path) SubPath(prefix string) (*QuestionSet, bool) {
	for i := range p.SubPaths {
		if p.SubPaths[i].Prefix == prefix {
			return &p.SubPaths[i], true
		}
	}
	return nil, false
}

// PrefixedQuestion is a question paired with the ledger prefix it is
// answered under.
type PrefixedQuestion struct {
	Prefix string `json:"prefix"`
	Question
}
