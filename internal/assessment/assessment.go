// Package assessment manages readiness assessment sessions: the chosen
// deployment path, selected sub-paths, and the answer ledger, persisted in a
// pluggable Store.
package assessment

import (
	"context"
	"errors"
	"time"

	"github.com/vcfready/vcfready/pkg/ledger"
)

var (
	ErrNotFound          = errors.New("assessment not found")
	ErrUnknownPath       = errors.New("unknown deployment path")
	ErrUnknownQuestion   = errors.New("unknown question")
	ErrInvalidAnswer     = errors.New("invalid answer")
	ErrSubPathNotAllowed = errors.New("sub-path not allowed")
	ErrNoReportStorage   = errors.New("no report storage configured")
)

// Assessment is one customer questionnaire session.
type Assessment struct {
	ID        string         `json:"id"`
	Customer  string         `json:"customer,omitempty"`
	PathID    string         `json:"path_id,omitempty"`
	SubPaths  []string       `json:"sub_paths"`
	Ledger    *ledger.Ledger `json:"ledger"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// HasSubPath reports whether prefix is a selected sub-path.
func (a *Assessment) HasSubPath(prefix string) bool {
	for _, s := range a.SubPaths {
		if s == prefix {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so stores never share ledgers with callers.
func (a *Assessment) Clone() *Assessment {
	c := *a
	c.SubPaths = append([]string{}, a.SubPaths...)
	c.Ledger = a.Ledger.Clone()
	return &c
}

// Store persists assessments. Get returns ErrNotFound for unknown IDs.
type Store interface {
	Save(ctx context.Context, a *Assessment) error
	Get(ctx context.Context, id string) (*Assessment, error)
	List(ctx context.Context) ([]*Assessment, error)
}

// Report is a rendered readiness report kept in blob storage.
type Report struct {
	ID           string    `json:"id"`
	AssessmentID string    `json:"assessment_id"`
	Title        string    `json:"title"`
	Conclusion   string    `json:"conclusion"`
	Score        int       `json:"score"`
	Label        string    `json:"label"`
	Body         string    `json:"body"` // Markdown
	ExportID     string    `json:"export_id"`
	CreatedAt    time.Time `json:"created_at"`
}
