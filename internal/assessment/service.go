package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vcfready/vcfready/internal/blob"
	"github.com/vcfready/vcfready/pkg/catalog"
	"github.com/vcfready/vcfready/pkg/ledger"
	"github.com/vcfready/vcfready/pkg/readiness"
)

// Service runs assessment sessions against a catalog.
type Service struct {
	store   Store
	blobs   blob.Storage
	catalog *catalog.Catalog
	engine  *readiness.Engine
	logger  *zap.Logger

	// mu serializes read-modify-write cycles against the store.
	mu  sync.Mutex
	now func() time.Time
}

// NewService creates a Service. A nil catalog means the built-in one, a nil
// engine classifies by phrase in catalog order, and a nil logger discards.
func NewService(store Store, blobs blob.Storage, cat *catalog.Catalog, engine *readiness.Engine, logger *zap.Logger) *Service {
	if cat == nil {
		cat = catalog.Default()
	}
	if engine == nil {
		engine = readiness.NewEngine(readiness.WithOrder(cat.Order()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   store,
		blobs:   blobs,
		catalog: cat,
		engine:  engine,
		logger:  logger,
		now:     time.Now,
	}
}

// Catalog returns the catalog the service answers against.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// Start creates a new assessment on a deployment path with an empty ledger.
func (s *Service) Start(ctx context.Context, customer, pathID string) (*Assessment, error) {
	if _, ok := s.catalog.Path(pathID); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, pathID)
	}
	now := s.now().UTC()
	a := &Assessment{
		ID:        uuid.NewString(),
		Customer:  customer,
		PathID:    pathID,
		SubPaths:  []string{},
		Ledger:    ledger.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}
	s.logger.Info("assessment started",
		zap.String("id", a.ID),
		zap.String("customer", customer),
		zap.String("path", pathID))
	return a, nil
}

// Get loads an assessment.
func (s *Service) Get(ctx context.Context, id string) (*Assessment, error) {
	return s.store.Get(ctx, id)
}

// List returns all stored assessments, most recently updated first.
func (s *Service) List(ctx context.Context) ([]*Assessment, error) {
	return s.store.List(ctx)
}

// ChangePath moves the assessment to another path. Sub-paths and answers
// are discarded since they belong to the old path.
func (s *Service) ChangePath(ctx context.Context, id, pathID string) (*Assessment, error) {
	if _, ok := s.catalog.Path(pathID); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, pathID)
	}
	return s.update(ctx, id, func(a *Assessment) error {
		a.PathID = pathID
		a.SubPaths = []string{}
		a.Ledger.Reset()
		return nil
	})
}

// Reset discards the path, sub-paths and all answers.
func (s *Service) Reset(ctx context.Context, id string) (*Assessment, error) {
	a, err := s.update(ctx, id, func(a *Assessment) error {
		a.PathID = ""
		a.SubPaths = []string{}
		a.Ledger.Reset()
		return nil
	})
	if err == nil {
		s.logger.Info("assessment reset", zap.String("id", id))
	}
	return a, err
}

// SelectSubPath adds a sub-path's questions to the assessment. Selecting an
// already selected sub-path is a no-op.
func (s *Service) SelectSubPath(ctx context.Context, id, prefix string) (*Assessment, error) {
	return s.update(ctx, id, func(a *Assessment) error {
		p, err := s.path(a)
		if err != nil {
			return err
		}
		if _, ok := p.SubPath(prefix); !ok {
			return fmt.Errorf("%w: %q on %s", ErrSubPathNotAllowed, prefix, p.ID)
		}
		if a.HasSubPath(prefix) {
			return nil
		}
		// keep catalog order
		selected := []string{}
		for _, set := range p.SubPaths {
			if set.Prefix == prefix || a.HasSubPath(set.Prefix) {
				selected = append(selected, set.Prefix)
			}
		}
		a.SubPaths = selected
		return nil
	})
}

// ClearSubPath deselects a sub-path and deletes the answers given under it.
func (s *Service) ClearSubPath(ctx context.Context, id, prefix string) (*Assessment, error) {
	return s.update(ctx, id, func(a *Assessment) error {
		p, err := s.path(a)
		if err != nil {
			return err
		}
		if _, ok := p.SubPath(prefix); !ok {
			return fmt.Errorf("%w: %q on %s", ErrSubPathNotAllowed, prefix, p.ID)
		}
		kept := []string{}
		for _, sp := range a.SubPaths {
			if sp != prefix {
				kept = append(kept, sp)
			}
		}
		a.SubPaths = kept
		n := a.Ledger.DeletePrefix(prefix)
		s.logger.Debug("sub-path cleared",
			zap.String("id", a.ID),
			zap.String("sub_path", prefix),
			zap.Int("removed", n))
		return nil
	})
}

// Answer records an answer, copying the result phrase from the catalog.
func (s *Service) Answer(ctx context.Context, id, prefix, questionID, answer string) (ledger.Entry, error) {
	var entry ledger.Entry
	_, err := s.update(ctx, id, func(a *Assessment) error {
		q, err := s.question(a, prefix, questionID)
		if err != nil {
			return err
		}
		e, err := a.Ledger.Answer(prefix, q, answer)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
		}
		entry = e
		return nil
	})
	return entry, err
}

// SetNotes attaches free-text notes to a question. Notes on an unanswered
// question create an entry without a result.
func (s *Service) SetNotes(ctx context.Context, id, prefix, questionID, notes string) (ledger.Entry, error) {
	var entry ledger.Entry
	_, err := s.update(ctx, id, func(a *Assessment) error {
		if _, err := s.question(a, prefix, questionID); err != nil {
			return err
		}
		entry = a.Ledger.SetNotes(ledger.Key{Prefix: prefix, QuestionID: questionID}, notes)
		return nil
	})
	return entry, err
}

// Questions lists the questions currently asked in the assessment.
func (s *Service) Questions(ctx context.Context, id string) ([]catalog.PrefixedQuestion, error) {
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.path(a); err != nil {
		return nil, err
	}
	return s.catalog.Questions(a.PathID, a.SubPaths...)
}

// Evaluate scores the assessment's ledger.
func (s *Service) Evaluate(ctx context.Context, id string) (*readiness.Result, error) {
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.engine.Evaluate(a.Ledger), nil
}

// EvaluateLedger scores a ledger that is not stored.
func (s *Service) EvaluateLedger(l *ledger.Ledger) *readiness.Result {
	return s.engine.Evaluate(l)
}

// Export renders a Markdown report of the assessment and writes it, with a
// copy of the ledger, to blob storage.
func (s *Service) Export(ctx context.Context, id, title string) (*Report, error) {
	if s.blobs == nil {
		return nil, ErrNoReportStorage
	}
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	result := s.engine.Evaluate(a.Ledger)

	if title == "" && a.Customer != "" {
		title = fmt.Sprintf("%s: VCF 9.0 Readiness (%s, Score %d%%)", a.Customer, result.Label, result.Score)
	}
	ledgerJSON, err := json.Marshal(a.Ledger)
	if err != nil {
		return nil, fmt.Errorf("marshal ledger: %w", err)
	}
	rep, err := PublishReport(ctx, s.blobs, a.ID, title, ledgerJSON, result, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("report exported",
		zap.String("id", a.ID),
		zap.String("report", rep.ID),
		zap.Int("score", result.Score),
		zap.String("label", result.Label))
	return rep, nil
}

// GetReport loads a stored report. Report IDs are UUIDs; anything else is
// reported as not found without touching storage.
func (s *Service) GetReport(ctx context.Context, reportID string) (*Report, error) {
	if _, err := uuid.Parse(reportID); err != nil {
		return nil, fmt.Errorf("report %q: %w", reportID, ErrNotFound)
	}
	if s.blobs == nil {
		return nil, fmt.Errorf("report %s: %w", reportID, ErrNotFound)
	}
	data, err := s.blobs.GetReport(ctx, reportID)
	if errors.Is(err, blob.ErrNotFound) || errors.Is(err, blob.ErrInvalidKey) {
		return nil, fmt.Errorf("report %s: %w", reportID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &rep, nil
}

func (s *Service) update(ctx context.Context, id string, fn func(a *Assessment) error) (*Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(a); err != nil {
		return nil, err
	}
	a.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}
	return a, nil
}

func (s *Service) path(a *Assessment) (*catalog.Path, error) {
	if a.PathID == "" {
		return nil, fmt.Errorf("%w: no path selected", ErrUnknownPath)
	}
	p, ok := s.catalog.Path(a.PathID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, a.PathID)
	}
	return p, nil
}

// question finds a question asked on the assessment's path. Sub-path
// questions are only reachable once the sub-path is selected.
func (s *Service) question(a *Assessment, prefix, questionID string) (catalog.Question, error) {
	p, err := s.path(a)
	if err != nil {
		return catalog.Question{}, err
	}
	var set *catalog.QuestionSet
	for i := range p.Base {
		if p.Base[i].Prefix == prefix {
			set = &p.Base[i]
		}
	}
	if set == nil {
		if sub, ok := p.SubPath(prefix); ok {
			if !a.HasSubPath(prefix) {
				return catalog.Question{}, fmt.Errorf("%w: %q is not selected", ErrSubPathNotAllowed, prefix)
			}
			set = sub
		}
	}
	if set == nil {
		return catalog.Question{}, fmt.Errorf("%w: no question set %q on %s", ErrUnknownQuestion, prefix, p.ID)
	}
	for _, q := range set.Questions {
		if q.ID == questionID {
			return q, nil
		}
	}
	return catalog.Question{}, fmt.Errorf("%w: %s:%s", ErrUnknownQuestion, prefix, questionID)
}
