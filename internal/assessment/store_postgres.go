package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vcfready/vcfready/pkg/ledger"
)

// PostgresStore persists assessments in the assessments table created by
// platform.AutoMigrate. Sub-paths and the ledger are stored as JSONB.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed Store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const (
	upsertAssessmentSQL = `INSERT INTO assessments (id, customer, path_id, sub_paths, ledger, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE
		   SET customer = EXCLUDED.customer,
		       path_id = EXCLUDED.path_id,
		       sub_paths = EXCLUDED.sub_paths,
		       ledger = EXCLUDED.ledger,
		       updated_at = EXCLUDED.updated_at`

	selectAssessmentSQL = `SELECT id, customer, path_id, sub_paths, ledger, created_at, updated_at
		 FROM assessments WHERE id = $1`

	listAssessmentsSQL = `SELECT id, customer, path_id, sub_paths, ledger, created_at, updated_at
		 FROM assessments ORDER BY updated_at DESC, id`
)

// Save creates or updates an assessment.
func (s *PostgresStore) Save(ctx context.Context, a *Assessment) error {
	subPaths, err := json.Marshal(nonNil(a.SubPaths))
	if err != nil {
		return fmt.Errorf("marshal sub-paths: %w", err)
	}
	l, err := json.Marshal(a.Ledger)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	_, err = s.db.ExecContext(ctx, upsertAssessmentSQL,
		a.ID, a.Customer, a.PathID, subPaths, l, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert assessment %s: %w", a.ID, err)
	}
	return nil
}

// Get loads an assessment by ID. The id column is a UUID, so malformed IDs
// are not found rather than a query error.
func (s *PostgresStore) Get(ctx context.Context, id string) (*Assessment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("assessment %q: %w", id, ErrNotFound)
	}
	a, err := scanAssessment(s.db.QueryRowContext(ctx, selectAssessmentSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("assessment %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get assessment %s: %w", id, err)
	}
	return a, nil
}

// List returns all assessments, most recently updated first.
func (s *PostgresStore) List(ctx context.Context) ([]*Assessment, error) {
	rows, err := s.db.QueryContext(ctx, listAssessmentsSQL)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var out []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (*Assessment, error) {
	var (
		a        Assessment
		subPaths []byte
		l        []byte
		created  time.Time
		updated  time.Time
	)
	if err := row.Scan(&a.ID, &a.Customer, &a.PathID, &subPaths, &l, &created, &updated); err != nil {
		return nil, err
	}
	if err := decodeColumns(&a, subPaths, l); err != nil {
		return nil, err
	}
	a.CreatedAt = created
	a.UpdatedAt = updated
	return &a, nil
}

func decodeColumns(a *Assessment, subPaths, l []byte) error {
	a.SubPaths = []string{}
	if len(subPaths) > 0 {
		if err := json.Unmarshal(subPaths, &a.SubPaths); err != nil {
			return fmt.Errorf("decode sub-paths: %w", err)
		}
	}
	a.Ledger = ledger.New()
	if len(l) > 0 {
		if err := json.Unmarshal(l, a.Ledger); err != nil {
			return fmt.Errorf("decode ledger: %w", err)
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
