// Package history keeps a local SQLite log of readiness evaluations run
// from the CLI, so a consultant can see how an assessment's score moved.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vcfready/vcfready/pkg/readiness"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Record is one logged evaluation.
type Record struct {
	ID         int64     `json:"id"`
	Ledger     string    `json:"ledger"` // ledger file or assessment ID
	Classifier string    `json:"classifier"`
	Score      int       `json:"score"`
	Label      string    `json:"label"`
	Answered   int       `json:"answered"`
	Blockers   int       `json:"blockers"`
	Warnings   int       `json:"warnings"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewRecord summarizes an evaluation result for the log.
func NewRecord(ledgerRef, classifier string, r *readiness.Result) Record {
	return Record{
		Ledger:     ledgerRef,
		Classifier: classifier,
		Score:      r.Score,
		Label:      r.Label,
		Answered:   r.Answered,
		Blockers:   len(r.Summary.Blockers),
		Warnings:   len(r.Summary.Warnings),
	}
}

// Store is a SQLite-backed evaluation log.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("history: create data dir: %w", err)
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migration: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS evaluations (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			ledger     TEXT NOT NULL,
			classifier TEXT NOT NULL DEFAULT 'phrase',
			score      INTEGER NOT NULL,
			label      TEXT NOT NULL,
			answered   INTEGER NOT NULL,
			blockers   INTEGER NOT NULL DEFAULT 0,
			warnings   INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_evaluations_ledger ON evaluations(ledger, id);
	`)
	return err
}

// Add appends a record and returns its ID.
func (s *Store) Add(ctx context.Context, r Record) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO evaluations (ledger, classifier, score, label, answered, blockers, warnings, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Ledger, r.Classifier, r.Score, r.Label, r.Answered, r.Blockers, r.Warnings,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("history: insert: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit records, newest first. A non-empty ledgerRef
// restricts the result to that ledger.
func (s *Store) Recent(ctx context.Context, ledgerRef string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, ledger, classifier, score, label, answered, blockers, warnings, created_at
		FROM evaluations`
	args := []any{}
	if ledgerRef != "" {
		query += ` WHERE ledger = ?`
		args = append(args, ledgerRef)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r       Record
			created string
		)
		if err := rows.Scan(&r.ID, &r.Ledger, &r.Classifier, &r.Score, &r.Label,
			&r.Answered, &r.Blockers, &r.Warnings, &created); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("history: parse time %q: %w", created, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
