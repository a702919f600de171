// Package blob stores rendered readiness reports and ledger exports in
// object storage: the local filesystem, S3, or GCS.
package blob

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a blob does not exist.
var ErrNotFound = errors.New("blob not found")

// ErrInvalidKey is returned for keys that do not name a location inside the
// storage root.
var ErrInvalidKey = errors.New("invalid blob key")

// Storage abstracts blob storage for reports and ledger exports.
type Storage interface {
	PutReport(ctx context.Context, reportID string, data []byte) error
	GetReport(ctx context.Context, reportID string) ([]byte, error)
	PutExport(ctx context.Context, assessmentID, exportID string, data []byte) error
	GetExport(ctx context.Context, assessmentID, exportID string) ([]byte, error)
}

func reportKey(reportID string) string {
	return "reports/" + reportID + ".json"
}

func exportKey(assessmentID, exportID string) string {
	return "assessments/" + assessmentID + "/exports/" + exportID + ".json"
}

// LocalStorage implements Storage using the local filesystem.
// Useful for development, the CLI, and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

// path resolves key under BaseDir. Keys that would escape it are rejected.
func (s *LocalStorage) path(key string) (string, error) {
	rel := filepath.FromSlash(key)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.BaseDir, rel), nil
}

func (s *LocalStorage) put(key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *LocalStorage) get(key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return data, err
}

// PutReport stores a rendered report.
func (s *LocalStorage) PutReport(ctx context.Context, reportID string, data []byte) error {
	return s.put(reportKey(reportID), data)
}

// GetReport retrieves a rendered report.
func (s *LocalStorage) GetReport(ctx context.Context, reportID string) ([]byte, error) {
	return s.get(reportKey(reportID))
}

// PutExport stores a ledger export for an assessment.
func (s *LocalStorage) PutExport(ctx context.Context, assessmentID, exportID string, data []byte) error {
	return s.put(exportKey(assessmentID, exportID), data)
}

// GetExport retrieves a ledger export.
func (s *LocalStorage) GetExport(ctx context.Context, assessmentID, exportID string) ([]byte, error) {
	return s.get(exportKey(assessmentID, exportID))
}
