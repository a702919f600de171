package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes a ledger to disk as JSON.
func Save(path string, l *Ledger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for ledger: %w", err)
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	return nil
}

// Load reads a ledger from disk.
func Load(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	l := New()
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("unmarshaling ledger: %w", err)
	}

	return l, nil
}

// LoadOrNew reads a ledger from disk, returning an empty one if the file
// does not exist.
func LoadOrNew(path string) (*Ledger, error) {
	l, err := Load(path)
	if err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			return New(), nil
		}
		return nil, err
	}
	return l, nil
}
