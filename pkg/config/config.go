// Package config handles loading and managing vcfready configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for vcfready.
type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog"`
	Readiness ReadinessConfig `yaml:"readiness"`
	Storage   StorageConfig   `yaml:"storage"`
}

// CatalogConfig selects the question catalog.
type CatalogConfig struct {
	Path string `yaml:"path"` // YAML catalog file; empty means built-in
}

// ReadinessConfig controls evaluation.
type ReadinessConfig struct {
	Classifier string `yaml:"classifier"` // phrase or severity
}

// StorageConfig controls where rendered reports are written.
type StorageConfig struct {
	Backend  string `yaml:"backend"` // local, s3, gcs
	LocalDir string `yaml:"local_dir"`
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"` // S3-compatible endpoint override
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Readiness: ReadinessConfig{
			Classifier: "phrase",
		},
		Storage: StorageConfig{
			Backend: "local",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Readiness.Classifier {
	case "", "phrase", "severity":
	default:
		return fmt.Errorf("readiness.classifier: unknown value %q", c.Readiness.Classifier)
	}
	switch c.Storage.Backend {
	case "", "local":
	case "s3", "gcs":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage.bucket is required for the %s backend", c.Storage.Backend)
		}
	default:
		return fmt.Errorf("storage.backend: unknown value %q", c.Storage.Backend)
	}
	return nil
}

// FindConfigFile looks for .vcfready/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".vcfready", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the per-user vcfready data directory,
// ~/.cache/vcfready.
func CacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "vcfready")
}

// ReportDir returns the default local report directory.
func ReportDir() string {
	return filepath.Join(CacheDir(), "reports")
}

// HistoryPath returns the evaluation history database path.
func HistoryPath() string {
	return filepath.Join(CacheDir(), "history.db")
}

// LedgerPath returns the default ledger file for a named assessment.
func LedgerPath(name string) string {
	return filepath.Join(CacheDir(), "ledgers", slug(name)+".json")
}

// slug makes a filesystem-safe file name from an assessment name.
func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "default"
	}
	return string(out)
}
