package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Readiness.Classifier != "phrase" {
		t.Errorf("expected default classifier 'phrase', got %q", cfg.Readiness.Classifier)
	}
	if cfg.Storage.Backend != "local" {
		t.Errorf("expected default backend 'local', got %q", cfg.Storage.Backend)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("expected built-in catalog by default, got %q", cfg.Catalog.Path)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		missing bool
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "non-existent file returns defaults",
			missing: true,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Readiness.Classifier != "phrase" {
					t.Errorf("expected default classifier, got %q", cfg.Readiness.Classifier)
				}
			},
		},
		{
			name: "valid YAML overrides defaults",
			yaml: `
catalog:
  path: ./catalog.yaml
readiness:
  classifier: severity
storage:
  backend: s3
  bucket: vcf-reports
  region: us-east-1
  endpoint: http://localhost:9000
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Catalog.Path != "./catalog.yaml" {
					t.Errorf("expected catalog path, got %q", cfg.Catalog.Path)
				}
				if cfg.Readiness.Classifier != "severity" {
					t.Errorf("expected classifier 'severity', got %q", cfg.Readiness.Classifier)
				}
				if cfg.Storage.Backend != "s3" || cfg.Storage.Bucket != "vcf-reports" {
					t.Errorf("unexpected storage %+v", cfg.Storage)
				}
				if cfg.Storage.Endpoint != "http://localhost:9000" {
					t.Errorf("expected endpoint override, got %q", cfg.Storage.Endpoint)
				}
			},
		},
		{
			name:    "invalid YAML returns error",
			yaml:    "{{invalid yaml",
			wantErr: true,
		},
		{
			name:    "unknown classifier",
			yaml:    "readiness:\n  classifier: regex\n",
			wantErr: true,
		},
		{
			name:    "bucket required for gcs",
			yaml:    "storage:\n  backend: gcs\n",
			wantErr: true,
		},
		{
			name:    "unknown backend",
			yaml:    "storage:\n  backend: ftp\n",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")

			if !tc.missing {
				if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
					t.Fatalf("write test config: %v", err)
				}
			}

			cfg, err := Load(path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.check != nil {
				tc.check(t, cfg)
			}
		})
	}
}

func TestDirectoryFunctions(t *testing.T) {
	base := CacheDir()
	if !strings.HasSuffix(base, filepath.Join(".cache", "vcfready")) {
		t.Errorf("CacheDir should end with .cache/vcfready, got %q", base)
	}
	if got := ReportDir(); got != filepath.Join(base, "reports") {
		t.Errorf("ReportDir = %q", got)
	}
	if got := HistoryPath(); got != filepath.Join(base, "history.db") {
		t.Errorf("HistoryPath = %q", got)
	}
	if got := LedgerPath("Acme Corp/DC1"); got != filepath.Join(base, "ledgers", "acme_corp_dc1.json") {
		t.Errorf("LedgerPath = %q", got)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "acme-01", want: "acme-01"},
		{name: "upper and spaces", in: "Acme Corp", want: "acme_corp"},
		{name: "empty", in: "", want: "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := slug(tc.in); got != tc.want {
				t.Errorf("slug(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("found in current directory", func(t *testing.T) {
		root := t.TempDir()
		configDir := filepath.Join(root, ".vcfready")
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			t.Fatalf("create config dir: %v", err)
		}
		configPath := filepath.Join(configDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("{}"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		got := FindConfigFile(root)
		if got != configPath {
			t.Errorf("FindConfigFile = %q, want %q", got, configPath)
		}
	})

	t.Run("found in parent directory", func(t *testing.T) {
		root := t.TempDir()
		configDir := filepath.Join(root, ".vcfready")
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			t.Fatalf("create config dir: %v", err)
		}
		configPath := filepath.Join(configDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("{}"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		sub := filepath.Join(root, "a", "b", "c")
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatalf("create sub: %v", err)
		}

		got := FindConfigFile(sub)
		if got != configPath {
			t.Errorf("FindConfigFile = %q, want %q", got, configPath)
		}
	})

	t.Run("not found", func(t *testing.T) {
		root := t.TempDir()
		got := FindConfigFile(root)
		if got != "" {
			t.Errorf("FindConfigFile = %q, want empty", got)
		}
	})
}
