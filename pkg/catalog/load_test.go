package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vcfready/vcfready/pkg/catalog"
)

const sampleCatalog = `
paths:
  - id: lab
    title: Lab Deployment
    description: Small lab bring-up
    base:
      - prefix: lab
        title: Lab
        questions:
          - id: lab-hosts
            text: Are three hosts available?
            category: Hardware
            kind: boolean
            options:
              - value: "yes"
                result:
                  text: Hosts are ready.
                  severity: pass
              - value: "no"
                result:
                  text: You cannot Deploy the lab.
                  severity: blocker
`

func TestParseYAMLCatalog(t *testing.T) {
	c, err := catalog.Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	qs, err := c.Questions("lab")
	if err != nil {
		t.Fatalf("Questions() error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	res, ok := qs[0].ResultFor("no")
	if !ok || res.Severity != catalog.SeverityBlocker {
		t.Errorf("expected blocker result for no, got %+v", res)
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := catalog.Parse([]byte("paths: []\n")); err == nil {
		t.Error("expected error for catalog without paths")
	}
	if _, err := catalog.Parse([]byte("paths: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestMarshalRoundTripsBuiltin(t *testing.T) {
	data, err := catalog.Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	q, ok := c.Lookup(catalog.PrefixGreenfield, "gf-storage")
	if !ok {
		t.Fatal("expected gf-storage after reload")
	}
	if len(q.Options) != 5 {
		t.Errorf("expected 5 storage options, got %d", len(q.Options))
	}
}

func TestLoadOrDefault(t *testing.T) {
	c, err := catalog.LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\") error: %v", err)
	}
	if c != catalog.Default() {
		t.Error("expected built-in catalog for empty path")
	}
	if _, err := catalog.LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing catalog file")
	}
}
