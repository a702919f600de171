package readiness_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vcfready/vcfready/pkg/catalog"
	"github.com/vcfready/vcfready/pkg/readiness"
)

func TestLintBuiltinCatalog(t *testing.T) {
	findings := readiness.LintCatalog(catalog.Default())

	var got []string
	for _, f := range findings {
		if f.Kind != readiness.LintSeverityMismatch {
			t.Errorf("unexpected finding %+v", f)
			continue
		}
		if f.Severity != readiness.LintHigh {
			t.Errorf("%s=%s: severity %s, want high", f.Key, f.Answer, f.Severity)
		}
		if f.Declared != catalog.SeverityBlocker || f.Inferred != readiness.Pass {
			t.Errorf("%s=%s: declared %s inferred %s", f.Key, f.Answer, f.Declared, f.Inferred)
		}
		got = append(got, f.Key+"="+f.Answer)
	}
	sort.Strings(got)

	want := []string{
		"generic:g-firmware=no",
		"greenfield:gf-dns=no",
		"greenfield:gf-min-hosts=no",
		"greenfield:gf-ntp=no",
		"greenfield:gf-software=no",
		"greenfield:gf-vlan-planning=no",
		"vcfUpgrade:vcf3-firmware=no",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lint findings mismatch (-want +got):\n%s", diff)
	}
	if !readiness.HasHigh(findings) {
		t.Error("expected HasHigh")
	}
}

func TestLintCustomCatalog(t *testing.T) {
	c, err := catalog.New([]catalog.Path{{
		ID: "p",
		Base: []catalog.QuestionSet{{
			Prefix: "x",
			Questions: []catalog.Question{{
				ID:   "q1",
				Kind: catalog.KindSelect,
				Options: []catalog.Option{
					{Value: "a", Result: catalog.Result{Text: "You cannot deploy -- Caution", Severity: catalog.SeverityBlocker}},
					{Value: "b", Result: catalog.Result{Text: "fine"}},
					{Value: "c", Result: catalog.Result{Text: "fine -- caution", Severity: catalog.SeverityPass}},
				},
			}},
		}},
	}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	findings := readiness.LintCatalog(c)
	kinds := map[string]readiness.LintSeverity{}
	for _, f := range findings {
		kinds[f.Answer+"/"+f.Kind] = f.Severity
	}
	want := map[string]readiness.LintSeverity{
		"a/" + readiness.LintAmbiguousPhrase:    readiness.LintMedium,
		"b/" + readiness.LintUndeclaredSeverity: readiness.LintLow,
		"c/" + readiness.LintSeverityMismatch:   readiness.LintMedium,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
	if readiness.HasHigh(findings) {
		t.Error("no high findings expected")
	}
	// sorted most severe first
	if findings[len(findings)-1].Severity != readiness.LintLow {
		t.Errorf("last finding severity = %s, want low", findings[len(findings)-1].Severity)
	}
}
