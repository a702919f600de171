package ledger_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vcfready/vcfready/pkg/catalog"
	"github.com/vcfready/vcfready/pkg/ledger"
)

func mustQuestion(t *testing.T, prefix, id string) catalog.Question {
	t.Helper()
	q, ok := catalog.Default().Lookup(prefix, id)
	if !ok {
		t.Fatalf("question %s:%s not in catalog", prefix, id)
	}
	return q
}

func TestKeyStringAndParse(t *testing.T) {
	k := ledger.Key{Prefix: "vsphere", QuestionID: "vs-ver"}
	if k.String() != "vsphere:vs-ver" {
		t.Errorf("String() = %q", k.String())
	}
	got, err := ledger.ParseKey("vsphere:vs-ver")
	if err != nil {
		t.Fatalf("ParseKey() error: %v", err)
	}
	if got != k {
		t.Errorf("ParseKey() = %+v, want %+v", got, k)
	}
	for _, bad := range []string{"", "novalue", ":id", "prefix:"} {
		if _, err := ledger.ParseKey(bad); err == nil {
			t.Errorf("ParseKey(%q) expected error", bad)
		}
	}
}

func TestAnswerCopiesResult(t *testing.T) {
	l := ledger.New()
	q := mustQuestion(t, catalog.PrefixGreenfield, "gf-hcl")

	e, err := l.Answer(catalog.PrefixGreenfield, q, catalog.AnswerNo)
	if err != nil {
		t.Fatalf("Answer() error: %v", err)
	}
	if e.Result != "You cannot Deploy VCF 9.0" {
		t.Errorf("Result = %q", e.Result)
	}
	if e.Severity != catalog.SeverityBlocker {
		t.Errorf("Severity = %s, want blocker", e.Severity)
	}
	if e.Category != "Hardware" || e.Question != q.Text {
		t.Errorf("expected question text and category copied, got %+v", e)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestAnswerRejectsUnknownValue(t *testing.T) {
	l := ledger.New()
	q := mustQuestion(t, catalog.PrefixGreenfield, "gf-storage")
	if _, err := l.Answer(catalog.PrefixGreenfield, q, "iSCSI"); err == nil {
		t.Error("expected error for an option the question does not offer")
	}
	if l.Len() != 0 {
		t.Errorf("failed answer must not record an entry, Len() = %d", l.Len())
	}
}

func TestReanswerKeepsNotes(t *testing.T) {
	l := ledger.New()
	q := mustQuestion(t, catalog.PrefixGeneric, "g-vvol")
	k := ledger.Key{Prefix: catalog.PrefixGeneric, QuestionID: "g-vvol"}

	if _, err := l.Answer(catalog.PrefixGeneric, q, catalog.AnswerYes); err != nil {
		t.Fatal(err)
	}
	l.SetNotes(k, "two arrays still on vVOLs")
	e, err := l.Answer(catalog.PrefixGeneric, q, catalog.AnswerNo)
	if err != nil {
		t.Fatal(err)
	}
	if e.Notes != "two arrays still on vVOLs" {
		t.Errorf("notes lost on re-answer: %q", e.Notes)
	}
	if e.Answer != catalog.AnswerNo || e.Result != "You can upgrade to VCF 9.0" {
		t.Errorf("re-answer did not overwrite: %+v", e)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestSetNotesOnUnansweredKey(t *testing.T) {
	l := ledger.New()
	k := ledger.Key{Prefix: "nsx", QuestionID: "nsx-fed"}
	e := l.SetNotes(k, "ask about federation")
	if e.Result != "" || e.Notes != "ask about federation" {
		t.Errorf("unexpected entry %+v", e)
	}
	if l.Len() != 1 {
		t.Errorf("notes-only entry should count, Len() = %d", l.Len())
	}
}

func TestDeletePrefixAndReset(t *testing.T) {
	l := ledger.New()
	l.Put(ledger.Entry{Prefix: "vsphere", QuestionID: "vs-ver", Result: "x"})
	l.Put(ledger.Entry{Prefix: "vsphere", QuestionID: "vs-elm", Result: "x"})
	l.Put(ledger.Entry{Prefix: "vsphere_extra", QuestionID: "vs-ver", Result: "x"})
	l.Put(ledger.Entry{Prefix: "nsx", QuestionID: "nsx-fed", Result: "x"})

	if n := l.DeletePrefix("vsphere"); n != 2 {
		t.Errorf("DeletePrefix() removed %d, want 2", n)
	}
	if _, ok := l.Get(ledger.Key{Prefix: "vsphere_extra", QuestionID: "vs-ver"}); !ok {
		t.Error("DeletePrefix must match the prefix exactly")
	}
	if !l.Delete(ledger.Key{Prefix: "nsx", QuestionID: "nsx-fed"}) {
		t.Error("Delete() should report a removed entry")
	}
	l.Reset()
	if l.Len() != 0 {
		t.Errorf("Len() after Reset = %d", l.Len())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	l := ledger.New()
	l.Put(ledger.Entry{Prefix: "a", QuestionID: "1", Result: "x"})
	c := l.Clone()
	c.Put(ledger.Entry{Prefix: "a", QuestionID: "2", Result: "y"})
	if l.Len() != 1 || c.Len() != 2 {
		t.Errorf("clone shares state: original %d, clone %d", l.Len(), c.Len())
	}
}

func TestNilLedgerReads(t *testing.T) {
	var l *ledger.Ledger
	if l.Len() != 0 || l.Entries() != nil {
		t.Error("nil ledger should read as empty")
	}
	if _, ok := l.Get(ledger.Key{Prefix: "a", QuestionID: "b"}); ok {
		t.Error("nil ledger has no entries")
	}
}

func TestJSONKeyedByComposite(t *testing.T) {
	l := ledger.New()
	l.Put(ledger.Entry{Prefix: "generic", QuestionID: "g-hw", Answer: "yes", Result: "You can upgrade to VCF 9.0"})

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := raw["generic:g-hw"]; !ok {
		t.Errorf("expected composite key in %s", data)
	}

	// Entries written by hand may omit prefix and id; the key supplies them.
	in := []byte(`{"nsx:nsx-bare": {"result": "Deploy VCF"}}`)
	got := ledger.New()
	if err := json.Unmarshal(in, got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	want := []ledger.Entry{{Prefix: "nsx", QuestionID: "nsx-bare", Result: "Deploy VCF"}}
	if diff := cmp.Diff(want, got.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	if err := json.Unmarshal([]byte(`{"bad": {}}`), ledger.New()); err == nil {
		t.Error("expected error for malformed key")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.json")
	l := ledger.New()
	q := mustQuestion(t, catalog.PrefixVCFUpgrade, "vcf3-vum")
	if _, err := l.Answer(catalog.PrefixVCFUpgrade, q, catalog.AnswerYes); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Save(path, l); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := ledger.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(l.Entries(), got.Entries()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOrNew(t *testing.T) {
	l, err := ledger.LoadOrNew(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadOrNew() error: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("expected empty ledger, got %d entries", l.Len())
	}
}
