// Package ledger records the answers given during one readiness assessment.
// A Ledger does not validate entries against a catalog; callers copy the
// result phrase in at answer time.
package ledger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vcfready/vcfready/pkg/catalog"
)

// Key identifies an entry: the question set prefix plus the question ID.
type Key struct {
	Prefix     string
	QuestionID string
}

// String returns the composite "prefix:questionId" form.
func (k Key) String() string {
	return k.Prefix + ":" + k.QuestionID
}

// ParseKey splits a composite key. The prefix ends at the first colon.
func ParseKey(s string) (Key, error) {
	prefix, id, ok := strings.Cut(s, ":")
	if !ok || prefix == "" || id == "" {
		return Key{}, fmt.Errorf("invalid ledger key %q", s)
	}
	return Key{Prefix: prefix, QuestionID: id}, nil
}

// Entry is one answered question.
type Entry struct {
	Prefix     string           `json:"prefix"`
	QuestionID string           `json:"question_id"`
	Question   string           `json:"question,omitempty"`
	Category   string           `json:"category,omitempty"`
	Answer     string           `json:"answer,omitempty"`
	Result     string           `json:"result"`
	Severity   catalog.Severity `json:"severity,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

// Key returns the entry's ledger key.
func (e Entry) Key() Key {
	return Key{Prefix: e.Prefix, QuestionID: e.QuestionID}
}

// Ledger maps keys to entries. The zero value is not usable; use New.
type Ledger struct {
	entries map[Key]Entry
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{entries: make(map[Key]Entry)}
}

// Len is the number of recorded entries (the answered count).
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Get returns the entry for k.
func (l *Ledger) Get(k Key) (Entry, bool) {
	if l == nil {
		return Entry{}, false
	}
	e, ok := l.entries[k]
	return e, ok
}

// Put stores e under its key, replacing any previous entry.
func (l *Ledger) Put(e Entry) {
	l.entries[e.Key()] = e
}

// Answer records an answer to q under prefix. The result phrase and its
// declared severity are copied from the catalog now; later catalog changes do
// not touch this entry. Notes from an earlier answer are kept.
func (l *Ledger) Answer(prefix string, q catalog.Question, answer string) (Entry, error) {
	res, ok := q.ResultFor(answer)
	if !ok {
		return Entry{}, fmt.Errorf("question %s: answer %q not in %v", q.ID, answer, q.Answers())
	}
	k := Key{Prefix: prefix, QuestionID: q.ID}
	e := Entry{
		Prefix:     prefix,
		QuestionID: q.ID,
		Question:   q.Text,
		Category:   q.Category,
		Answer:     answer,
		Result:     res.Text,
		Severity:   res.Severity,
	}
	if prev, ok := l.entries[k]; ok {
		e.Notes = prev.Notes
	}
	l.entries[k] = e
	return e, nil
}

// SetNotes updates the notes of k. An unanswered key gets an entry with an
// empty result, which counts as answered.
func (l *Ledger) SetNotes(k Key, notes string) Entry {
	e, ok := l.entries[k]
	if !ok {
		e = Entry{Prefix: k.Prefix, QuestionID: k.QuestionID}
	}
	e.Notes = notes
	l.entries[k] = e
	return e
}

// Delete removes k. It reports whether an entry was present.
func (l *Ledger) Delete(k Key) bool {
	_, ok := l.entries[k]
	delete(l.entries, k)
	return ok
}

// DeletePrefix removes every entry answered under prefix and returns how
// many were removed.
func (l *Ledger) DeletePrefix(prefix string) int {
	n := 0
	for k := range l.entries {
		if k.Prefix == prefix {
			delete(l.entries, k)
			n++
		}
	}
	return n
}

// Reset discards all entries.
func (l *Ledger) Reset() {
	l.entries = make(map[Key]Entry)
}

// Entries returns all entries sorted by key.
func (l *Ledger) Entries() []Entry {
	if l == nil {
		return nil
	}
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key().String() < out[j].Key().String()
	})
	return out
}

// Clone returns an independent copy.
func (l *Ledger) Clone() *Ledger {
	c := New()
	if l == nil {
		return c
	}
	for k, e := range l.entries {
		c.entries[k] = e
	}
	return c
}

// MarshalJSON encodes the ledger as an object keyed by "prefix:questionId".
func (l *Ledger) MarshalJSON() ([]byte, error) {
	m := make(map[string]Entry, l.Len())
	for _, e := range l.Entries() {
		m[e.Key().String()] = e
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes the object form written by MarshalJSON. Prefix and
// question ID are taken from the key when the entry omits them.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var m map[string]Entry
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	l.entries = make(map[Key]Entry, len(m))
	for ks, e := range m {
		k, err := ParseKey(ks)
		if err != nil {
			return err
		}
		e.Prefix = k.Prefix
		e.QuestionID = k.QuestionID
		l.entries[k] = e
	}
	return nil
}
