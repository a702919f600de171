package catalog

import (
	"fmt"
	"sync"
)

// Catalog is a read-only registry of deployment paths.
type Catalog struct {
	paths []Path
	index map[string]int
}

// New builds a Catalog from the given paths after validating them.
// The paths are copied; later changes to the argument do not leak in.
func New(paths []Path) (*Catalog, error) {
	c := &Catalog{
		paths: make([]Path, len(paths)),
		index: make(map[string]int, len(paths)),
	}
	copy(c.paths, paths)
	for i, p := range c.paths {
		if p.ID == "" {
			return nil, fmt.Errorf("path %d: missing id", i)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("duplicate path %q", p.ID)
		}
		c.index[p.ID] = i
		if err := validatePath(p); err != nil {
			return nil, fmt.Errorf("path %s: %w", p.ID, err)
		}
	}
	return c, nil
}

func validatePath(p Path) error {
	prefixes := make(map[string]bool)
	sets := append(append([]QuestionSet{}, p.Base...), p.SubPaths...)
	for _, set := range sets {
		if set.Prefix == "" {
			return fmt.Errorf("question set %q: missing prefix", set.Title)
		}
		if prefixes[set.Prefix] {
			return fmt.Errorf("duplicate prefix %q", set.Prefix)
		}
		prefixes[set.Prefix] = true

		ids := make(map[string]bool, len(set.Questions))
		for _, q := range set.Questions {
			if q.ID == "" {
				return fmt.Errorf("%s: question with empty id", set.Prefix)
			}
			if ids[q.ID] {
				return fmt.Errorf("%s: duplicate question %q", set.Prefix, q.ID)
			}
			ids[q.ID] = true
			if err := validateQuestion(q); err != nil {
				return fmt.Errorf("%s:%s: %w", set.Prefix, q.ID, err)
			}
		}
	}
	return nil
}

func validateQuestion(q Question) error {
	switch q.Kind {
	case KindBoolean:
		if _, ok := q.ResultFor(AnswerYes); !ok {
			return fmt.Errorf("boolean question without %q result", AnswerYes)
		}
		if _, ok := q.ResultFor(AnswerNo); !ok {
			return fmt.Errorf("boolean question without %q result", AnswerNo)
		}
	case KindSelect:
		if len(q.Options) == 0 {
			return fmt.Errorf("select question without options")
		}
	default:
		return fmt.Errorf("unknown kind %q", q.Kind)
	}
	for _, o := range q.Options {
		if o.Result.Severity != "" && !o.Result.Severity.Valid() {
			return fmt.Errorf("option %q: unknown severity %q", o.Value, o.Result.Severity)
		}
	}
	return nil
}

// Paths returns all deployment paths in catalog order.
func (c *Catalog) Paths() []Path {
	out := make([]Path, len(c.paths))
	copy(out, c.paths)
	return out
}

// Path looks up a deployment path by ID.
func (c *Catalog) Path(id string) (*Path, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	p := c.paths[i]
	return &p, true
}

// Questions lists the questions asked on a path given the selected sub-paths,
// in display order: base sets first, then selected sub-paths in catalog order.
// Unknown sub-path keys are ignored.
func (c *Catalog) Questions(pathID string, subPaths ...string) ([]PrefixedQuestion, error) {
	p, ok := c.Path(pathID)
	if !ok {
		return nil, fmt.Errorf("unknown path %q", pathID)
	}
	selected := make(map[string]bool, len(subPaths))
	for _, s := range subPaths {
		selected[s] = true
	}

	var out []PrefixedQuestion
	for _, set := range p.Base {
		for _, q := range set.Questions {
			out = append(out, PrefixedQuestion{Prefix: set.Prefix, Question: q})
		}
	}
	for _, set := range p.SubPaths {
		if !selected[set.Prefix] {
			continue
		}
		for _, q := range set.Questions {
			out = append(out, PrefixedQuestion{Prefix: set.Prefix, Question: q})
		}
	}
	return out, nil
}

// Lookup finds a question by ledger prefix and question ID across all paths.
func (c *Catalog) Lookup(prefix, questionID string) (Question, bool) {
	for _, p := range c.paths {
		sets := append(append([]QuestionSet{}, p.Base...), p.SubPaths...)
		for _, set := range sets {
			if set.Prefix != prefix {
				continue
			}
			for _, q := range set.Questions {
				if q.ID == questionID {
					return q, true
				}
			}
		}
	}
	return Question{}, false
}

// Order returns a rank for every "prefix:questionID" key in catalog order.
// Renderers use it to list ledger entries the way the questionnaire shows them.
func (c *Catalog) Order() map[string]int {
	rank := make(map[string]int)
	n := 0
	for _, p := range c.paths {
		sets := append(append([]QuestionSet{}, p.Base...), p.SubPaths...)
		for _, set := range sets {
			for _, q := range set.Questions {
				key := set.Prefix + ":" + q.ID
				if _, ok := rank[key]; !ok {
					rank[key] = n
					n++
				}
			}
		}
	}
	return rank
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in VCF 9.0 catalog. It is constructed once and
// shared for the life of the process.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(builtinPaths())
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid built-in catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}
