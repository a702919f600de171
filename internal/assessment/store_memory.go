package assessment

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
)

// MemoryStore is a thread-safe LRU store for assessments. Least recently
// used sessions are evicted once the store is full.
type MemoryStore struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*Assessment
	order   []string // oldest first
}

// NewMemoryStore creates a store with the given maximum number of entries.
// If maxSize <= 0, it defaults to 100.
func NewMemoryStore(maxSize int) *MemoryStore {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &MemoryStore{
		maxSize: maxSize,
		entries: make(map[string]*Assessment),
	}
}

// NewMemoryStoreFromEnv creates a store with size from SESSION_CACHE_SIZE env var.
func NewMemoryStoreFromEnv() *MemoryStore {
	size := 100
	if v := os.Getenv("SESSION_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return NewMemoryStore(size)
}

// Get returns a copy of the stored assessment.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.entries[id]
	if !ok {
		return nil, fmt.Errorf("assessment %s: %w", id, ErrNotFound)
	}

	// Move to end (most recently used)
	s.moveToEnd(id)
	return a.Clone(), nil
}

// Save stores a copy of a, evicting the oldest entry if full.
func (s *MemoryStore) Save(ctx context.Context, a *Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[a.ID]; ok {
		s.entries[a.ID] = a.Clone()
		s.moveToEnd(a.ID)
		return nil
	}

	// Evict oldest if at capacity
	for len(s.entries) >= s.maxSize && len(s.order) > 0 {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.entries, oldest)
	}

	s.entries[a.ID] = a.Clone()
	s.order = append(s.order, a.ID)
	return nil
}

// List returns copies of all assessments, most recently updated first.
func (s *MemoryStore) List(ctx context.Context) ([]*Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Assessment, 0, len(s.entries))
	for _, a := range s.entries {
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// Len returns the number of stored assessments.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) moveToEnd(id string) {
	for i, k := range s.order {
		if k == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			s.order = append(s.order, id)
			return
		}
	}
}
