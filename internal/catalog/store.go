package catalog

import (
	"sync"

	"faqdesk/internal/domain"
)

// Store holds the current FAQ collection. Every Replace bumps the
// generation so consumers can tell collections apart cheaply.
type Store interface {
	Entries() []domain.FAQ
	Get(id int) (domain.FAQ, bool)
	Replace(c domain.Catalog) uint64
	Generation() uint64
	Source() string
}

// MemoryStore is an in-memory implementation of Store
type MemoryStore struct {
	mu         sync.RWMutex
	source     string
	entries    []domain.FAQ
	byID       map[int]int
	generation uint64
}

// NewMemoryStore creates a store seeded with the given catalog
func NewMemoryStore(c domain.Catalog) *MemoryStore {
	s := &MemoryStore{}
	s.Replace(c)
	return s
}

// Entries returns a copy of the collection in catalog order
func (s *MemoryStore) Entries() []domain.FAQ {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.FAQ, len(s.entries))
	copy(result, s.entries)
	return result
}

func (s *MemoryStore) Get(id int) (domain.FAQ, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.FAQ{}, false
	}
	return s.entries[i], true
}

// Replace swaps the whole collection and returns the new generation
func (s *MemoryStore) Replace(c domain.Catalog) uint64 {
	entries := make([]domain.FAQ, len(c.Entries))
	copy(entries, c.Entries)

	byID := make(map[int]int, len(entries))
	for i, e := range entries {
		byID[e.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = c.Source
	s.entries = entries
	s.byID = byID
	s.generation++
	return s.generation
}

func (s *MemoryStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *MemoryStore) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}
