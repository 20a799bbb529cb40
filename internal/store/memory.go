// ABOUTME: In-memory document store for tests and throwaway runs.
// ABOUTME: Supports write-failure injection to exercise abort paths.
package store

import (
	"fmt"
	"sync"
)

// MemoryStore implements Store with plain maps. Safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document

	// FailSet, when non-nil, is consulted before every Set. Returning a
	// non-nil error fails that write. Used by tests to simulate store
	// failures mid-orchestration.
	FailSet func(collection, id string) error
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]Document)}
}

// Set creates or overwrites the whole document.
func (s *MemoryStore) Set(collection, id string, fields Document) error {
	if s.FailSet != nil {
		if err := s.FailSet(collection, id); err != nil {
			return fmt.Errorf("set %s/%s: %w", collection, id, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.collections[collection]
	if c == nil {
		c = make(map[string]Document)
		s.collections[collection] = c
	}
	c[id] = Clone(fields)
	return nil
}

// Get returns the document or ErrNotFound.
func (s *MemoryStore) Get(collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return Clone(doc), nil
}

// Query returns all documents whose field equals value.
func (s *MemoryStore) Query(collection, field string, value any) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []Document
	for _, doc := range s.collections[collection] {
		if fieldEquals(doc[field], value) {
			results = append(results, Clone(doc))
		}
	}
	return results, nil
}

// Update merges partial fields into an existing document.
func (s *MemoryStore) Update(collection, id string, partial Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for f, v := range partial {
		doc[f] = v
	}
	return nil
}

// Delete removes the document. Absent ids are not an error.
func (s *MemoryStore) Delete(collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections[collection], id)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
