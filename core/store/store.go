package store

import (
	"fmt"
	"sort"
	"sync"
)

// =============================================================================
// Store
// =============================================================================

// Store holds an immutable snapshot of skill documents indexed by name and
// category. Lookups are safe for concurrent use; Reload swaps the snapshot
// atomically without disturbing in-flight readers.
type Store struct {
	mu         sync.RWMutex
	byName     map[string]*Document
	byCategory map[Category][]string
}

// New creates a store from a set of documents.
// Returns ErrDuplicateName if two documents share a name.
func New(docs []*Document) (*Store, error) {
	s := &Store{}
	if err := s.replace(docs); err != nil {
		return nil, err
	}
	return s, nil
}

// replace rebuilds the snapshot from docs.
func (s *Store) replace(docs []*Document) error {
	byName := make(map[string]*Document, len(docs))
	byCategory := make(map[Category][]string)

	for _, doc := range docs {
		if _, exists := byName[doc.Name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateName, doc.Name)
		}
		byName[doc.Name] = doc
		byCategory[doc.Category] = append(byCategory[doc.Category], doc.Name)
	}

	for _, names := range byCategory {
		sort.Strings(names)
	}

	s.mu.Lock()
	s.byName = byName
	s.byCategory = byCategory
	s.mu.Unlock()
	return nil
}

// Reload replaces the current snapshot with docs.
// The previous snapshot is kept intact if docs contain duplicates.
func (s *Store) Reload(docs []*Document) error {
	byName := make(map[string]*Document, len(docs))
	for _, doc := range docs {
		if _, exists := byName[doc.Name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateName, doc.Name)
		}
		byName[doc.Name] = doc
	}
	return s.replace(docs)
}

// Get returns the document registered under name.
// Returns ErrDocumentNotFound when the name is absent.
func (s *Store) Get(name string) (*Document, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, name)
	}
	return doc, nil
}

// List returns the names of all documents in category, lexicographically ordered.
// Returns ErrInvalidCategory for unrecognized categories.
func (s *Store) List(category Category) ([]string, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := s.byCategory[category]
	result := make([]string, len(names))
	copy(result, names)
	return result, nil
}

// ListAll returns every document name, grouped by category listing order.
func (s *Store) ListAll() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []string
	for _, category := range AllCategories() {
		result = append(result, s.byCategory[category]...)
	}
	return result
}

// Documents returns every document in the current snapshot.
func (s *Store) Documents() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Document, 0, len(s.byName))
	for _, category := range AllCategories() {
		for _, name := range s.byCategory[category] {
			result = append(result, s.byName[name])
		}
	}
	return result
}

// Len returns the number of documents in the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byName)
}
