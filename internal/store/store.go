package store

import (
	"sync/atomic"

	"fuzzydb/pkg/fuzzydb"
)

// Store is the entity store: entity id -> field list.
type Store struct {
	nextID   atomic.Uint64
	entities map[fuzzydb.EntityID][]fuzzydb.Field
}

// New returns an empty Store. Ids are assigned starting at 0.
func New() *Store {
	return &Store{entities: make(map[fuzzydb.EntityID][]fuzzydb.Field)}
}

// Put assigns a fresh id to fields (assumed already lowercased) and records
// them verbatim. Id assignment is strictly monotonic: the nth successful
// Put call returns id n-1.
func (s *Store) Put(fields []fuzzydb.Field) fuzzydb.EntityID {
	id := s.nextID.Add(1) - 1
	s.entities[id] = fields
	return id
}

// Get returns the field list stored for id. ok is false only for an id that
// was never returned by Put — which cannot happen for any id found in an
// internal/index posting list, per the invariant that every posting
// references a live store entry.
func (s *Store) Get(id fuzzydb.EntityID) ([]fuzzydb.Field, bool) {
	fields, ok := s.entities[id]
	return fields, ok
}

// Len returns the number of entities stored.
func (s *Store) Len() int {
	return len(s.entities)
}
