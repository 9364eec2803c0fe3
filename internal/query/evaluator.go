package query

import (
	"log"
	"sort"

	"fuzzydb/internal/index"
	"fuzzydb/internal/predicate"
	"fuzzydb/internal/store"
	"fuzzydb/pkg/fuzzydb"
)

// Evaluator answers queries against an index and a store. Callers (see
// internal/server) must hold at least a read lock covering both for the
// duration of Evaluate.
type Evaluator struct {
	index *index.Index
	store *store.Store
}

// New returns an Evaluator reading from idx and st.
func New(idx *index.Index, st *store.Store) *Evaluator {
	return &Evaluator{index: idx, store: st}
}

// Evaluate runs q's filters left to right, intersecting per-filter
// candidate sets, and returns the surviving entities in ascending id
// order, giving callers a deterministic result ordering.
//
// A parameter parse failure aborts the whole query. Parameters are parsed
// only when a filter's predicate runs, so a filter on an unknown field, or
// one reached after the intermediate result is already empty, reports no
// parameter error. An unrecognized filter type does not abort; that filter
// contributes an empty candidate set and a diagnostic is logged instead.
func (e *Evaluator) Evaluate(q fuzzydb.Query) ([]fuzzydb.Entity, error) {
	if len(q.Filters) == 0 {
		return nil, fuzzydb.ErrNoFilters
	}

	var result map[fuzzydb.EntityID]struct{}

	for _, filter := range q.Filters {
		candidates, err := e.candidates(filter)
		if err != nil {
			return nil, err
		}

		if result == nil {
			result = candidates
		} else {
			result = intersect(result, candidates)
		}

		// short-circuit: an empty intermediate set can never grow back
		if len(result) == 0 {
			break
		}
	}

	ids := make([]fuzzydb.EntityID, 0, len(result))
	for id := range result {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	entities := make([]fuzzydb.Entity, 0, len(ids))
	for _, id := range ids {
		fields, ok := e.store.Get(id)
		if !ok {
			// every posting is expected to reference a live store entry;
			// skip defensively rather than fail the query if one doesn't.
			continue
		}
		entities = append(entities, fuzzydb.Entity{ID: id, Fields: fields})
	}

	return entities, nil
}

// candidates computes the union of posting lists for every indexed value
// matching filter's predicate.
func (e *Evaluator) candidates(filter fuzzydb.Filter) (map[fuzzydb.EntityID]struct{}, error) {
	candidates := make(map[fuzzydb.EntityID]struct{})

	values, ok := e.index.Values(filter.FieldName)
	if !ok {
		// an unknown field matches nothing; it is not an error.
		return candidates, nil
	}

	predicateFn, err := predicate.Lookup(filter.FilterType)
	if err != nil {
		log.Printf("query: unknown filter type %q for field %q, treating as no match", filter.FilterType, filter.FieldName)
		return candidates, nil
	}

	for pair := values.Oldest(); pair != nil; pair = pair.Next() {
		match, err := predicateFn(pair.Key, filter.Value, filter.Params)
		if err != nil {
			return nil, err
		}
		if !match {
			continue
		}
		for _, id := range pair.Value {
			candidates[id] = struct{}{}
		}
	}

	return candidates, nil
}

func intersect(a, b map[fuzzydb.EntityID]struct{}) map[fuzzydb.EntityID]struct{} {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}

	out := make(map[fuzzydb.EntityID]struct{}, len(small))
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}
