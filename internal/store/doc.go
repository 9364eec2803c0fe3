// Package store implements fuzzydb's entity store: a mapping from entity id
// to the entity's full field list, used only to project results after the
// query evaluator has already decided which ids survive.
//
// The store is append-only — Put assigns a fresh, strictly increasing id
// and there is no update or delete. Like internal/index, it holds no lock
// of its own; the shared sync.RWMutex lives in internal/server alongside
// the index, since a single insert batch must mutate both structures
// atomically from a reader's point of view.
//
// # Basic usage
//
//	st := store.New()
//	id := st.Put([]fuzzydb.Field{{Name: "name", Value: "john"}})
//
//	fields, ok := st.Get(id)
//	if ok {
//	    fmt.Println(fields) // [{name john}]
//	}
package store
