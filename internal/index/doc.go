// Package index implements fuzzydb's inverted index: a mapping from field
// name to an ordered value map, each value mapping to the posting list of
// entity ids that hold that value for that field.
//
// The index never reads the entity store and never evaluates a predicate;
// internal/query does both. Index's only job is cheap insertion and cheap
// enumeration of "every distinct value known for field F" — the operation
// the query evaluator needs to scan once per filter.
//
// # Ordering
//
// The per-field value map is a github.com/wk8/go-ordered-map/v2
// OrderedMap keyed by value string, preserving the order values were first
// inserted in. Iteration must stay stable across repeated queries; an
// ordered map gives that for free without imposing a sort cost on every
// scan.
//
// # Basic usage
//
//	idx := index.New()
//	idx.Insert(0, "name", "john")
//	idx.Insert(1, "name", "jon")
//
//	values, ok := idx.Values("name")
//	if ok {
//	    for pair := values.Oldest(); pair != nil; pair = pair.Next() {
//	        fmt.Println(pair.Key, pair.Value) // "john" [0], "jon" [1]
//	    }
//	}
package index
