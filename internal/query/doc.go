// Package query implements fuzzydb's query evaluator: given a conjunction
// of filters and a projection, it consults internal/index to collect
// per-filter candidate entity ids, intersects them across filters, and
// fetches the surviving entities from internal/store for projection and
// formatting.
//
// Evaluator is a coordinator holding handles to the structures it reads,
// with wall-clock timing captured by the caller rather than computed
// inside the core operation.
//
// # Basic usage
//
//	ev := query.New(idx, st)
//
//	start := time.Now()
//	entities, err := ev.Evaluate(fuzzydb.Query{
//	    Filters: []fuzzydb.Filter{
//	        {FieldName: "name", FilterType: "levenshtein", Value: "john", Params: []string{"1"}},
//	        {FieldName: "city", FilterType: "equality", Value: "boston"},
//	    },
//	})
//	duration := time.Since(start)
package query
