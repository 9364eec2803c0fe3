package fuzzydb

// Filter is one fuzzy predicate of a query: a field name, the name of a
// similarity metric, the reference value to compare every indexed value
// against, and the metric's positional parameters (e.g. a max edit
// distance, or an n-gram size and minimum score).
type Filter struct {
	FieldName  string
	FilterType string
	Value      string
	Params     []string
}

// Projection names the fields a query result should be restricted to. A nil
// or empty Projection means "every field present on the matched entity".
type Projection []string

// IsAll reports whether the projection selects every present field.
func (p Projection) IsAll() bool {
	return len(p) == 0
}

// Contains reports whether field is named in the projection.
func (p Projection) Contains(field string) bool {
	for _, f := range p {
		if f == field {
			return true
		}
	}
	return false
}

// Query is a conjunction of filters plus the projection to apply to
// surviving entities. Filters must be non-empty for any query actually
// sent over the wire; the evaluator rejects an empty filter list rather
// than silently returning no results.
type Query struct {
	Projection Projection
	Filters    []Filter
}
