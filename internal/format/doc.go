// Package format renders a set of projected entities as a fixed-width
// table, plus the two summary lines that precede it: the count of entities
// returned and the query's wall-clock duration.
//
// Column selection and widths are computed from the result set itself —
// there is no schema to consult. Output field order is lexicographic by
// field name, which also determines column order: a documented, intentional
// sort rather than an incidental side effect of any particular map type.
//
// # Basic usage
//
//	err := format.Render(os.Stdout, entities, fuzzydb.Projection{"name", "city"}, duration)
//
//	// entities returned 2
//	// query execution in 3ms
//	// |   city | name |
//	// -----------------
//	// | boston | john |
//	// | boston |  jon |
package format
