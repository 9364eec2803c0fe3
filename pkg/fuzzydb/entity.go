package fuzzydb

import "strings"

// EntityID identifies a stored entity. IDs are assigned by the entity store,
// dense and strictly increasing starting at 0; they are never reused or
// mutated.
type EntityID = uint64

// Field is a single (name, value) attribute of an entity. Values are
// normalized to lowercase before they reach the index or the store.
type Field struct {
	Name  string
	Value string
}

// Entity is an ordered collection of fields. Field order is the order the
// fields were supplied in (e.g. CSV column order); it is preserved for
// projection rendering but is not itself a query key.
type Entity struct {
	ID     EntityID
	Fields []Field
}

// Value returns the value stored for name, and whether the entity has that
// field at all.
func (e Entity) Value(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// NormalizeFields returns a copy of fields with every value lowercased.
// Field names are left as-is; only values participate in fuzzy matching.
func NormalizeFields(fields []Field) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = Field{Name: f.Name, Value: strings.ToLower(f.Value)}
	}
	return out
}
