package index

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"fuzzydb/pkg/fuzzydb"
)

// ValueMap is the ordered value -> posting-list map maintained for one
// field name.
type ValueMap = *orderedmap.OrderedMap[string, []fuzzydb.EntityID]

// Index is the inverted index: field name -> ValueMap. It holds no lock of
// its own — internal/server guards it with a single shared
// sync.RWMutex alongside the entity store.
type Index struct {
	fields map[string]ValueMap
}

// New returns an empty Index.
func New() *Index {
	return &Index{fields: make(map[string]ValueMap)}
}

// Insert records that entity id has value for field name. Calling Insert
// more than once for the same (id, name, value) triple would duplicate the
// posting; callers (internal/server) must call Insert
// exactly once per (entity, field) pair, which is what makes posting lists
// duplicate-free by construction rather than by a dedup check.
func (idx *Index) Insert(id fuzzydb.EntityID, name, value string) {
	values, ok := idx.fields[name]
	if !ok {
		values = orderedmap.New[string, []fuzzydb.EntityID]()
		idx.fields[name] = values
	}

	postings, _ := values.Get(value)
	values.Set(value, append(postings, id))
}

// Values returns the ordered value map for name, and whether the field is
// known to the index at all. An unknown field yields a nil map and false;
// callers must treat that as "this filter matches nothing", not as an
// error.
func (idx *Index) Values(name string) (ValueMap, bool) {
	values, ok := idx.fields[name]
	return values, ok
}

// FieldNames returns every field name known to the index, in no particular
// order. Used only for diagnostics; query evaluation always looks up a
// single named field.
func (idx *Index) FieldNames() []string {
	names := make([]string, 0, len(idx.fields))
	for name := range idx.fields {
		names = append(names, name)
	}
	return names
}
