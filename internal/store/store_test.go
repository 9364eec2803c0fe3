package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzydb/pkg/fuzzydb"
)

func TestPut_AssignsMonotonicIDs(t *testing.T) {
	s := New()

	id0 := s.Put([]fuzzydb.Field{{Name: "name", Value: "john"}})
	id1 := s.Put([]fuzzydb.Field{{Name: "name", Value: "jon"}})

	assert.Equal(t, fuzzydb.EntityID(0), id0)
	assert.Equal(t, fuzzydb.EntityID(1), id1)
}

func TestGet_ReturnsStoredFields(t *testing.T) {
	s := New()
	fields := []fuzzydb.Field{{Name: "name", Value: "john"}, {Name: "city", Value: "boston"}}
	id := s.Put(fields)

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, fields, got)
}

func TestGet_UnknownID(t *testing.T) {
	s := New()
	_, ok := s.Get(999)
	assert.False(t, ok)
}

func TestLen(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Len())
	s.Put([]fuzzydb.Field{{Name: "a", Value: "b"}})
	assert.Equal(t, 1, s.Len())
}
