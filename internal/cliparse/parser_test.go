package cliparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzydb/pkg/fuzzydb"
)

func TestParse_Exit(t *testing.T) {
	cmd, err := Parse("exit")
	require.NoError(t, err)
	assert.Equal(t, Exit, cmd.Kind)

	cmd, err = Parse("EXIT")
	require.NoError(t, err)
	assert.Equal(t, Exit, cmd.Kind)
}

func TestParse_Help(t *testing.T) {
	cmd, err := Parse("help")
	require.NoError(t, err)
	assert.Equal(t, Help, cmd.Kind)
}

func TestParse_Load(t *testing.T) {
	cmd, err := Parse("LOAD people.csv")
	require.NoError(t, err)
	assert.Equal(t, Load, cmd.Kind)
	assert.Equal(t, "people.csv", cmd.Filename)
}

func TestParse_LoadRequiresFilename(t *testing.T) {
	_, err := Parse("LOAD")
	assert.Error(t, err)

	_, err = Parse("LOAD    ")
	assert.Error(t, err)
}

func TestParse_SelectStarSingleFilter(t *testing.T) {
	cmd, err := Parse("SELECT * WHERE name ~equality john")
	require.NoError(t, err)
	require.Equal(t, Query, cmd.Kind)
	assert.True(t, cmd.Query.Projection.IsAll())
	require.Len(t, cmd.Query.Filters, 1)

	f := cmd.Query.Filters[0]
	assert.Equal(t, "name", f.FieldName)
	assert.Equal(t, "equality", f.FilterType)
	assert.Equal(t, "john", f.Value)
	assert.Empty(t, f.Params)
}

func TestParse_SelectProjectedFields(t *testing.T) {
	cmd, err := Parse("SELECT name, city WHERE name ~equality john")
	require.NoError(t, err)
	require.Equal(t, fuzzydb.Projection{"name", "city"}, cmd.Query.Projection)
}

func TestParse_SelectFilterWithParams(t *testing.T) {
	cmd, err := Parse("SELECT * WHERE name ~levenshtein(1) john")
	require.NoError(t, err)
	require.Len(t, cmd.Query.Filters, 1)

	f := cmd.Query.Filters[0]
	assert.Equal(t, "levenshtein", f.FilterType)
	assert.Equal(t, []string{"1"}, f.Params)
}

func TestParse_SelectMultipleFiltersWithAnd(t *testing.T) {
	cmd, err := Parse("SELECT * WHERE name ~equality john AND city ~hamming(0) boston")
	require.NoError(t, err)
	require.Len(t, cmd.Query.Filters, 2)
	assert.Equal(t, "name", cmd.Query.Filters[0].FieldName)
	assert.Equal(t, "city", cmd.Query.Filters[1].FieldName)
	assert.Equal(t, []string{"0"}, cmd.Query.Filters[1].Params)
}

func TestParse_SelectFilterWithMultipleParams(t *testing.T) {
	cmd, err := Parse("SELECT * WHERE name ~ngram(2, 0.5) john")
	require.NoError(t, err)
	require.Len(t, cmd.Query.Filters, 1)
	assert.Equal(t, []string{"2", "0.5"}, cmd.Query.Filters[0].Params)
}

func TestParse_SelectLowercasesValue(t *testing.T) {
	cmd, err := Parse("SELECT * WHERE name ~equality JOHN")
	require.NoError(t, err)
	assert.Equal(t, "john", cmd.Query.Filters[0].Value)
}

func TestParse_SelectRequiresWhere(t *testing.T) {
	_, err := Parse("SELECT *")
	assert.Error(t, err)
}

func TestParse_SelectMalformedFilter(t *testing.T) {
	_, err := Parse("SELECT * WHERE name equality john")
	assert.Error(t, err)
}

func TestParse_Unrecognized(t *testing.T) {
	_, err := Parse("DROP TABLE people")
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("   ")
	assert.Error(t, err)
}
