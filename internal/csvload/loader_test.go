package csvload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_SingleBatch(t *testing.T) {
	data := "name,city\nJohn,Boston\nJon,Boston\n"
	loader, err := New(strings.NewReader(data), 10)
	require.NoError(t, err)

	var batches []Batch
	count, err := loader.Batches(func(b Batch) error {
		cp := make(Batch, len(b))
		copy(cp, b)
		batches = append(batches, cp)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, batches, 1)
	require.Len(t, batches[0], 2)

	assert.Equal(t, "name", batches[0][0][0].Name)
	assert.Equal(t, "John", batches[0][0][0].Value)
	assert.Equal(t, "city", batches[0][0][1].Name)
	assert.Equal(t, "Boston", batches[0][0][1].Value)
}

func TestLoader_SplitsFullBatchesFromRemainder(t *testing.T) {
	data := "name\na\nb\nc\nd\ne\n"
	loader, err := New(strings.NewReader(data), 2)
	require.NoError(t, err)

	var sizes []int
	count, err := loader.Batches(func(b Batch) error {
		sizes = append(sizes, len(b))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Equal(t, []int{2, 2, 1}, sizes)
}

func TestLoader_DefaultBatchSize(t *testing.T) {
	loader, err := New(strings.NewReader("name\na\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultBatchSize, loader.batchSize)
}

func TestLoader_EmptyFileErrors(t *testing.T) {
	_, err := New(strings.NewReader(""), 10)
	assert.Error(t, err)
}

func TestLoader_FnErrorStopsIteration(t *testing.T) {
	data := "name\na\nb\nc\nd\n"
	loader, err := New(strings.NewReader(data), 2)
	require.NoError(t, err)

	calls := 0
	sentinel := assert.AnError
	_, err = loader.Batches(func(b Batch) error {
		calls++
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}

func TestLoader_ShortRecordDropsMissingFields(t *testing.T) {
	data := "name,city\na\n"
	loader, err := New(strings.NewReader(data), 10)
	require.NoError(t, err)

	var got Batch
	_, err = loader.Batches(func(b Batch) error {
		got = b
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0], 1)
	assert.Equal(t, "name", got[0][0].Name)
}
