package protocol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzydb/pkg/fuzzydb"
)

func TestWriteReadMessage_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	msg := Message{Query: &QueryRequest{
		Filters: []fuzzydb.Filter{
			{FieldName: "name", FilterType: "equality", Value: "john"},
		},
	}}

	require.NoError(t, WriteMessage(&buf, msg))

	got, err := ReadMessage(&buf)
	require.NoError(t, err)
	require.NotNil(t, got.Query)
	assert.Equal(t, msg.Query.Filters, got.Query.Filters)
}

func TestWriteMessage_RejectsEmptyUnion(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMessage(&buf, Message{})
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestWriteMessage_RejectsAmbiguousUnion(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMessage(&buf, Message{
		Result:   &ResultResponse{Success: true},
		Entities: &EntitiesResponse{},
	})
	assert.ErrorIs(t, err, ErrAmbiguousUnion)
}

func TestReadMessage_TruncatedFrameIsMalformed(t *testing.T) {
	buf := bytes.NewBufferString("\x00\x00\x00")
	_, err := ReadMessage(buf)
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

func TestReadMessage_OversizedLengthRejected(t *testing.T) {
	var header [4]byte
	header[0] = 0xFF // length way over MaxFrameBytes
	buf := bytes.NewBuffer(header[:])
	_, err := ReadMessage(buf)
	assert.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestWriteReadMessage_InsertEntitiesRequest(t *testing.T) {
	var buf bytes.Buffer
	msg := Message{InsertEntities: &InsertEntitiesRequest{
		Entities: []EntityFields{
			{Fields: []fuzzydb.Field{{Name: "name", Value: "john"}}},
		},
	}}
	require.NoError(t, WriteMessage(&buf, msg))

	got, err := ReadMessage(&buf)
	require.NoError(t, err)
	require.NotNil(t, got.InsertEntities)
	assert.Len(t, got.InsertEntities.Entities, 1)
}
