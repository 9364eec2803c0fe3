package protocol

import (
	"errors"

	"fuzzydb/pkg/fuzzydb"
)

// Errors returned for malformed or unrecognized messages.
var (
	ErrMalformedFrame = errors.New("protocol: malformed frame")
	ErrUnknownVariant = errors.New("protocol: unknown message variant")
	ErrAmbiguousUnion = errors.New("protocol: more than one variant set")
	ErrFrameTooLarge  = errors.New("protocol: frame exceeds maximum size")
)

// MaxFrameBytes bounds a single frame's payload size. A malicious or
// corrupt length prefix must not be allowed to drive an unbounded
// allocation.
const MaxFrameBytes = 64 << 20 // 64 MiB

// EntityFields is the wire shape of one entity's field list.
type EntityFields struct {
	Fields []fuzzydb.Field
}

// InsertEntitiesRequest is the batch insert variant.
type InsertEntitiesRequest struct {
	Entities []EntityFields
}

// InsertEntityRequest is the legacy single-entity insert variant, kept
// alongside InsertEntitiesRequest for older clients.
type InsertEntityRequest struct {
	Fields []fuzzydb.Field
}

// QueryRequest is the query variant. Projection carries the requested
// output fields on the wire, so the server applies projection itself
// rather than leaving it to client-side filtering.
type QueryRequest struct {
	Filters    []fuzzydb.Filter
	Projection fuzzydb.Projection
}

// ResultResponse is the response to an insert request.
type ResultResponse struct {
	Success bool
}

// EntitiesResponse is the response to a query request.
type EntitiesResponse struct {
	Entities []EntityFields
}

// ErrorResponse reports a request-fatal error back to the client, such as
// a metric parameter that failed to parse, instead of aborting the
// connection without a reply.
type ErrorResponse struct {
	Message string
}

// Message is the tagged union framed on the wire. Exactly one field is
// non-nil.
type Message struct {
	InsertEntities *InsertEntitiesRequest
	InsertEntity   *InsertEntityRequest
	Query          *QueryRequest
	Result         *ResultResponse
	Entities       *EntitiesResponse
	Error          *ErrorResponse
}

// Validate reports ErrUnknownVariant if no variant is set, or
// ErrAmbiguousUnion if more than one is.
func (m Message) Validate() error {
	set := 0
	for _, present := range []bool{
		m.InsertEntities != nil,
		m.InsertEntity != nil,
		m.Query != nil,
		m.Result != nil,
		m.Entities != nil,
		m.Error != nil,
	} {
		if present {
			set++
		}
	}
	switch {
	case set == 0:
		return ErrUnknownVariant
	case set > 1:
		return ErrAmbiguousUnion
	default:
		return nil
	}
}
