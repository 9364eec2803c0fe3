// Package protocol implements fuzzydb's wire protocol: one framed request
// message followed by one framed response message per TCP connection,
// where a message is a tagged union of variants.
//
// Each frame is a 4-byte big-endian length prefix followed by that many
// bytes of encoding/gob payload. The tagged union is expressed the
// idiomatic Go way: a single Message struct holding one non-nil pointer
// field per variant, dispatched on whichever field is set rather than on a
// generated oneof.
//
// Exactly one variant field must be set; Validate enforces this on both
// encode and decode so a malformed or ambiguous message is caught as a
// protocol error rather than silently misinterpreted.
//
// # Basic usage
//
//	err := protocol.WriteMessage(conn, protocol.Message{
//	    Query: &protocol.QueryRequest{
//	        Filters: []fuzzydb.Filter{{FieldName: "name", FilterType: "equality", Value: "john"}},
//	    },
//	})
//
//	resp, err := protocol.ReadMessage(conn)
//	if resp.Entities != nil {
//	    // handle resp.Entities.Entities
//	}
package protocol
