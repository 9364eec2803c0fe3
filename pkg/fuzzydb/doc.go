// Package fuzzydb defines the value types shared across fuzzydb's packages:
// entities, fields, filters, and projections.
//
// These are plain data types with no behavior of their own — the inverted
// index (internal/index), the entity store (internal/store), and the query
// evaluator (internal/query) all operate on the types defined here so that
// the wire protocol (internal/protocol) and the core never drift apart.
package fuzzydb
