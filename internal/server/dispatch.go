package server

import (
	"fmt"
	"io"
	"net"

	"fuzzydb/internal/protocol"
	"fuzzydb/internal/query"
	"fuzzydb/pkg/fuzzydb"
)

// dispatch reads one request from conn and returns the response message to
// send back. A protocol-level error (malformed frame, unknown variant) is
// returned as an error so the caller can log and close without a response;
// a request-level failure (unknown filter type already handled inside
// query.Evaluator; a metric parameter parse failure) is returned as an
// ErrorResponse message instead.
func (s *Server) dispatch(conn net.Conn) (protocol.Message, error) {
	req, err := protocol.ReadMessage(conn)
	if err != nil {
		return protocol.Message{}, fmt.Errorf("read request: %w", err)
	}

	switch {
	case req.InsertEntities != nil:
		return s.handleInsertEntities(req.InsertEntities), nil
	case req.InsertEntity != nil:
		return s.handleInsertEntity(req.InsertEntity), nil
	case req.Query != nil:
		return s.handleQuery(req.Query), nil
	default:
		return protocol.Message{}, protocol.ErrUnknownVariant
	}
}

func writeResponse(w io.Writer, resp protocol.Message) error {
	return protocol.WriteMessage(w, resp)
}

// handleInsertEntities applies an entire batch under a single write-lock
// hold, so readers never observe a partially-applied batch.
func (s *Server) handleInsertEntities(req *protocol.InsertEntitiesRequest) protocol.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entity := range req.Entities {
		s.insertLocked(entity.Fields)
	}

	return protocol.Message{Result: &protocol.ResultResponse{Success: true}}
}

// handleInsertEntity is the legacy single-entity variant, dispatched
// through the same insert path as the batch variant.
func (s *Server) handleInsertEntity(req *protocol.InsertEntityRequest) protocol.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insertLocked(req.Fields)

	return protocol.Message{Result: &protocol.ResultResponse{Success: true}}
}

// insertLocked requires the caller to already hold s.mu for writing.
func (s *Server) insertLocked(fields []fuzzydb.Field) {
	normalized := fuzzydb.NormalizeFields(fields)
	id := s.store.Put(normalized)
	for _, f := range normalized {
		s.index.Insert(id, f.Name, f.Value)
	}
}

// handleQuery evaluates req under a read lock and applies the requested
// projection before the entities ever reach the wire.
func (s *Server) handleQuery(req *protocol.QueryRequest) protocol.Message {
	s.mu.RLock()
	evaluator := query.New(s.index, s.store)
	entities, err := evaluator.Evaluate(fuzzydb.Query{Filters: req.Filters, Projection: req.Projection})
	s.mu.RUnlock()

	if err != nil {
		return protocol.Message{Error: &protocol.ErrorResponse{Message: err.Error()}}
	}

	wireEntities := make([]protocol.EntityFields, len(entities))
	for i, e := range entities {
		wireEntities[i] = protocol.EntityFields{Fields: projectFields(e.Fields, req.Projection)}
	}

	return protocol.Message{Entities: &protocol.EntitiesResponse{Entities: wireEntities}}
}

// projectFields restricts fields to projection, preserving field order.
// An empty projection returns every field.
func projectFields(fields []fuzzydb.Field, projection fuzzydb.Projection) []fuzzydb.Field {
	if projection.IsAll() {
		return fields
	}

	out := make([]fuzzydb.Field, 0, len(fields))
	for _, f := range fields {
		if projection.Contains(f.Name) {
			out = append(out, f)
		}
	}
	return out
}
