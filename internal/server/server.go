package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/go-strftime"
	"golang.org/x/sync/errgroup"

	"fuzzydb/internal/index"
	"fuzzydb/internal/store"
)

// Server is fuzzydb's TCP server: one shared, lock-guarded index and
// entity store, serving one request per accepted connection.
type Server struct {
	addr string

	mu    sync.RWMutex
	index *index.Index
	store *store.Store
}

// New returns a Server listening on addr (host:port) once ListenAndServe is
// called. The index and store start empty.
func New(addr string) *Server {
	return &Server{
		addr:  addr,
		index: index.New(),
		store: store.New(),
	}
}

// ListenAndServe accepts connections until ctx is canceled, handling each
// one in its own goroutine under an errgroup. Cancellation closes the
// listener; connections already accepted run to completion, and
// ListenAndServe returns once they have all finished.
func (s *Server) ListenAndServe(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", s.addr, err)
	}
	defer ln.Close()

	log.Printf("[%s] fuzzydb server listening on %s", strftime.Format("%Y-%m-%d %H:%M:%S", time.Now()), ln.Addr())

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		<-ctx.Done()
		return ln.Close()
	})

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return group.Wait()
			default:
				return fmt.Errorf("server: accept: %w", err)
			}
		}

		connID := uuid.NewString()
		group.Go(func() error {
			s.handleConn(connID, conn)
			return nil
		})
	}
}

// handleConn reads exactly one request message, dispatches it, and writes
// exactly one response message — connections are never reused across
// requests.
func (s *Server) handleConn(connID string, conn net.Conn) {
	defer conn.Close()

	resp, err := s.dispatch(conn)
	if err != nil {
		log.Printf("conn %s: %v", connID, err)
		return
	}

	if writeErr := writeResponse(conn, resp); writeErr != nil {
		log.Printf("conn %s: write response: %v", connID, writeErr)
	}
}
