// Package server implements fuzzydb's TCP front end: accepting one
// connection per request, dispatching its single framed message to the
// index, store, and query evaluator, and writing back one framed
// response.
//
// A single sync.RWMutex guards the index and entity store together.
// Insert batches take the write lock for their whole duration so a
// concurrent reader never observes a partially applied batch; queries
// take the read lock, so concurrent queries proceed in parallel against a
// consistent snapshot. There is no cancellation token and no
// per-operation timeout at this layer — a request runs to completion once
// dispatched.
//
// # Basic usage
//
//	srv := server.New("0.0.0.0:7890")
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
