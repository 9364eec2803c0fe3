// Package csvload reads a CSV file and produces batches of entity field
// sets ready for insertion: the header row supplies field names, and
// records are grouped into fixed-size batches so a large file is sent to
// the server as many bounded inserts rather than one unbounded one.
//
// # Basic usage
//
//	loader, err := csvload.New(f, csvload.DefaultBatchSize)
//
//	recordCount, err := loader.Batches(func(batch csvload.Batch) error {
//	    return sendInsertBatch(batch)
//	})
package csvload
