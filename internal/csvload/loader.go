package csvload

import (
	"encoding/csv"
	"fmt"
	"io"

	"fuzzydb/pkg/fuzzydb"
)

// DefaultBatchSize is the default number of records per LOAD batch.
const DefaultBatchSize = 250

// Batch is one group of entity field sets, sized up to the loader's
// configured batch size.
type Batch = [][]fuzzydb.Field

// Loader reads CSV records from r, using the first row as field names.
type Loader struct {
	reader    *csv.Reader
	header    []string
	batchSize int
}

// New returns a Loader reading from r with the given batch size. If
// batchSize is not positive, DefaultBatchSize is used. The header row is
// read immediately.
func New(r io.Reader, batchSize int) (*Loader, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csvload: read header: %w", err)
	}

	return &Loader{reader: reader, header: header, batchSize: batchSize}, nil
}

// Batches consumes every remaining record from the loader, invoking fn once
// per full batch (and once more for a final partial batch, if any). It stops
// and returns fn's error if fn returns one.
func (l *Loader) Batches(fn func(Batch) error) (recordCount int, err error) {
	batch := make(Batch, 0, l.batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := fn(batch); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	for {
		record, readErr := l.reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return recordCount, fmt.Errorf("csvload: read record %d: %w", recordCount, readErr)
		}

		batch = append(batch, l.recordToFields(record))
		recordCount++

		if len(batch) == l.batchSize {
			if err := flush(); err != nil {
				return recordCount, err
			}
		}
	}

	if err := flush(); err != nil {
		return recordCount, err
	}

	return recordCount, nil
}

// recordToFields zips the header against one CSV record. A record shorter
// than the header simply contributes fewer fields; a longer record's extra
// columns are dropped, matching csv.Reader's own lenient mode here since
// FieldsPerRecord is disabled.
func (l *Loader) recordToFields(record []string) []fuzzydb.Field {
	n := len(l.header)
	if len(record) < n {
		n = len(record)
	}

	fields := make([]fuzzydb.Field, n)
	for i := 0; i < n; i++ {
		fields[i] = fuzzydb.Field{Name: l.header[i], Value: record[i]}
	}
	return fields
}
