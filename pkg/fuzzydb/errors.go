package fuzzydb

import "errors"

// Domain errors shared across fuzzydb's packages.
var (
	// ErrUnknownFilterType is returned when a filter names a filter_type
	// outside the recognized predicate catalog.
	ErrUnknownFilterType = errors.New("unknown filter type")

	// ErrParameterParse is returned when a metric parameter cannot be
	// parsed as its expected numeric type.
	ErrParameterParse = errors.New("invalid metric parameter")

	// ErrNoFilters is returned for a query with an empty filter list; a
	// query must contain at least one filter.
	ErrNoFilters = errors.New("query must contain at least one filter")
)
