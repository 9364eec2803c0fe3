package predicate

import (
	"fmt"

	"github.com/spf13/cast"

	"fuzzydb/pkg/fuzzydb"
)

// paramUint parses params[idx] as a non-negative distance (a max_distance
// parameter). A non-negative int is the idiomatic Go stand-in for an
// unbounded non-negative size.
func paramUint(params []string, idx int) (int, error) {
	if idx >= len(params) {
		return 0, fmt.Errorf("%w: missing parameter %d", fuzzydb.ErrParameterParse, idx)
	}
	n, err := cast.ToUintE(params[idx])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", fuzzydb.ErrParameterParse, err)
	}
	return int(n), nil
}

func paramFloat64(params []string, idx int) (float64, error) {
	if idx >= len(params) {
		return 0, fmt.Errorf("%w: missing parameter %d", fuzzydb.ErrParameterParse, idx)
	}
	f, err := cast.ToFloat64E(params[idx])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", fuzzydb.ErrParameterParse, err)
	}
	return f, nil
}

func paramFloat32(params []string, idx int) (float32, error) {
	if idx >= len(params) {
		return 0, fmt.Errorf("%w: missing parameter %d", fuzzydb.ErrParameterParse, idx)
	}
	f, err := cast.ToFloat32E(params[idx])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", fuzzydb.ErrParameterParse, err)
	}
	return f, nil
}
