package predicate

import (
	"fmt"

	"github.com/antzucaro/matchr"

	"fuzzydb/pkg/fuzzydb"
)

// Func is a pure predicate: given the indexed value and the query's
// reference value (both already lowercased by the caller), report whether
// they match under this metric's parameters.
type Func func(value, reference string, params []string) (bool, error)

// registry maps a filter_type name to its predicate implementation. It is
// built once at init time and never mutated afterward, so lookups need no
// locking.
var registry = map[string]Func{
	"equality":            Equality,
	"hamming":             Hamming,
	"levenshtein":         Levenshtein,
	"damerau_levenshtein": DamerauLevenshtein,
	"jaro":                Jaro,
	"jaro_winkler":        JaroWinkler,
	"ngram":               Ngram,
	"soundex":             Soundex,
}

// Lookup returns the predicate registered for filterType, or
// fuzzydb.ErrUnknownFilterType if filterType is not in the catalog.
func Lookup(filterType string) (Func, error) {
	fn, ok := registry[filterType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", fuzzydb.ErrUnknownFilterType, filterType)
	}
	return fn, nil
}

// Equality reports whether value and reference are byte-equal. No
// parameters.
func Equality(value, reference string, _ []string) (bool, error) {
	return value == reference, nil
}

// Hamming reports whether value and reference have equal length and a
// Hamming distance no greater than params[0]. A length mismatch is "no
// match", not an error — matchr.Hamming reports that case as an error,
// which this predicate treats as a non-match rather than propagating.
func Hamming(value, reference string, params []string) (bool, error) {
	maxDistance, err := paramUint(params, 0)
	if err != nil {
		return false, err
	}

	distance, err := matchr.Hamming(value, reference)
	if err != nil {
		// length mismatch: no match, not a predicate error
		return false, nil
	}
	return distance <= maxDistance, nil
}

// Levenshtein reports whether the edit distance between value and
// reference (insert/delete/substitute, cost 1) is no greater than
// params[0].
func Levenshtein(value, reference string, params []string) (bool, error) {
	maxDistance, err := paramUint(params, 0)
	if err != nil {
		return false, err
	}
	return matchr.Levenshtein(value, reference) <= maxDistance, nil
}

// DamerauLevenshtein reports whether the Damerau-Levenshtein distance
// (Levenshtein plus adjacent transposition, cost 1) between value and
// reference is no greater than params[0].
func DamerauLevenshtein(value, reference string, params []string) (bool, error) {
	maxDistance, err := paramUint(params, 0)
	if err != nil {
		return false, err
	}
	return matchr.DamerauLevenshtein(value, reference) <= maxDistance, nil
}

// Jaro reports whether the Jaro similarity between value and reference is
// at least params[0].
func Jaro(value, reference string, params []string) (bool, error) {
	minScore, err := paramFloat64(params, 0)
	if err != nil {
		return false, err
	}
	return matchr.Jaro(value, reference) >= minScore, nil
}

// JaroWinkler reports whether the Jaro-Winkler similarity between value and
// reference (standard prefix weight 0.1, prefix cap 4 — matchr's defaults)
// is at least params[0].
func JaroWinkler(value, reference string, params []string) (bool, error) {
	minScore, err := paramFloat64(params, 0)
	if err != nil {
		return false, err
	}
	return matchr.JaroWinkler(value, reference, false) >= minScore, nil
}
