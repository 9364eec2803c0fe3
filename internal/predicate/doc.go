// Package predicate implements fuzzydb's fuzzy string matching catalog: the
// eight filter types a query can name (equality, hamming, levenshtein,
// damerau_levenshtein, jaro, jaro_winkler, ngram, soundex), their parameter
// parsing, and the registry that the query evaluator dispatches through.
//
// Every predicate is a pure function of (value, reference, params) — no
// predicate holds state or touches the index or the store. Callers are
// expected to have already lowercased both value and reference; predicates
// never casefold on their own.
//
// # Distance metrics
//
// equality is a plain byte comparison. hamming, levenshtein, and
// damerau_levenshtein delegate to github.com/antzucaro/matchr, which
// implements the standard definitions of each. damerau_levenshtein and the edit-distance-with-transposition family
// are matchr's unrestricted Damerau-Levenshtein, not the OSA restriction.
//
// # Similarity metrics
//
// jaro and jaro_winkler also delegate to matchr, using the library's
// standard prefix weight (0.1) and prefix cap (4) for jaro_winkler — matchr
// does not expose those as configurable parameters, and no caller needs
// them to be.
//
// # ngram and soundex
//
// ngram and soundex are hand-written: ngram because matchr has no n-gram
// Dice-style score, and soundex because this package's encoding is an
// intentionally non-textbook variant (see soundex.go) that no ecosystem
// Soundex implementation produces.
package predicate
