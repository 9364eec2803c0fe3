package predicate

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// soundexCacheSize bounds the memoization cache below. Soundex encodings
// are cheap individually, but a query scans every distinct value known for
// a field, and the same value commonly recurs across fields in a query
// session — memoizing avoids re-walking the same string twice in that
// case without changing matching semantics.
const soundexCacheSize = 4096

// soundexCache memoizes soundexEncode results, mirroring the Searcher
// query-result cache pattern: an LRU cache that can only ever fail to
// construct on an invalid size, which is treated as a programmer error.
var soundexCache = newSoundexCache()

func newSoundexCache() *lru.Cache[string, string] {
	cache, err := lru.New[string, string](soundexCacheSize)
	if err != nil {
		panic(fmt.Sprintf("failed to create soundex cache: %v", err))
	}
	return cache
}

func soundexEncodeCached(s string) string {
	if encoded, ok := soundexCache.Get(s); ok {
		return encoded
	}
	encoded := soundexEncode(s)
	soundexCache.Add(s, encoded)
	return encoded
}
