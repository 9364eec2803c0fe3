package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNgram_NightNacht(t *testing.T) {
	// bigrams of "night" = {ni,ig,gh,ht} (4 distinct), bigrams of "nacht" =
	// {na,ac,ch,ht}: one shared bigram, three unmatched -> 1/(4+3) ≈ 0.1429.
	score := ngramScore("night", "nacht", 2)
	assert.InDelta(t, float32(1.0/7.0), score, 0.001)

	match, err := Ngram("night", "nacht", []string{"2", "0.1"})
	require.NoError(t, err)
	assert.True(t, match)

	match, err = Ngram("night", "nacht", []string{"2", "0.2"})
	require.NoError(t, err)
	assert.False(t, match)
}

func TestNgram_EmptyStringScoresZero(t *testing.T) {
	assert.Equal(t, float32(0), ngramScore("", "abc", 2))
	assert.Equal(t, float32(0), ngramScore("abc", "", 2))
	assert.Equal(t, float32(0), ngramScore("", "", 2))
}

func TestNgram_ShorterThanWindowScoresZero(t *testing.T) {
	assert.Equal(t, float32(0), ngramScore("a", "ab", 2))
}

func TestNgram_SelfSimilarityOne(t *testing.T) {
	assert.Equal(t, float32(1), ngramScore("hello", "hello", 2))
}

func TestNgram_Symmetric(t *testing.T) {
	assert.Equal(t, ngramScore("night", "nacht", 2), ngramScore("nacht", "night", 2))
}

func TestNgram_NonASCII(t *testing.T) {
	// Bigrams must be taken over code points, not bytes: "café" has 4
	// runes but 5 UTF-8 bytes, so byte-offset slicing would cut the é in
	// half. This should enumerate exactly 3 bigrams: "ca", "af", "fé".
	tokens := ngramTokens([]rune("café"), 2)
	assert.Equal(t, []string{"ca", "af", "fé"}, tokens)
}
