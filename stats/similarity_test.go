package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "ab", 2},
		{"same", "same", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"night", "nacht", 2},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Levenshtein(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestLevenshteinIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"hotel california", "hotel californication"},
		{"", "abc"},
	}
	for _, p := range pairs {
		assert.Equal(t, Levenshtein(p[0], p[1]), Levenshtein(p[1], p[0]))
	}
}

func TestSimilarity(t *testing.T) {
	// Equal strings are a perfect match
	assert.Equal(t, 1.0, Similarity("same", "same"))
	assert.Equal(t, 1.0, Similarity("", ""))

	// Empty against non-empty has nothing in common
	assert.Equal(t, 0.0, Similarity("a", ""))
	assert.Equal(t, 0.0, Similarity("", "a"))

	// Containment fast path
	assert.Equal(t, 0.8, Similarity("hello", "hello world"))
	assert.Equal(t, 0.8, Similarity("hello world", "hello"))

	// Normalized edit distance otherwise
	assert.InDelta(t, 0.6, Similarity("night", "nacht"), 1e-9)
	assert.Equal(t, 0.0, Similarity("abcd", "wxyz"))
}
