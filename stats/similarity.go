package stats

import "strings"

// Levenshtein computes the edit distance between two strings over runes,
// counting insertions, deletions, and substitutions. Two-row dynamic
// programming keeps memory linear in the shorter string.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity scores two strings in [0,1] using normalized edit distance.
// Equal strings score 1.0. When one string contains the other, a fast path
// returns 0.8 without computing the full distance.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}

	maxLen := max(len([]rune(a)), len([]rune(b)))
	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}
