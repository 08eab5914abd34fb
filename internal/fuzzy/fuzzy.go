// Package fuzzy implements the approximate string matching behind place
// search. Scores are 0..100, where 100 is an exact match after normalization.
package fuzzy

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Normalize lowercases s and collapses runs of whitespace to single spaces.
// Matching is always performed on normalized strings so that case and spacing
// differences never cost score.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Ratio returns the normalized Levenshtein similarity of a and b in 0..100.
// Two empty strings are identical (100).
func Ratio(a, b string) int {
	a, b = Normalize(a), Normalize(b)
	if a == b {
		return 100
	}

	la, lb := len([]rune(a)), len([]rune(b))
	max := la
	if lb > max {
		max = lb
	}
	if max == 0 {
		return 100
	}

	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(max))))
}

// TokenSortRatio tokenizes both strings, sorts the tokens and compares the
// rejoined forms. Word order therefore never costs score: "koshi province" and
// "province koshi" rate 100.
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
