// Package similarity flags near-duplicate identifiers using edit distance.
package similarity

import "strings"

// DefaultThreshold is the normalized-distance cutoff below which two
// names are considered likely duplicates.
const DefaultThreshold = 0.3

// EditDistance returns the Levenshtein distance between a and b:
// the minimum number of single-rune inserts, deletes, and substitutions
// needed to turn one into the other.
func EditDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// dp[i][j] = distance between ra[:i] and rb[:j]
	dp := make([][]int, len(ra)+1)
	for i := range dp {
		dp[i] = make([]int, len(rb)+1)
		dp[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		dp[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			dp[i][j] = min(
				dp[i-1][j]+1,      // delete
				dp[i][j-1]+1,      // insert
				dp[i-1][j-1]+cost, // substitute
			)
		}
	}

	return dp[len(ra)][len(rb)]
}

// IsSimilar reports whether a and b are within threshold of each other,
// measured as edit distance divided by the length of the longer string.
// Comparison is case-insensitive. Two empty strings are similar: they
// are equal, even if degenerately so.
func IsSimilar(a, b string, threshold float64) bool {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)

	longest := max(len([]rune(la)), len([]rune(lb)))
	if longest == 0 {
		return true
	}

	ratio := float64(EditDistance(la, lb)) / float64(longest)
	return ratio <= threshold
}

// Pair is a flagged pair of similar names.
type Pair struct {
	A string
	B string
}

// ScanNames compares every unordered pair of names at the default
// threshold and returns the flagged pairs in encounter order. Quadratic,
// which is fine for the command counts seen per directory.
func ScanNames(names []string) []Pair {
	var pairs []Pair
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if IsSimilar(names[i], names[j], DefaultThreshold) {
				pairs = append(pairs, Pair{A: names[i], B: names[j]})
			}
		}
	}
	return pairs
}
