package pattern

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultFuzzyThreshold is the minimum similarity score (0..100) a candidate
// must reach before the fuzzy matcher reports it.
const DefaultFuzzyThreshold = 80

// FuzzyMatcher scores approximate similarity between transaction details and
// candidate category names. It is not part of the default classification
// path; callers inject it where best-effort single-record matching is
// wanted, and a nil *FuzzyMatcher is a valid configuration meaning "absent".
type FuzzyMatcher struct {
	Threshold int
}

// NewFuzzyMatcher returns a matcher with the given threshold; values outside
// 0..100 fall back to the default.
func NewFuzzyMatcher(threshold int) *FuzzyMatcher {
	if threshold < 0 || threshold > 100 {
		threshold = DefaultFuzzyThreshold
	}
	return &FuzzyMatcher{Threshold: threshold}
}

// BestMatch returns the single best-scoring candidate whose token-sort
// similarity to details meets the threshold. The boolean is false when the
// matcher is nil, the normalized details are empty, the candidate list is
// empty, or no candidate scores high enough.
func (f *FuzzyMatcher) BestMatch(details string, candidates []string) (string, bool) {
	if f == nil {
		return "", false
	}
	text := strings.ToLower(strings.TrimSpace(details))
	if text == "" || len(candidates) == 0 {
		return "", false
	}

	best := ""
	bestScore := -1
	for _, candidate := range candidates {
		score := TokenSortRatio(text, candidate)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}
	if bestScore < f.Threshold {
		return "", false
	}
	return best, true
}

// TokenSortRatio computes a token-order-insensitive similarity score between
// two strings on a 0..100 scale: both sides are lowercased, split into
// tokens, sorted, rejoined, and compared by Levenshtein distance.
func TokenSortRatio(a, b string) int {
	na := tokenSort(a)
	nb := tokenSort(b)
	if na == "" && nb == "" {
		return 100
	}
	longest := len([]rune(na))
	if n := len([]rune(nb)); n > longest {
		longest = n
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(na, nb)
	return (longest - dist) * 100 / longest
}

func tokenSort(s string) string {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
