package engine

import (
	"strings"

	"github.com/arturoveja/plata/internal/model"
	"github.com/arturoveja/plata/internal/pattern"
)

// Classify applies the ordered rule list to the batch under first-match-wins
// semantics and returns the batch with every transaction carrying a definite
// category. The slice is mutated in place.
//
// Transactions that already carry a category are left alone, so re-running
// classification over a partially categorized batch is idempotent. The
// still-uncategorized subset is tracked as an explicit index set that
// shrinks after each rule, giving O(transactions x rules x patterns) with
// early termination once the set empties.
func Classify(txns []model.Transaction, rules []Rule) []model.Transaction {
	lowered := make([]string, len(txns))
	remaining := make([]int, 0, len(txns))
	for i := range txns {
		if txns[i].Category == "" {
			txns[i].Category = model.UncategorizedName
		}
		if txns[i].Category == model.UncategorizedName {
			lowered[i] = strings.ToLower(txns[i].Details)
			remaining = append(remaining, i)
		}
	}

	for _, rule := range rules {
		if len(remaining) == 0 {
			break
		}

		next := remaining[:0]
		for _, i := range remaining {
			if rule.Matches(lowered[i]) {
				txns[i].Category = rule.Name
			} else {
				next = append(next, i)
			}
		}
		remaining = next
	}

	return txns
}

// SuggestCategory runs the optional fuzzy fallback for a single record
// against the candidate category names from the snapshot, excluding
// Uncategorized. A nil matcher is a valid configuration and degrades to "no
// result" rather than failing.
func SuggestCategory(f *pattern.FuzzyMatcher, details string, categories []model.CategoryWithKeywords) (string, bool) {
	if f == nil {
		return "", false
	}
	candidates := make([]string, 0, len(categories))
	for _, cat := range categories {
		if cat.IsUncategorized() {
			continue
		}
		candidates = append(candidates, cat.Name)
	}
	return f.BestMatch(details, candidates)
}
