// Package engine implements the rule-based categorization core: compiling
// priority-ordered rules from persisted category state, applying them to
// transaction batches under first-match-wins semantics, and learning new
// keywords from user corrections.
package engine

import (
	"log/slog"
	"sort"

	"github.com/arturoveja/plata/internal/model"
	"github.com/arturoveja/plata/internal/pattern"
)

// Rule is one category's compiled matching rule. Rules are built fresh from
// the persisted snapshot on every classification run, never mutated, and
// discarded after use.
type Rule struct {
	Name     string
	Priority int
	matchers []pattern.Matcher
}

// Matches reports whether any of the rule's patterns match the lowered
// details text. One matching pattern is sufficient.
func (r Rule) Matches(loweredDetails string) bool {
	for _, m := range r.matchers {
		if m.Matches(loweredDetails) {
			return true
		}
	}
	return false
}

// PatternCount returns how many patterns compiled successfully for this rule.
func (r Rule) PatternCount() int {
	return len(r.matchers)
}

// CompileRules builds the ordered rule list from a snapshot of categories
// with their keywords. The Uncategorized category is excluded
// unconditionally, as is any category without at least one enabled keyword.
// Keyword order is preserved within a rule. The output is sorted ascending
// by priority, ties broken by category name so classification is
// reproducible regardless of input order.
//
// A keyword whose regex fails to compile contributes nothing to its rule: a
// warning is logged and the remaining patterns still apply. One bad rule
// must not block classification of the whole batch.
func CompileRules(categories []model.CategoryWithKeywords) []Rule {
	rules := make([]Rule, 0, len(categories))

	for _, cat := range categories {
		if cat.IsUncategorized() {
			continue
		}

		enabled := cat.EnabledKeywords()
		if len(enabled) == 0 {
			continue
		}

		matchers := make([]pattern.Matcher, 0, len(enabled))
		for _, kw := range enabled {
			var m pattern.Matcher
			if kw.IsRegex {
				var err error
				m, err = pattern.NewRegex(kw.Pattern)
				if err != nil {
					slog.Warn("skipping malformed regex pattern",
						"category", cat.Name,
						"pattern", kw.Pattern,
						"error", err)
					continue
				}
			} else {
				m = pattern.NewSubstring(kw.Pattern)
			}
			if m != nil {
				matchers = append(matchers, m)
			}
		}

		rules = append(rules, Rule{
			Name:     cat.Name,
			Priority: cat.Priority,
			matchers: matchers,
		})
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority < rules[j].Priority
		}
		return rules[i].Name < rules[j].Name
	})

	return rules
}

// NewRule builds a rule directly from pattern text, bypassing the persisted
// snapshot. Used by tests and callers that assemble rules in memory.
func NewRule(name string, priority int, patterns ...pattern.Matcher) Rule {
	kept := make([]pattern.Matcher, 0, len(patterns))
	for _, m := range patterns {
		if m != nil {
			kept = append(kept, m)
		}
	}
	return Rule{Name: name, Priority: priority, matchers: kept}
}
