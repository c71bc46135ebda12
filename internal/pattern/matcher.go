// Package pattern provides the matching primitives the categorization engine
// is built on: substring and regex matchers, keyword extraction from
// transaction details, and an optional fuzzy similarity fallback.
package pattern

import (
	"regexp"
	"strings"
)

// Matcher evaluates whether a transaction's details text matches one pattern.
// Implementations receive details already lowered by the caller so a batch
// pays the normalization cost once per transaction, not once per pattern.
type Matcher interface {
	// Matches reports whether the lowered details text matches.
	Matches(loweredDetails string) bool
	// Source returns the original pattern text, for diagnostics.
	Source() string
}

// substringMatcher matches when the details contain the pattern text,
// case-insensitively. Internal whitespace in the pattern is significant.
type substringMatcher struct {
	lowered string
	source  string
}

func (m substringMatcher) Matches(loweredDetails string) bool {
	return strings.Contains(loweredDetails, m.lowered)
}

func (m substringMatcher) Source() string { return m.source }

// regexMatcher matches when the pattern is found anywhere in the details
// (search semantics, not full match).
type regexMatcher struct {
	re     *regexp.Regexp
	source string
}

func (m regexMatcher) Matches(loweredDetails string) bool {
	return m.re.MatchString(loweredDetails)
}

func (m regexMatcher) Source() string { return m.source }

// NewSubstring builds a case-insensitive substring matcher. The pattern is
// trimmed before compilation; a pattern that is empty after trimming yields
// nil.
func NewSubstring(pattern string) Matcher {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return nil
	}
	return substringMatcher{lowered: strings.ToLower(trimmed), source: trimmed}
}

// NewRegex builds a case-insensitive regex matcher with search semantics.
// The pattern is trimmed before compilation. A malformed pattern returns an
// error so the caller can degrade it to "matches nothing" instead of
// aborting the batch.
func NewRegex(pattern string) (Matcher, error) {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return nil, nil
	}
	re, err := regexp.Compile("(?i)" + trimmed)
	if err != nil {
		return nil, err
	}
	return regexMatcher{re: re, source: trimmed}, nil
}
