package pattern

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minKeywordLength filters out tokens too short to identify a merchant.
const minKeywordLength = 3

// numericToken matches tokens that are purely numeric, optionally with one
// decimal point (e.g. "123", "45.67").
var numericToken = regexp.MustCompile(`^\d+(\.\d+)?$`)

// ExtractKeyword derives a single representative keyword from free-text
// transaction details, typically the merchant name. It splits on whitespace
// runs, drops tokens shorter than three characters or purely numeric, and
// returns the longest remaining candidate uppercased (leftmost among equal
// lengths). The boolean is false when nothing learnable remains.
func ExtractKeyword(details string) (string, bool) {
	best := ""
	bestLen := 0
	for _, token := range strings.Fields(details) {
		n := utf8.RuneCountInString(token)
		if n < minKeywordLength || numericToken.MatchString(token) {
			continue
		}
		if n > bestLen {
			best = token
			bestLen = n
		}
	}
	if best == "" {
		return "", false
	}
	return strings.ToUpper(best), true
}
