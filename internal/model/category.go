// Package model defines the core domain models used throughout the application.
package model

import "time"

// UncategorizedName is the distinguished category every transaction starts in.
// It always exists, carries the lowest evaluation precedence, and is never
// deleted by normal user flows.
const UncategorizedName = "Uncategorized"

const (
	// DefaultPriority is assigned to user categories created without an
	// explicit priority. Lower values are evaluated earlier.
	DefaultPriority = 100
	// UncategorizedPriority keeps the fallback category last in evaluation
	// order.
	UncategorizedPriority = 999
)

// Category represents a named bucket a transaction can be classified into.
type Category struct {
	CreatedAt time.Time
	Name      string
	ID        int
	Priority  int
}

// IsUncategorized reports whether this is the fallback category.
func (c Category) IsUncategorized() bool {
	return c.Name == UncategorizedName
}

// CategoryWithKeywords is the snapshot shape the rule compiler consumes:
// one category carrying its full keyword list in insertion order.
type CategoryWithKeywords struct {
	Category
	Keywords []Keyword
}

// EnabledKeywords returns the keywords that participate in rule compilation.
func (c CategoryWithKeywords) EnabledKeywords() []Keyword {
	enabled := make([]Keyword, 0, len(c.Keywords))
	for _, kw := range c.Keywords {
		if kw.Enabled {
			enabled = append(enabled, kw)
		}
	}
	return enabled
}
