package model

import "time"

// Keyword associates a matching pattern with a category. A keyword is either
// a plain substring or a regular expression, and can be toggled off without
// deleting it.
type Keyword struct {
	CreatedAt  time.Time
	Pattern    string
	ID         int
	CategoryID int
	IsRegex    bool
	Enabled    bool
}
