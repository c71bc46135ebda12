// Package service defines the interfaces the engine and CLI consume from
// collaborators, chiefly the persistence layer.
package service

import (
	"context"

	"github.com/arturoveja/plata/internal/model"
)

// CategoryReader is the read-side contract the rule compiler and the
// learning loop depend on.
type CategoryReader interface {
	// CategoriesWithKeywords returns a full snapshot of categories, each
	// carrying its keyword list in insertion order, categories ordered by
	// ascending priority then name.
	CategoriesWithKeywords(ctx context.Context) ([]model.CategoryWithKeywords, error)
	// GetCategoryByName resolves a category by exact name. A missing
	// category returns (nil, nil), not an error.
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
}

// KeywordWriter is the write-side contract of the learning loop.
type KeywordWriter interface {
	// CreateKeyword persists a new keyword bound to a category. Empty or
	// whitespace-only patterns are rejected at the boundary and never
	// stored.
	CreateKeyword(ctx context.Context, categoryID int, pattern string, isRegex bool) error
}

// Storage is the full persistence contract, combining what the engine needs
// with the management operations the CLI exposes.
type Storage interface {
	CategoryReader
	KeywordWriter

	CreateCategory(ctx context.Context, name string, priority int) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int) error
	UpdateCategoryPriority(ctx context.Context, id, priority int) error

	DeleteKeyword(ctx context.Context, id int) error
	SetKeywordEnabled(ctx context.Context, id int, enabled bool) error

	Migrate(ctx context.Context) error
	Close() error
}
