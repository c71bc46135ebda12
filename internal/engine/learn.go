package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arturoveja/plata/internal/model"
	"github.com/arturoveja/plata/internal/pattern"
	"github.com/arturoveja/plata/internal/service"
)

// Correction records one user edit: a transaction whose category was changed
// away from what the engine assigned.
type Correction struct {
	Details     string
	OldCategory string
	NewCategory string
}

// learnStore is the slice of the persistence contract learning needs.
type learnStore interface {
	service.CategoryReader
	service.KeywordWriter
}

// Learner turns manual recategorizations into persisted keywords so the next
// classification run picks them up.
type Learner struct {
	store learnStore
}

// NewLearner builds a learner over the given store.
func NewLearner(store learnStore) *Learner {
	return &Learner{store: store}
}

// Learn processes a batch of corrections and returns how many keywords were
// persisted. Each correction independently attempts to learn: a correction
// with no extractable keyword or an unresolvable category name is skipped
// silently, and a storage failure on one correction does not stop the rest.
// Duplicate keywords are left to the persistence layer's uniqueness policy.
func (l *Learner) Learn(ctx context.Context, corrections []Correction) (int, error) {
	learned := 0
	var firstErr error

	for _, c := range corrections {
		if c.NewCategory == c.OldCategory {
			continue
		}

		keyword, ok := pattern.ExtractKeyword(c.Details)
		if !ok {
			slog.Debug("nothing learnable from details", "details", c.Details)
			continue
		}

		cat, err := l.store.GetCategoryByName(ctx, c.NewCategory)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("resolving category %q: %w", c.NewCategory, err)
			}
			continue
		}
		if cat == nil {
			slog.Debug("skipping learning for unknown category", "category", c.NewCategory)
			continue
		}

		if err := l.store.CreateKeyword(ctx, cat.ID, keyword, false); err != nil {
			slog.Warn("failed to persist learned keyword",
				"keyword", keyword,
				"category", c.NewCategory,
				"error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		slog.Info("learned keyword from correction",
			"keyword", keyword,
			"category", c.NewCategory)
		learned++
	}

	return learned, firstErr
}

// DetectCorrections diffs an engine-classified batch against the same batch
// after user edits and returns one correction per changed category. Both
// slices must describe the same transactions in the same order; any length
// mismatch means the batches diverged and nothing is detected.
func DetectCorrections(before, after []model.Transaction) []Correction {
	if len(before) != len(after) {
		return nil
	}

	var corrections []Correction
	for i := range before {
		if before[i].Category == after[i].Category {
			continue
		}
		corrections = append(corrections, Correction{
			Details:     before[i].Details,
			OldCategory: before[i].Category,
			NewCategory: after[i].Category,
		})
	}
	return corrections
}
