package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// CreateKeyword persists a new keyword bound to a category. Pattern text is
// trimmed; empty or whitespace-only patterns are rejected and never stored.
// Duplicate patterns under the same category are allowed to accumulate; the
// engine tolerates them.
func (s *SQLiteStorage) CreateKeyword(ctx context.Context, categoryID int, pattern string, isRegex bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return fmt.Errorf("%w: pattern", ErrEmptyString)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO keywords (category_id, pattern, is_regex, enabled)
		VALUES (?, ?, ?, 1)`, categoryID, trimmed, isRegex)
	if err != nil {
		return fmt.Errorf("failed to create keyword: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get keyword ID: %w", err)
	}

	slog.Debug("created keyword",
		"id", id,
		"category_id", categoryID,
		"pattern", trimmed,
		"is_regex", isRegex)
	return nil
}

// DeleteKeyword removes a keyword by id.
func (s *SQLiteStorage) DeleteKeyword(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM keywords WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete keyword: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: keyword %d", ErrNotFound, id)
	}
	return nil
}

// SetKeywordEnabled toggles whether a keyword participates in rule
// compilation without deleting it.
func (s *SQLiteStorage) SetKeywordEnabled(ctx context.Context, id int, enabled bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE keywords SET enabled = ? WHERE id = ?`, enabled, id)
	if err != nil {
		return fmt.Errorf("failed to update keyword: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: keyword %d", ErrNotFound, id)
	}
	return nil
}
