package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arturoveja/plata/internal/model"
)

// CategoriesWithKeywords returns the full snapshot the rule compiler
// consumes: every category carrying its keyword list. Categories are ordered
// by ascending priority then name; keywords by insertion (id) order.
func (s *SQLiteStorage) CategoriesWithKeywords(ctx context.Context) ([]model.CategoryWithKeywords, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, priority, created_at
		FROM categories
		ORDER BY priority ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.CategoryWithKeywords
	index := make(map[int]int)
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Priority, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		index[cat.ID] = len(categories)
		categories = append(categories, model.CategoryWithKeywords{Category: cat})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	kwRows, err := s.db.QueryContext(ctx, `
		SELECT id, category_id, pattern, is_regex, enabled, created_at
		FROM keywords
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query keywords: %w", err)
	}
	defer kwRows.Close()

	for kwRows.Next() {
		var kw model.Keyword
		if err := kwRows.Scan(&kw.ID, &kw.CategoryID, &kw.Pattern, &kw.IsRegex, &kw.Enabled, &kw.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan keyword: %w", err)
		}
		if i, ok := index[kw.CategoryID]; ok {
			categories[i].Keywords = append(categories[i].Keywords, kw)
		}
	}
	if err := kwRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating keywords: %w", err)
	}

	slog.Debug("retrieved category snapshot", "count", len(categories))
	return categories, nil
}

// GetCategoryByName resolves a category by exact name after trimming.
// A missing category returns (nil, nil).
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: name", ErrEmptyString)
	}

	var cat model.Category
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, priority, created_at
		FROM categories
		WHERE name = ?`, trimmed).Scan(&cat.ID, &cat.Name, &cat.Priority, &cat.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	return &cat, nil
}

// CreateCategory creates a new category. Names are trimmed; empty names and
// the reserved Uncategorized name are rejected at the boundary. Creating a
// category that already exists returns the existing row unchanged.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name string, priority int) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: name", ErrEmptyString)
	}
	if trimmed == model.UncategorizedName {
		return nil, fmt.Errorf("%w: %s", ErrReservedCategory, trimmed)
	}
	if err := validatePriority(priority); err != nil {
		return nil, err
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO categories (name, priority)
		VALUES (?, ?)`, trimmed, priority); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	cat, err := s.GetCategoryByName(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("category %q vanished after insert", trimmed)
	}

	slog.Info("created category", "name", cat.Name, "id", cat.ID, "priority", cat.Priority)
	return cat, nil
}

// DeleteCategory removes a category and, through the foreign key cascade,
// all of its keywords. The Uncategorized category is protected.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM categories WHERE id = ?`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: category %d", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to look up category: %w", err)
	}
	if name == model.UncategorizedName {
		return fmt.Errorf("%w: %s", ErrProtectedRow, name)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	slog.Info("deleted category", "name", name, "id", id)
	return nil
}

// UpdateCategoryPriority changes a category's evaluation priority.
func (s *SQLiteStorage) UpdateCategoryPriority(ctx context.Context, id, priority int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePriority(priority); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE categories SET priority = ? WHERE id = ?`, priority, id)
	if err != nil {
		return fmt.Errorf("failed to update category priority: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: category %d", ErrNotFound, id)
	}
	return nil
}
