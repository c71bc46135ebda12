package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/arturoveja/plata/internal/model"
)

// MigrateLegacyJSON imports categories from an old categories.json file of
// the shape {"Category": ["KW1", "KW2", ...], ...}. It only runs while no
// user categories exist, so repeated invocations never duplicate anything.
// A missing or corrupt file is not an error: the migration simply does not
// happen.
func (s *SQLiteStorage) MigrateLegacyJSON(ctx context.Context, path string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read legacy config: %w", err)
	}

	var userCategories int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categories WHERE name != ?`,
		model.UncategorizedName).Scan(&userCategories); err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if userCategories > 0 {
		slog.Debug("skipping legacy JSON migration, user categories already exist")
		return nil
	}

	var legacy map[string][]string
	if err := json.Unmarshal(data, &legacy); err != nil {
		slog.Warn("legacy config is not valid JSON, skipping migration",
			"path", path, "error", err)
		return nil
	}

	imported := 0
	for name, keywords := range legacy {
		cleaned := strings.TrimSpace(name)
		if cleaned == "" || cleaned == model.UncategorizedName {
			continue
		}

		cat, err := s.CreateCategory(ctx, cleaned, model.DefaultPriority)
		if err != nil {
			return fmt.Errorf("failed to migrate category %q: %w", cleaned, err)
		}

		for _, kw := range keywords {
			if strings.TrimSpace(kw) == "" {
				continue
			}
			if err := s.CreateKeyword(ctx, cat.ID, kw, false); err != nil {
				return fmt.Errorf("failed to migrate keyword %q: %w", kw, err)
			}
		}
		imported++
	}

	slog.Info("migrated legacy JSON config", "path", path, "categories", imported)
	return nil
}
