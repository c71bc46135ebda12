package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arturoveja/plata/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestMigrate_SeedsUncategorized(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	cat, err := store.GetCategoryByName(ctx, model.UncategorizedName)
	require.NoError(t, err)
	require.NotNil(t, cat)
	assert.Equal(t, model.UncategorizedPriority, cat.Priority)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))

	cats, err := store.CategoriesWithKeywords(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestCreateCategory(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	t.Run("creates and returns category", func(t *testing.T) {
		cat, err := store.CreateCategory(ctx, "Supermercado", 10)
		require.NoError(t, err)
		assert.Equal(t, "Supermercado", cat.Name)
		assert.Equal(t, 10, cat.Priority)
		assert.NotZero(t, cat.ID)
	})

	t.Run("trims name", func(t *testing.T) {
		cat, err := store.CreateCategory(ctx, "  Transporte  ", 20)
		require.NoError(t, err)
		assert.Equal(t, "Transporte", cat.Name)
	})

	t.Run("duplicate returns existing row", func(t *testing.T) {
		first, err := store.CreateCategory(ctx, "Viajes", 30)
		require.NoError(t, err)
		second, err := store.CreateCategory(ctx, "Viajes", 50)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 30, second.Priority, "existing priority must not change")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := store.CreateCategory(ctx, "   ", 10)
		assert.ErrorIs(t, err, ErrEmptyString)
	})

	t.Run("rejects out of range priority", func(t *testing.T) {
		_, err := store.CreateCategory(ctx, "Ocio", 0)
		assert.ErrorIs(t, err, ErrInvalidPriority)
	})

	t.Run("rejects reserved name", func(t *testing.T) {
		_, err := store.CreateCategory(ctx, model.UncategorizedName, 10)
		assert.ErrorIs(t, err, ErrReservedCategory)
	})
}

func TestDeleteCategory(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	t.Run("cascades to keywords", func(t *testing.T) {
		cat, err := store.CreateCategory(ctx, "Supermercado", 10)
		require.NoError(t, err)
		require.NoError(t, store.CreateKeyword(ctx, cat.ID, "LULU", false))

		require.NoError(t, store.DeleteCategory(ctx, cat.ID))

		cats, err := store.CategoriesWithKeywords(ctx)
		require.NoError(t, err)
		for _, c := range cats {
			assert.NotEqual(t, "Supermercado", c.Name)
		}
	})

	t.Run("refuses Uncategorized", func(t *testing.T) {
		fallback, err := store.GetCategoryByName(ctx, model.UncategorizedName)
		require.NoError(t, err)
		err = store.DeleteCategory(ctx, fallback.ID)
		assert.ErrorIs(t, err, ErrProtectedRow)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := store.DeleteCategory(ctx, 99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCategoriesWithKeywords(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	ent, err := store.CreateCategory(ctx, "Entretenimiento", 20)
	require.NoError(t, err)
	sup, err := store.CreateCategory(ctx, "Supermercado", 10)
	require.NoError(t, err)

	require.NoError(t, store.CreateKeyword(ctx, sup.ID, "LULU", false))
	require.NoError(t, store.CreateKeyword(ctx, sup.ID, "CARREFOUR", false))
	require.NoError(t, store.CreateKeyword(ctx, ent.ID, "^NETFLIX", true))

	cats, err := store.CategoriesWithKeywords(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)

	// Ordered by priority, Uncategorized last at 999.
	assert.Equal(t, "Supermercado", cats[0].Name)
	assert.Equal(t, "Entretenimiento", cats[1].Name)
	assert.Equal(t, model.UncategorizedName, cats[2].Name)

	// Keywords in insertion order.
	require.Len(t, cats[0].Keywords, 2)
	assert.Equal(t, "LULU", cats[0].Keywords[0].Pattern)
	assert.Equal(t, "CARREFOUR", cats[0].Keywords[1].Pattern)

	require.Len(t, cats[1].Keywords, 1)
	assert.True(t, cats[1].Keywords[0].IsRegex)
	assert.True(t, cats[1].Keywords[0].Enabled)
}

func TestKeywords(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	cat, err := store.CreateCategory(ctx, "Supermercado", 10)
	require.NoError(t, err)

	t.Run("rejects empty pattern", func(t *testing.T) {
		err := store.CreateKeyword(ctx, cat.ID, "   ", false)
		assert.ErrorIs(t, err, ErrEmptyString)
	})

	t.Run("trims pattern", func(t *testing.T) {
		require.NoError(t, store.CreateKeyword(ctx, cat.ID, "  LULU  ", false))
		cats, err := store.CategoriesWithKeywords(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, cats[0].Keywords)
		assert.Equal(t, "LULU", cats[0].Keywords[0].Pattern)
	})

	t.Run("disable and re-enable", func(t *testing.T) {
		cats, err := store.CategoriesWithKeywords(ctx)
		require.NoError(t, err)
		id := cats[0].Keywords[0].ID

		require.NoError(t, store.SetKeywordEnabled(ctx, id, false))
		cats, err = store.CategoriesWithKeywords(ctx)
		require.NoError(t, err)
		assert.False(t, cats[0].Keywords[0].Enabled)
		assert.Empty(t, cats[0].EnabledKeywords())

		require.NoError(t, store.SetKeywordEnabled(ctx, id, true))
		cats, err = store.CategoriesWithKeywords(ctx)
		require.NoError(t, err)
		assert.True(t, cats[0].Keywords[0].Enabled)
	})

	t.Run("delete", func(t *testing.T) {
		cats, err := store.CategoriesWithKeywords(ctx)
		require.NoError(t, err)
		id := cats[0].Keywords[0].ID

		require.NoError(t, store.DeleteKeyword(ctx, id))
		assert.ErrorIs(t, store.DeleteKeyword(ctx, id), ErrNotFound)
	})
}

func TestMigrateLegacyJSON(t *testing.T) {
	ctx := context.Background()

	writeLegacy := func(t *testing.T, content any) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "categories.json")
		data, err := json.Marshal(content)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0600))
		return path
	}

	t.Run("imports categories and keywords", func(t *testing.T) {
		store := newTestStorage(t)
		path := writeLegacy(t, map[string][]string{
			"Supermercado": {"LULU", "CARREFOUR"},
			"Transporte":   {"UBER"},
		})

		require.NoError(t, store.MigrateLegacyJSON(ctx, path))

		cats, err := store.CategoriesWithKeywords(ctx)
		require.NoError(t, err)
		require.Len(t, cats, 3)
		assert.Equal(t, model.DefaultPriority, cats[0].Priority)
	})

	t.Run("does not run twice", func(t *testing.T) {
		store := newTestStorage(t)
		path := writeLegacy(t, map[string][]string{"Supermercado": {"LULU"}})

		require.NoError(t, store.MigrateLegacyJSON(ctx, path))
		require.NoError(t, store.MigrateLegacyJSON(ctx, path))

		cats, err := store.CategoriesWithKeywords(ctx)
		require.NoError(t, err)
		var sup model.CategoryWithKeywords
		for _, c := range cats {
			if c.Name == "Supermercado" {
				sup = c
			}
		}
		assert.Len(t, sup.Keywords, 1)
	})

	t.Run("missing file is a no-op", func(t *testing.T) {
		store := newTestStorage(t)
		require.NoError(t, store.MigrateLegacyJSON(ctx, filepath.Join(t.TempDir(), "nope.json")))
	})

	t.Run("corrupt file is skipped, not fatal", func(t *testing.T) {
		store := newTestStorage(t)
		path := filepath.Join(t.TempDir(), "categories.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
		require.NoError(t, store.MigrateLegacyJSON(ctx, path))
	})

	t.Run("skips migration when user categories exist", func(t *testing.T) {
		store := newTestStorage(t)
		_, err := store.CreateCategory(ctx, "Existente", 10)
		require.NoError(t, err)

		path := writeLegacy(t, map[string][]string{"Supermercado": {"LULU"}})
		require.NoError(t, store.MigrateLegacyJSON(ctx, path))

		cat, err := store.GetCategoryByName(ctx, "Supermercado")
		require.NoError(t, err)
		assert.Nil(t, cat)
	})
}
