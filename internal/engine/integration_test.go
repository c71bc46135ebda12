package engine_test

import (
	"context"
	"testing"

	"github.com/arturoveja/plata/internal/engine"
	"github.com/arturoveja/plata/internal/model"
	"github.com/arturoveja/plata/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLearningRoundTrip exercises the full feedback loop against real
// storage: a manual recategorization becomes a persisted keyword, and the
// next classification run picks it up.
func TestLearningRoundTrip(t *testing.T) {
	ctx := context.Background()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(ctx))

	sup, err := store.CreateCategory(ctx, "Supermercado", 10)
	require.NoError(t, err)
	require.NoError(t, store.CreateKeyword(ctx, sup.ID, "LULU", false))

	// First run: the Carrefour purchase matches nothing.
	snapshot, err := store.CategoriesWithKeywords(ctx)
	require.NoError(t, err)
	rules := engine.CompileRules(snapshot)

	txns := engine.Classify([]model.Transaction{
		{Details: "COMPRA CARREFOUR EXPRESS"},
	}, rules)
	require.Equal(t, model.UncategorizedName, txns[0].Category)

	// The user corrects it by hand; the engine learns CARREFOUR.
	learned, err := engine.NewLearner(store).Learn(ctx, []engine.Correction{{
		Details:     txns[0].Details,
		OldCategory: txns[0].Category,
		NewCategory: "Supermercado",
	}})
	require.NoError(t, err)
	require.Equal(t, 1, learned)

	// Next run compiles fresh rules and auto-assigns the new merchant.
	snapshot, err = store.CategoriesWithKeywords(ctx)
	require.NoError(t, err)
	rules = engine.CompileRules(snapshot)

	next := engine.Classify([]model.Transaction{
		{Details: "CARREFOUR MARKET ABU DHABI"},
		{Details: "COMPRA LULU HYPERMARKET"},
	}, rules)
	assert.Equal(t, "Supermercado", next[0].Category)
	assert.Equal(t, "Supermercado", next[1].Category)
}
