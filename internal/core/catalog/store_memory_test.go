package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book2screen/book2screen/internal/core/catalog"
)

/*
TestMemoryStore_InsertionOrder verifies that additions append and listings
preserve catalog order.
*/
func TestMemoryStore_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()

	store.AddAdaptation(ctx, catalog.Adaptation{ID: "adp-1", BookTitle: "Dune"})
	store.AddAdaptation(ctx, catalog.Adaptation{ID: "adp-2", BookTitle: "The Shining"})
	store.AddAdaptation(ctx, catalog.Adaptation{ID: "adp-3", BookTitle: "Gone Girl"})

	items := store.ListAdaptations(ctx)
	assert.Equal(t, []string{"adp-1", "adp-2", "adp-3"}, idsOf(items))
	assert.Equal(t, 3, store.CountAdaptations(ctx))
}

/*
TestMemoryStore_UpdatePreservesPosition verifies in-place replacement.
*/
func TestMemoryStore_UpdatePreservesPosition(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()

	store.AddAdaptation(ctx, catalog.Adaptation{ID: "adp-1", BookTitle: "Dune"})
	store.AddAdaptation(ctx, catalog.Adaptation{ID: "adp-2", BookTitle: "The Shining"})

	replaced := store.UpdateAdaptation(ctx, catalog.Adaptation{ID: "adp-1", BookTitle: "Dune Messiah"})
	assert.True(t, replaced)

	items := store.ListAdaptations(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, "adp-1", items[0].ID)
	assert.Equal(t, "Dune Messiah", items[0].BookTitle)
}

/*
TestMemoryStore_UpdateUnknownIDIsNoOp verifies the total-mutation contract:
an update against a missing ID leaves the catalog element-for-element intact.
*/
func TestMemoryStore_UpdateUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()

	store.AddAdaptation(ctx, catalog.Adaptation{ID: "adp-1", BookTitle: "Dune"})
	before := store.ListAdaptations(ctx)

	replaced := store.UpdateAdaptation(ctx, catalog.Adaptation{ID: "adp-missing", BookTitle: "Ghost"})
	assert.False(t, replaced)
	assert.Equal(t, before, store.ListAdaptations(ctx))
}

/*
TestMemoryStore_Delete covers removal and the unknown-ID no-op.
*/
func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()

	store.AddAdaptation(ctx, catalog.Adaptation{ID: "adp-1"})
	store.AddAdaptation(ctx, catalog.Adaptation{ID: "adp-2"})

	assert.True(t, store.DeleteAdaptation(ctx, "adp-1"))
	assert.Equal(t, []string{"adp-2"}, idsOf(store.ListAdaptations(ctx)))

	assert.False(t, store.DeleteAdaptation(ctx, "adp-1"))
	assert.Equal(t, 1, store.CountAdaptations(ctx))
}

/*
TestMemoryStore_Get covers lookup hits and misses.
*/
func TestMemoryStore_Get(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	store.AddAdaptation(ctx, catalog.Adaptation{ID: "adp-1", BookTitle: "Dune"})

	item, found := store.GetAdaptation(ctx, "adp-1")
	require.True(t, found)
	assert.Equal(t, "Dune", item.BookTitle)

	_, found = store.GetAdaptation(ctx, "adp-404")
	assert.False(t, found)
}
