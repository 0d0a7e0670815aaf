package catalog_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book2screen/book2screen/internal/core/catalog"
	"github.com/book2screen/book2screen/internal/platform/apperr"
)

// stubCompletion is a fixed CompletedIDs source for service tests.
type stubCompletion map[string]bool

func (s stubCompletion) CompletedIDs(context.Context) map[string]bool { return s }

func newCatalogService(completed stubCompletion) (*catalog.Service, *catalog.MemoryStore) {
	store := catalog.NewMemoryStore()
	service := catalog.NewService(store, completed, slog.Default())
	return service, store
}

func validEntry() catalog.Adaptation {
	return catalog.Adaptation{
		BookTitle:   "Dune",
		MovieTitle:  "Dune: Part One",
		Author:      "Frank Herbert",
		ReleaseYear: "2021",
		Genre:       []string{"Sci-Fi"},
	}
}

/*
TestService_AddAdaptation checks ID assignment, slug derivation, and appending.
*/
func TestService_AddAdaptation(t *testing.T) {
	service, store := newCatalogService(stubCompletion{})
	ctx := context.Background()

	added, err := service.AddAdaptation(ctx, validEntry())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(added.ID, "adp-"))
	assert.Equal(t, "dune", added.Slug)
	assert.Equal(t, 1, store.CountAdaptations(ctx))

	// A second add appends after the first.
	second := validEntry()
	second.BookTitle = "The Shining"
	addedSecond, err := service.AddAdaptation(ctx, second)
	require.NoError(t, err)

	items := store.ListAdaptations(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, added.ID, items[0].ID)
	assert.Equal(t, addedSecond.ID, items[1].ID)
}

/*
TestService_AddAdaptation_Validation rejects entries missing required fields.
*/
func TestService_AddAdaptation_Validation(t *testing.T) {
	service, store := newCatalogService(stubCompletion{})
	ctx := context.Background()

	entry := validEntry()
	entry.BookTitle = ""
	entry.ReleaseYear = " "

	_, err := service.AddAdaptation(ctx, entry)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, 0, store.CountAdaptations(ctx))
}

/*
TestService_UpdateAdaptation_UnknownIDIsSilent verifies that editing a missing
entry reports success and changes nothing.
*/
func TestService_UpdateAdaptation_UnknownIDIsSilent(t *testing.T) {
	service, store := newCatalogService(stubCompletion{})
	ctx := context.Background()

	added, err := service.AddAdaptation(ctx, validEntry())
	require.NoError(t, err)
	before := store.ListAdaptations(ctx)

	ghost := validEntry()
	ghost.ID = "adp-ghost"
	_, err = service.UpdateAdaptation(ctx, ghost)
	assert.NoError(t, err)
	assert.Equal(t, before, store.ListAdaptations(ctx))

	// A real update still lands.
	changed := added
	changed.MovieTitle = "Dune: Part Two"
	_, err = service.UpdateAdaptation(ctx, changed)
	require.NoError(t, err)

	got, err := service.GetAdaptation(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune: Part Two", got.MovieTitle)
}

/*
TestService_DeleteAdaptation_UnknownIDIsSilent verifies delete's no-op path.
*/
func TestService_DeleteAdaptation_UnknownIDIsSilent(t *testing.T) {
	service, store := newCatalogService(stubCompletion{})
	ctx := context.Background()

	added, err := service.AddAdaptation(ctx, validEntry())
	require.NoError(t, err)

	service.DeleteAdaptation(ctx, "adp-ghost")
	assert.Equal(t, 1, store.CountAdaptations(ctx))

	service.DeleteAdaptation(ctx, added.ID)
	assert.Equal(t, 0, store.CountAdaptations(ctx))
}

/*
TestService_GetAdaptation_NotFound maps a missing ID to a 404 AppError.
*/
func TestService_GetAdaptation_NotFound(t *testing.T) {
	service, _ := newCatalogService(stubCompletion{})

	_, err := service.GetAdaptation(context.Background(), "adp-404")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestService_Browse wires the completion source into filtering.
*/
func TestService_Browse(t *testing.T) {
	ctx := context.Background()

	store := catalog.NewMemoryStore()
	store.AddAdaptation(ctx, catalog.Adaptation{ID: "adp-1", BookTitle: "Dune"})
	store.AddAdaptation(ctx, catalog.Adaptation{ID: "adp-2", BookTitle: "Gone Girl"})

	service := catalog.NewService(store, stubCompletion{"adp-1": true}, slog.Default())

	hidden := service.Browse(ctx, catalog.Query{})
	assert.Equal(t, []string{"adp-2"}, idsOf(hidden))

	shown := service.Browse(ctx, catalog.Query{ShowCompleted: true})
	assert.Equal(t, []string{"adp-1", "adp-2"}, idsOf(shown))
}
