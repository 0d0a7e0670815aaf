package review_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book2screen/book2screen/internal/core/review"
)

func newReviewService() *review.Service {
	return review.NewService(review.NewMemoryStore(), slog.Default())
}

/*
TestService_Add_PrependsMostRecentFirst verifies that the second review lands
ahead of the first.
*/
func TestService_Add_PrependsMostRecentFirst(t *testing.T) {
	service := newReviewService()
	ctx := context.Background()

	first := service.Add(ctx, review.Review{UserName: "Alice M.", Comment: "Loved the book more.", ItemID: "adp-1"})
	second := service.Add(ctx, review.Review{UserName: "BookWorm99", Comment: "The movie nailed it.", ItemID: "adp-2"})

	ledger := service.ListAll(ctx)
	require.Len(t, ledger, 2)
	assert.Equal(t, second.ID, ledger[0].ID)
	assert.Equal(t, first.ID, ledger[1].ID)
}

/*
TestService_Add_Defaults checks ID prefixing and the date stamp fallback.
*/
func TestService_Add_Defaults(t *testing.T) {
	service := newReviewService()
	ctx := context.Background()

	stamped := service.Add(ctx, review.Review{UserName: "Alice M.", Date: "2024-05-01"})
	assert.Equal(t, "2024-05-01", stamped.Date)
	assert.True(t, strings.HasPrefix(stamped.ID, "rev-"))

	today := service.Add(ctx, review.Review{UserName: "Alice M."})
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, today.Date)
}

/*
TestService_Add_AllowsDuplicates confirms there is no dedup: the same reader
may review the same item twice.
*/
func TestService_Add_AllowsDuplicates(t *testing.T) {
	service := newReviewService()
	ctx := context.Background()

	service.Add(ctx, review.Review{UserName: "Alice M.", ItemID: "adp-1", Rating: 5})
	service.Add(ctx, review.Review{UserName: "Alice M.", ItemID: "adp-1", Rating: 2})

	assert.Len(t, service.ByItem(ctx, "adp-1"), 2)
}

/*
TestService_ByItem_And_ByUser covers the two ledger queries and their ordering.
*/
func TestService_ByItem_And_ByUser(t *testing.T) {
	service := newReviewService()
	ctx := context.Background()

	service.Add(ctx, review.Review{UserName: "Alice M.", ItemID: "adp-1", Comment: "first"})
	service.Add(ctx, review.Review{UserName: "BookWorm99", ItemID: "adp-1", Comment: "second"})
	service.Add(ctx, review.Review{UserName: "Alice M.", ItemID: "adp-2", Comment: "third"})

	byItem := service.ByItem(ctx, "adp-1")
	require.Len(t, byItem, 2)
	assert.Equal(t, "second", byItem[0].Comment)
	assert.Equal(t, "first", byItem[1].Comment)

	byUser := service.ByUser(ctx, "Alice M.")
	require.Len(t, byUser, 2)
	assert.Equal(t, "third", byUser[0].Comment)
	assert.Equal(t, "first", byUser[1].Comment)

	// Display-name matching is exact.
	assert.Empty(t, service.ByUser(ctx, "alice m."))
	assert.Empty(t, service.ByItem(ctx, "adp-404"))
}
