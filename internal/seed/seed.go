package seed

import (
	"context"
	"log/slog"

	"github.com/book2screen/book2screen/internal/core/author"
	"github.com/book2screen/book2screen/internal/core/catalog"
	"github.com/book2screen/book2screen/internal/core/place"
	"github.com/book2screen/book2screen/internal/core/review"
)

// Stores bundles the targets the launch data is loaded into.
type Stores struct {
	Catalog *catalog.MemoryStore
	Authors *author.MemoryStore
	Reviews *review.MemoryStore
	Places  *place.Service
}

// Load populates empty stores with the launch data. Seed entries carry
// their own stable IDs, so they go straight into the stores instead of
// through the ID-assigning services.
func Load(ctx context.Context, stores Stores, logger *slog.Logger) {
	adaptations := Adaptations()
	for _, item := range adaptations {
		stores.Catalog.AddAdaptation(ctx, item)
	}

	authors := Authors()
	for _, item := range authors {
		stores.Authors.AddAuthor(ctx, item)
	}

	// The ledger prepends, so inserting in slice order leaves the last
	// seed review at the head, matching most-recent-first.
	reviews := Reviews()
	for _, item := range reviews {
		stores.Reviews.AddReview(ctx, item)
	}

	places := Places()
	stores.Places.Seed(places)

	logger.Info("seed_loaded",
		slog.Int("adaptations", len(adaptations)),
		slog.Int("authors", len(authors)),
		slog.Int("reviews", len(reviews)),
		slog.Int("places", len(places)),
	)
}
