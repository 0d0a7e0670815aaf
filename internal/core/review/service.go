package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/book2screen/book2screen/pkg/identifier"
	sliceutil "github.com/book2screen/book2screen/pkg/slice"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListAll returns the full ledger, most recent first.
func (service *Service) ListAll(ctx context.Context) []Review {
	return service.repo.ListReviews(ctx)
}

// ByItem returns the reviews for one catalog entry, most recent first.
func (service *Service) ByItem(ctx context.Context, itemID string) []Review {
	return filterReviews(service.repo.ListReviews(ctx), func(r Review) bool {
		return r.ItemID == itemID
	})
}

// ByUser returns the reviews submitted under the given display name,
// most recent first. Matching is plain string equality on the free-text
// name, so two readers sharing a display name share a review history.
func (service *Service) ByUser(ctx context.Context, userName string) []Review {
	return filterReviews(service.repo.ListReviews(ctx), func(r Review) bool {
		return r.UserName == userName
	})
}

// Add assigns an ID, stamps today's date when none is given, and
// prepends the review. Reviews are accepted as-is: duplicates from the
// same reader are allowed and the free-text fields are not validated.
func (service *Service) Add(ctx context.Context, r Review) Review {
	r.ID = identifier.Must(identifier.PrefixReview)
	if r.Date == "" {
		r.Date = time.Now().UTC().Format("2006-01-02")
	}

	service.repo.AddReview(ctx, r)

	service.logger.Info("review_added",
		slog.String("review_id", r.ID),
		slog.String("item_id", r.ItemID),
	)
	return r
}

func filterReviews(items []Review, predicate func(Review) bool) []Review {
	result := sliceutil.Filter(items, predicate)
	if result == nil {
		return []Review{}
	}
	return result
}
