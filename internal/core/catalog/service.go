package catalog

import (
	"context"
	"log/slog"

	"github.com/book2screen/book2screen/internal/platform/apperr"
	"github.com/book2screen/book2screen/internal/platform/validate"
	"github.com/book2screen/book2screen/pkg/identifier"
	"github.com/book2screen/book2screen/pkg/slug"
)

// CompletionSource reports which catalog entries the active user has
// fully completed (book read AND movie watched). The progress ledger
// implements it; tests inject a stub.
type CompletionSource interface {
	CompletedIDs(ctx context.Context) map[string]bool
}

type Service struct {
	repo      Repository
	completed CompletionSource
	logger    *slog.Logger
}

func NewService(repo Repository, completed CompletionSource, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		completed: completed,
		logger:    logger,
	}
}

// Browse returns the catalog entries matching the query, in catalog order.
func (service *Service) Browse(ctx context.Context, query Query) []Adaptation {
	items := service.repo.ListAdaptations(ctx)
	return Filter(items, service.completed.CompletedIDs(ctx), query)
}

// ListFamous returns the famous-novel subset of the catalog.
func (service *Service) ListFamous(ctx context.Context) []Adaptation {
	return Famous(service.repo.ListAdaptations(ctx))
}

// GetAdaptation looks up a single entry by ID.
func (service *Service) GetAdaptation(ctx context.Context, id string) (Adaptation, error) {
	item, found := service.repo.GetAdaptation(ctx, id)
	if !found {
		return Adaptation{}, apperr.NotFound("Adaptation")
	}
	return item, nil
}

// Recommendations returns up to three entries related to the given one
// by shared genre or same author.
func (service *Service) Recommendations(ctx context.Context, id string) ([]Adaptation, error) {
	target, found := service.repo.GetAdaptation(ctx, id)
	if !found {
		return nil, apperr.NotFound("Adaptation")
	}
	return Recommend(service.repo.ListAdaptations(ctx), target), nil
}

// AddAdaptation validates the entry, assigns a fresh ID and slug, and
// appends it to the catalog.
func (service *Service) AddAdaptation(ctx context.Context, item Adaptation) (Adaptation, error) {
	if err := validateAdaptation(&item); err != nil {
		return Adaptation{}, err
	}

	item.ID = identifier.Must(identifier.PrefixAdaptation)
	item.Slug = slug.From(item.BookTitle)
	service.repo.AddAdaptation(ctx, item)

	service.logger.Info("adaptation_added",
		slog.String("adaptation_id", item.ID),
		slog.String("book_title", item.BookTitle),
	)
	return item, nil
}

// UpdateAdaptation replaces the entry with the same ID in place.
//
// Updating an unknown ID is a silent no-op: the catalog is returned to
// the caller unchanged and no error is raised. This mirrors how the
// browse UI treats stale edit forms after a concurrent delete.
func (service *Service) UpdateAdaptation(ctx context.Context, item Adaptation) (Adaptation, error) {
	if err := validateAdaptation(&item); err != nil {
		return Adaptation{}, err
	}

	item.Slug = slug.From(item.BookTitle)
	if !service.repo.UpdateAdaptation(ctx, item) {
		service.logger.Warn("adaptation_update_skipped", slog.String("adaptation_id", item.ID))
		return item, nil
	}

	service.logger.Info("adaptation_updated", slog.String("adaptation_id", item.ID))
	return item, nil
}

// DeleteAdaptation removes an entry. Unknown IDs are a silent no-op.
func (service *Service) DeleteAdaptation(ctx context.Context, id string) {
	if !service.repo.DeleteAdaptation(ctx, id) {
		service.logger.Warn("adaptation_delete_skipped", slog.String("adaptation_id", id))
		return
	}
	service.logger.Info("adaptation_deleted", slog.String("adaptation_id", id))
}

// CountAdaptations reports the catalog size.
func (service *Service) CountAdaptations(ctx context.Context) int {
	return service.repo.CountAdaptations(ctx)
}

// validateAdaptation enforces the required form fields. Ratings are NOT
// validated: an unparsable rating stays NaN rather than rejecting the
// submission.
func validateAdaptation(item *Adaptation) error {
	validator := &validate.Validator{}

	validator.Required(FieldBookTitle, item.BookTitle).MaxLen(FieldBookTitle, item.BookTitle, 300).
		Required(FieldMovieTitle, item.MovieTitle).MaxLen(FieldMovieTitle, item.MovieTitle, 300).
		Required(FieldAuthor, item.Author).MaxLen(FieldAuthor, item.Author, 200).
		Required(FieldReleaseYear, item.ReleaseYear)

	if item.CoverURL != "" {
		validator.URL(FieldCoverURL, item.CoverURL)
	}
	if item.MoviePosterURL != "" {
		validator.URL(FieldPosterURL, item.MoviePosterURL)
	}

	return validator.Err()
}
