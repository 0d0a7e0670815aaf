package admin

import (
	"context"
	"log/slog"

	"github.com/book2screen/book2screen/internal/core/author"
	"github.com/book2screen/book2screen/internal/core/catalog"
)

type Service struct {
	catalog *catalog.Service
	authors *author.Service
	logger  *slog.Logger
}

func NewService(catalogService *catalog.Service, authorService *author.Service, logger *slog.Logger) *Service {
	return &Service{
		catalog: catalogService,
		authors: authorService,
		logger:  logger,
	}
}

// SaveAdaptation routes a normalized draft to add or edit. A draft
// carrying an ID edits the existing entry; a draft without one creates
// a new entry.
func (service *Service) SaveAdaptation(ctx context.Context, draft AdaptationDraft) (catalog.Adaptation, error) {
	item := draft.ToAdaptation()
	if item.ID == "" {
		return service.catalog.AddAdaptation(ctx, item)
	}
	return service.catalog.UpdateAdaptation(ctx, item)
}

// DeleteAdaptation removes a catalog entry.
func (service *Service) DeleteAdaptation(ctx context.Context, id string) {
	service.catalog.DeleteAdaptation(ctx, id)
}

// AdaptationDraftFor returns the edit form for a stored catalog entry.
func (service *Service) AdaptationDraftFor(ctx context.Context, id string) (AdaptationDraft, error) {
	item, err := service.catalog.GetAdaptation(ctx, id)
	if err != nil {
		return AdaptationDraft{}, err
	}
	return AdaptationDraftFrom(item), nil
}

// SaveAuthor routes a normalized author draft to add or edit.
func (service *Service) SaveAuthor(ctx context.Context, draft AuthorDraft) (author.Author, error) {
	item := draft.ToAuthor()
	if item.ID == "" {
		return service.authors.AddAuthor(ctx, item)
	}
	return service.authors.UpdateAuthor(ctx, item)
}

// DeleteAuthor removes an author profile.
func (service *Service) DeleteAuthor(ctx context.Context, id string) {
	service.authors.DeleteAuthor(ctx, id)
}

// AuthorDraftFor returns the edit form for a stored author profile.
func (service *Service) AuthorDraftFor(ctx context.Context, id string) (AuthorDraft, error) {
	item, err := service.authors.GetAuthor(ctx, id)
	if err != nil {
		return AuthorDraft{}, err
	}
	return AuthorDraftFrom(item), nil
}
