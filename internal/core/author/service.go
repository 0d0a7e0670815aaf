package author

import (
	"context"
	"log/slog"

	"github.com/book2screen/book2screen/internal/platform/apperr"
	"github.com/book2screen/book2screen/internal/platform/validate"
	"github.com/book2screen/book2screen/pkg/identifier"
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

func (service *Service) ListAuthors(ctx context.Context) []Author {
	return service.repo.ListAuthors(ctx)
}

func (service *Service) GetAuthor(ctx context.Context, id string) (Author, error) {
	item, found := service.repo.GetAuthor(ctx, id)
	if !found {
		return Author{}, apperr.NotFound("Author")
	}
	return item, nil
}

// AddAuthor validates the entry, assigns a fresh ID, and appends it.
func (service *Service) AddAuthor(ctx context.Context, author Author) (Author, error) {
	if err := validateAuthor(&author); err != nil {
		return Author{}, err
	}

	author.ID = identifier.Must(identifier.PrefixAuthor)
	service.repo.AddAuthor(ctx, author)

	service.logger.Info("author_added", slog.String("author_id", author.ID), slog.String("name", author.Name))
	return author, nil
}

// UpdateAuthor replaces the entry with the same ID. Unknown IDs are a
// silent no-op, matching the catalog's total-mutation contract.
func (service *Service) UpdateAuthor(ctx context.Context, author Author) (Author, error) {
	if err := validateAuthor(&author); err != nil {
		return Author{}, err
	}

	if !service.repo.UpdateAuthor(ctx, author) {
		service.logger.Warn("author_update_skipped", slog.String("author_id", author.ID))
		return author, nil
	}

	service.logger.Info("author_updated", slog.String("author_id", author.ID))
	return author, nil
}

// DeleteAuthor removes an author. Unknown IDs are a silent no-op.
func (service *Service) DeleteAuthor(ctx context.Context, id string) {
	if !service.repo.DeleteAuthor(ctx, id) {
		service.logger.Warn("author_delete_skipped", slog.String("author_id", id))
		return
	}
	service.logger.Warn("author_deleted", slog.String("author_id", id))
}

func validateAuthor(author *Author) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, author.Name).MaxLen(FieldName, author.Name, 200)
	for _, work := range author.NotableWorks {
		validator.MaxLen(FieldNotableWorks, work, 300)
	}

	if author.ImageURL != "" {
		validator.URL(FieldImageURL, author.ImageURL)
	}

	return validator.Err()
}
