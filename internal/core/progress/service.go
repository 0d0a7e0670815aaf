package progress

import (
	"context"
	"log/slog"

	"github.com/book2screen/book2screen/internal/core/catalog"
	"github.com/book2screen/book2screen/internal/platform/validate"
)

// CatalogSource supplies the ordered catalog for the derived views
// (favorites, reading log). Only listing is needed.
type CatalogSource interface {
	ListAdaptations(ctx context.Context) []catalog.Adaptation
}

type Service struct {
	repo    Repository
	catalog CatalogSource
	logger  *slog.Logger
}

func NewService(repo Repository, catalogSource CatalogSource, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalogSource,
		logger:  logger,
	}
}

// GetRecord returns the progress record for one catalog entry. IDs the
// reader never touched yield the zero record, never an error.
func (service *Service) GetRecord(ctx context.Context, itemID string) Record {
	return service.repo.GetRecord(ctx, itemID)
}

// AllRecords returns the whole ledger keyed by catalog entry ID.
func (service *Service) AllRecords(ctx context.Context) map[string]Record {
	return service.repo.AllRecords(ctx)
}

// ToggleFlag flips exactly one flag on the entry's record, creating the
// record on first touch. The other four flags are untouched.
func (service *Service) ToggleFlag(ctx context.Context, itemID string, flag Flag) (Record, error) {
	validator := &validate.Validator{}
	validator.Required("itemId", itemID)
	validator.OneOf("flag", string(flag), flagNames()...)
	if err := validator.Err(); err != nil {
		return Record{}, err
	}

	record := service.repo.GetRecord(ctx, itemID)
	record = record.withFlag(flag, !record.Get(flag))
	service.repo.SetRecord(ctx, itemID, record)

	service.logger.Info("progress_flag_toggled",
		slog.String("item_id", itemID),
		slog.String("flag", string(flag)),
		slog.Bool("value", record.Get(flag)),
	)
	return record, nil
}

// ToggleCompletion drives the book-read and movie-watched flags as a
// pair: only when BOTH are already set are both cleared; in every other
// state both are forced on. Toggling from a half-done state therefore
// completes the entry rather than inverting each flag.
func (service *Service) ToggleCompletion(ctx context.Context, itemID string) (Record, error) {
	validator := &validate.Validator{}
	validator.Required("itemId", itemID)
	if err := validator.Err(); err != nil {
		return Record{}, err
	}

	record := service.repo.GetRecord(ctx, itemID)
	done := !record.IsCompleted()
	record.BookRead = done
	record.MovieWatched = done
	service.repo.SetRecord(ctx, itemID, record)

	service.logger.Info("progress_completion_toggled",
		slog.String("item_id", itemID),
		slog.Bool("completed", done),
	)
	return record, nil
}

// Stats recomputes the six aggregate counters from the ledger alone.
// The catalog is never consulted: a record whose entry was deleted
// still counts, exactly as the reader left it.
func (service *Service) Stats(ctx context.Context) Stats {
	var stats Stats
	for _, record := range service.repo.AllRecords(ctx) {
		if record.BookRead {
			stats.BooksRead++
		}
		if record.MovieWatched {
			stats.MoviesWatched++
		}
		if record.IsCompleted() {
			stats.AdaptationsDone++
		}
		if record.FavoriteBook {
			stats.FavoriteBooks++
		}
		if record.FavoriteMovie {
			stats.FavoriteMovies++
		}
		if record.FavoriteAdaptation {
			stats.FavoriteAdaptations++
		}
	}
	return stats
}

// CompletedIDs returns the set of entry IDs with both consumption flags
// set. It satisfies the catalog's CompletionSource.
func (service *Service) CompletedIDs(ctx context.Context) map[string]bool {
	completed := make(map[string]bool)
	for itemID, record := range service.repo.AllRecords(ctx) {
		if record.IsCompleted() {
			completed[itemID] = true
		}
	}
	return completed
}

// FavoriteLists groups the catalog entries the reader has favorited,
// one list per favorite flag, each in catalog order.
type FavoriteLists struct {
	Books       []catalog.Adaptation `json:"books"`
	Movies      []catalog.Adaptation `json:"movies"`
	Adaptations []catalog.Adaptation `json:"adaptations"`
}

// Favorites derives the three favorite lists by joining the ledger with
// the live catalog. Records for deleted entries simply find no match.
func (service *Service) Favorites(ctx context.Context) FavoriteLists {
	lists := FavoriteLists{
		Books:       []catalog.Adaptation{},
		Movies:      []catalog.Adaptation{},
		Adaptations: []catalog.Adaptation{},
	}

	records := service.repo.AllRecords(ctx)
	for _, item := range service.catalog.ListAdaptations(ctx) {
		record := records[item.ID]
		if record.FavoriteBook {
			lists.Books = append(lists.Books, item)
		}
		if record.FavoriteMovie {
			lists.Movies = append(lists.Movies, item)
		}
		if record.FavoriteAdaptation {
			lists.Adaptations = append(lists.Adaptations, item)
		}
	}
	return lists
}

// LogEntry pairs a catalog entry with its progress record for the
// reading and watching log.
type LogEntry struct {
	Item   catalog.Adaptation `json:"item"`
	Record Record             `json:"progress"`
}

// Log returns the catalog entries with at least one consumption flag
// set, in catalog order.
func (service *Service) Log(ctx context.Context) []LogEntry {
	entries := []LogEntry{}

	records := service.repo.AllRecords(ctx)
	for _, item := range service.catalog.ListAdaptations(ctx) {
		record := records[item.ID]
		if record.BookRead || record.MovieWatched {
			entries = append(entries, LogEntry{Item: item, Record: record})
		}
	}
	return entries
}

func flagNames() []string {
	names := make([]string, len(Flags))
	for i, flag := range Flags {
		names[i] = string(flag)
	}
	return names
}
