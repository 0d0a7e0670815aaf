package place

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/book2screen/book2screen/internal/platform/constants"
	sliceutil "github.com/book2screen/book2screen/pkg/slice"
)

// Service serves the read-only location list. Places are seeded once at
// startup and never mutated, so a single RWMutex-guarded slice is all
// the storage this domain needs.
type Service struct {
	mu     sync.RWMutex
	places []Place
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Seed replaces the location list. Called once during startup wiring.
func (service *Service) Seed(places []Place) {
	service.mu.Lock()
	defer service.mu.Unlock()

	service.places = slices.Clone(places)
	service.logger.Info("places_seeded", slog.Int("count", len(places)))
}

// List returns the locations matching any of the requested types, in
// seed order. An empty type list or the "All" sentinel disables the
// filter.
func (service *Service) List(_ context.Context, types []string) []Place {
	service.mu.RLock()
	defer service.mu.RUnlock()

	if len(types) == 0 || slices.Contains(types, constants.PlaceTypeAll) {
		return slices.Clone(service.places)
	}

	result := sliceutil.Filter(service.places, func(p Place) bool {
		return slices.Contains(types, string(p.Type))
	})
	if result == nil {
		return []Place{}
	}
	return result
}
