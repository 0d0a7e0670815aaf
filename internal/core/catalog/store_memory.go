package catalog

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is the in-process implementation of [Repository].
//
// The catalog lives for the lifetime of the server and is discarded on
// restart. A slice (not a map) backs the store because catalog order is
// part of the contract: listings, filtering, and recommendations all
// preserve insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Adaptation
}

// NewMemoryStore creates an empty in-memory catalog.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ListAdaptations returns a copy of the full catalog in insertion order.
func (store *MemoryStore) ListAdaptations(_ context.Context) []Adaptation {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return slices.Clone(store.items)
}

// GetAdaptation returns the adaptation with the given ID.
func (store *MemoryStore) GetAdaptation(_ context.Context, id string) (Adaptation, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, item := range store.items {
		if item.ID == id {
			return item, true
		}
	}
	return Adaptation{}, false
}

// AddAdaptation appends a new entry to the end of the catalog.
func (store *MemoryStore) AddAdaptation(_ context.Context, a Adaptation) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.items = append(store.items, a)
}

// UpdateAdaptation replaces the entry with the same ID in place,
// preserving its catalog position. Returns false when the ID is unknown.
func (store *MemoryStore) UpdateAdaptation(_ context.Context, a Adaptation) bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i, item := range store.items {
		if item.ID == a.ID {
			store.items[i] = a
			return true
		}
	}
	return false
}

// DeleteAdaptation removes the entry with the given ID.
// Returns false when the ID is unknown.
func (store *MemoryStore) DeleteAdaptation(_ context.Context, id string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i, item := range store.items {
		if item.ID == id {
			store.items = slices.Delete(store.items, i, i+1)
			return true
		}
	}
	return false
}

// CountAdaptations returns the number of catalog entries.
func (store *MemoryStore) CountAdaptations(_ context.Context) int {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return len(store.items)
}
