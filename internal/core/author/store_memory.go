package author

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is the in-process implementation of [Repository].
type MemoryStore struct {
	mu    sync.RWMutex
	items []Author
}

// NewMemoryStore creates an empty in-memory author registry.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ListAuthors returns a copy of the registry in insertion order.
func (store *MemoryStore) ListAuthors(_ context.Context) []Author {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return slices.Clone(store.items)
}

// GetAuthor returns the author with the given ID.
func (store *MemoryStore) GetAuthor(_ context.Context, id string) (Author, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, item := range store.items {
		if item.ID == id {
			return item, true
		}
	}
	return Author{}, false
}

// AddAuthor appends a new author to the registry.
func (store *MemoryStore) AddAuthor(_ context.Context, a Author) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.items = append(store.items, a)
}

// UpdateAuthor replaces the author with the same ID in place.
// Returns false when the ID is unknown.
func (store *MemoryStore) UpdateAuthor(_ context.Context, a Author) bool {
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

// DeleteAuthor removes the author with the given ID.
// Returns false when the ID is unknown.
func (store *MemoryStore) DeleteAuthor(_ context.Context, id string) bool {
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
