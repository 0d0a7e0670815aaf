package review

import (
	"context"
	"slices"
	"sync"
)

// Repository is the append-only review ledger, newest first.
type Repository interface {
	ListReviews(ctx context.Context) []Review
	AddReview(ctx context.Context, r Review)
}

// MemoryStore is the in-process implementation of [Repository].
//
// New reviews are PREPENDED, so the backing slice is already in
// most-recent-first order and listing needs no sort.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Review
}

// NewMemoryStore creates an empty in-memory review ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ListReviews returns a copy of the ledger, most recent first.
func (store *MemoryStore) ListReviews(_ context.Context) []Review {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return slices.Clone(store.items)
}

// AddReview prepends a review to the ledger.
func (store *MemoryStore) AddReview(_ context.Context, r Review) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.items = append([]Review{r}, store.items...)
}
