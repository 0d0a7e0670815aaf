package progress

import (
	"context"
	"maps"
	"sync"
)

// Repository is the progress ledger: one [Record] per catalog entry the
// reader has interacted with. IDs never seen map to the zero record.
type Repository interface {
	GetRecord(ctx context.Context, itemID string) Record
	SetRecord(ctx context.Context, itemID string, r Record)
	AllRecords(ctx context.Context) map[string]Record
}

// MemoryStore is the in-process implementation of [Repository].
//
// A zero record is removed from the map rather than stored, so the
// ledger only holds entries that carry information. Deleting a catalog
// entry does NOT purge its ledger record; stale records still count in
// the aggregate stats, exactly as the reader left them.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty progress ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// GetRecord returns the record for itemID, or the zero record.
func (store *MemoryStore) GetRecord(_ context.Context, itemID string) Record {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return store.records[itemID]
}

// SetRecord stores the record for itemID, dropping zero records.
func (store *MemoryStore) SetRecord(_ context.Context, itemID string, r Record) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if r.IsZero() {
		delete(store.records, itemID)
		return
	}
	store.records[itemID] = r
}

// AllRecords returns a copy of the whole ledger.
func (store *MemoryStore) AllRecords(_ context.Context) map[string]Record {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return maps.Clone(store.records)
}
