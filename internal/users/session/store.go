package session

import "sync"

// Store holds the single process-wide session: zero or one profile.
//
// There is no session table or multi-user state. A new login replaces
// whatever session exists, regardless of who owned it.
type Store struct {
	mu      sync.RWMutex
	current *UserProfile
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Current returns a copy of the active profile, or false when nobody is
// logged in.
func (store *Store) Current() (UserProfile, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if store.current == nil {
		return UserProfile{}, false
	}
	return *store.current, true
}

// Replace installs a new session, displacing any existing one.
func (store *Store) Replace(profile UserProfile) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.current = &profile
}

// Update overwrites the active profile wholesale. Without an active
// session it is a silent no-op, reported through the bool return.
func (store *Store) Update(profile UserProfile) bool {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.current == nil {
		return false
	}
	store.current = &profile
	return true
}

// Clear ends the session. Clearing an empty store is harmless.
func (store *Store) Clear() {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.current = nil
}
