// Copyright (c) 2026 Book2Screen. All rights reserved.

/*
Package identifier generates prefixed unique IDs for catalog entities.

Every entity class carries its own prefix (e.g. "adp" for adaptations,
"aut" for authors, "rev" for reviews), so an ID is self-describing and
two entity classes can never collide even inside a shared namespace.

Format: prefix-nanoid (e.g. "adp-V1StGXR8_Z5jdHi6B-myT").

NanoIDs are URL-friendly, compact (21 characters vs UUID's 36), and use
a larger alphabet for better entropy per character.
*/
package identifier

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// # Entity Prefixes

const (
	// PrefixAdaptation marks book-to-movie adaptation IDs.
	PrefixAdaptation = "adp"

	// PrefixAuthor marks author registry IDs.
	PrefixAuthor = "aut"

	// PrefixReview marks review ledger IDs.
	PrefixReview = "rev"

	// PrefixUser marks session profile IDs.
	PrefixUser = "usr"
)

// New creates a prefixed unique ID.
//
// It returns an error only if the OS entropy source is unavailable.
func New(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("identifier: generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// Must is like [New] but panics if ID generation fails.
//
// Entropy failure is an unrecoverable system-level error, so panicking
// at the call site is acceptable for in-memory stores.
func Must(prefix string) string {
	id, err := New(prefix)
	if err != nil {
		panic(fmt.Sprintf("identifier: %v", err))
	}
	return id
}
