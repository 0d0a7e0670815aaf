package catalog

import (
	"slices"

	"github.com/book2screen/book2screen/internal/platform/constants"
	"github.com/book2screen/book2screen/pkg/fold"
	sliceutil "github.com/book2screen/book2screen/pkg/slice"
)

// Query holds the browse-page filter criteria.
//
// The zero value matches the whole catalog: an empty search text matches
// everything, an empty (or "All") genre disables genre filtering, and
// ShowCompleted defaults to hiding nothing only when set to true.
type Query struct {
	// Text is matched case-insensitively as a substring against the book
	// title, the movie title, and the author name.
	Text string

	// Genre must exactly match one of the entry's genres, unless it is
	// empty or the "All" sentinel.
	Genre string

	// ShowCompleted controls whether fully completed entries (book read
	// AND movie watched) remain in the result.
	ShowCompleted bool
}

// Filter applies the three browse criteria and returns matching entries
// in their original catalog order.
//
// It is a pure function: the input slice is never mutated, and applying
// Filter to its own output with the same query yields the same result.
// completedIDs holds the IDs whose progress record has both the book
// read and the movie watched.
func Filter(items []Adaptation, completedIDs map[string]bool, q Query) []Adaptation {
	result := sliceutil.Filter(items, func(item Adaptation) bool {
		if !matchesText(item, q.Text) {
			return false
		}
		if !matchesGenre(item, q.Genre) {
			return false
		}
		if !q.ShowCompleted && completedIDs[item.ID] {
			return false
		}
		return true
	})

	// Normalize nil to an empty slice so callers always serialize "[]".
	if result == nil {
		return []Adaptation{}
	}
	return result
}

// matchesText reports whether the search text occurs in any of the three
// searchable fields. Empty text matches every entry.
func matchesText(item Adaptation, text string) bool {
	if text == "" {
		return true
	}
	return fold.Contains(item.BookTitle, text) ||
		fold.Contains(item.MovieTitle, text) ||
		fold.Contains(item.Author, text)
}

// matchesGenre reports whether the entry carries the requested genre.
func matchesGenre(item Adaptation, genre string) bool {
	if genre == "" || genre == constants.GenreAll {
		return true
	}
	return slices.Contains(item.Genre, genre)
}

// Famous returns the entries flagged as famous novels, in catalog order.
func Famous(items []Adaptation) []Adaptation {
	result := sliceutil.Filter(items, func(item Adaptation) bool {
		return item.IsFamous
	})
	if result == nil {
		return []Adaptation{}
	}
	return result
}
