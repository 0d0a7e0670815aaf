package catalog

import "slices"

// MaxRecommendations caps how many related entries a detail page shows.
const MaxRecommendations = 3

// Recommend returns up to [MaxRecommendations] catalog entries related to
// target: entries sharing at least one genre with it, or written by the
// same author. The target itself is excluded and catalog order is kept.
func Recommend(items []Adaptation, target Adaptation) []Adaptation {
	result := make([]Adaptation, 0, MaxRecommendations)

	for _, item := range items {
		if item.ID == target.ID {
			continue
		}
		if !sharesGenre(item, target) && item.Author != target.Author {
			continue
		}

		result = append(result, item)
		if len(result) == MaxRecommendations {
			break
		}
	}

	return result
}

// sharesGenre reports whether the two entries have any genre in common.
func sharesGenre(a, b Adaptation) bool {
	for _, genre := range a.Genre {
		if slices.Contains(b.Genre, genre) {
			return true
		}
	}
	return false
}
