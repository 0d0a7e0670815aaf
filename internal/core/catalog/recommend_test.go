package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/book2screen/book2screen/internal/core/catalog"
)

/*
TestRecommend covers the shared-genre and same-author relatedness rules,
self-exclusion, and the three-entry cap.
*/
func TestRecommend(t *testing.T) {
	items := []catalog.Adaptation{
		{ID: "adp-1", Author: "Frank Herbert", Genre: []string{"Sci-Fi"}},
		{ID: "adp-2", Author: "Jane Austen", Genre: []string{"Romance", "Classic"}},
		{ID: "adp-3", Author: "Frank Herbert", Genre: []string{"Drama"}},
		{ID: "adp-4", Author: "Arthur C. Clarke", Genre: []string{"Sci-Fi", "Adventure"}},
		{ID: "adp-5", Author: "Ursula K. Le Guin", Genre: []string{"Sci-Fi"}},
		{ID: "adp-6", Author: "Isaac Asimov", Genre: []string{"Sci-Fi"}},
	}

	t.Run("genre_and_author_matches_capped_at_three", func(t *testing.T) {
		result := catalog.Recommend(items, items[0])
		// adp-3 by author, adp-4 and adp-5 by genre; adp-6 trimmed by the cap.
		assert.Equal(t, []string{"adp-3", "adp-4", "adp-5"}, idsOf(result))
	})

	t.Run("excludes_self", func(t *testing.T) {
		result := catalog.Recommend(items, items[3])
		assert.NotContains(t, idsOf(result), "adp-4")
	})

	t.Run("no_relations", func(t *testing.T) {
		result := catalog.Recommend(items, items[1])
		assert.Empty(t, result)
	})

	t.Run("preserves_catalog_order", func(t *testing.T) {
		result := catalog.Recommend(items, items[5])
		assert.Equal(t, []string{"adp-1", "adp-4", "adp-5"}, idsOf(result))
	})
}
