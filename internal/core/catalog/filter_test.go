package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book2screen/book2screen/internal/core/catalog"
)

func browseCatalog() []catalog.Adaptation {
	return []catalog.Adaptation{
		{ID: "adp-1", BookTitle: "Dune", MovieTitle: "Dune: Part One", Author: "Frank Herbert", Genre: []string{"Sci-Fi", "Adventure"}},
		{ID: "adp-2", BookTitle: "Pride and Prejudice", MovieTitle: "Pride & Prejudice", Author: "Jane Austen", Genre: []string{"Romance", "Classic"}, IsFamous: true},
		{ID: "adp-3", BookTitle: "The Shining", MovieTitle: "The Shining", Author: "Stephen King", Genre: []string{"Thriller"}},
		{ID: "adp-4", BookTitle: "Gone Girl", MovieTitle: "Gone Girl", Author: "Gillian Flynn", Genre: []string{"Thriller", "Crime"}},
	}
}

func idsOf(items []catalog.Adaptation) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

/*
TestFilter_MatchesAnySearchField verifies the three searchable fields and the
case-insensitive substring semantics.
*/
func TestFilter_MatchesAnySearchField(t *testing.T) {
	items := browseCatalog()
	none := map[string]bool{}

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"book_title", "dune", []string{"adp-1"}},
		{"movie_title", "part one", []string{"adp-1"}},
		{"author", "austen", []string{"adp-2"}},
		{"substring", "shin", []string{"adp-3"}},
		{"shared_word", "pri", []string{"adp-2"}},
		{"no_match", "tolkien", []string{}},
		{"empty_matches_all", "", []string{"adp-1", "adp-2", "adp-3", "adp-4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := catalog.Filter(items, none, catalog.Query{Text: tt.text, ShowCompleted: true})
			assert.Equal(t, tt.expected, idsOf(result))
		})
	}
}

/*
TestFilter_Genre verifies exact genre membership and the "All" sentinel.
*/
func TestFilter_Genre(t *testing.T) {
	items := browseCatalog()
	none := map[string]bool{}

	tests := []struct {
		name     string
		genre    string
		expected []string
	}{
		{"thriller", "Thriller", []string{"adp-3", "adp-4"}},
		{"secondary_genre", "Crime", []string{"adp-4"}},
		{"all_sentinel", "All", []string{"adp-1", "adp-2", "adp-3", "adp-4"}},
		{"empty_disables", "", []string{"adp-1", "adp-2", "adp-3", "adp-4"}},
		{"case_sensitive_membership", "thriller", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := catalog.Filter(items, none, catalog.Query{Genre: tt.genre, ShowCompleted: true})
			assert.Equal(t, tt.expected, idsOf(result))
		})
	}
}

/*
TestFilter_HideCompleted verifies that fully completed entries drop out unless
ShowCompleted is set.
*/
func TestFilter_HideCompleted(t *testing.T) {
	items := browseCatalog()
	completed := map[string]bool{"adp-1": true, "adp-3": true}

	hidden := catalog.Filter(items, completed, catalog.Query{})
	assert.Equal(t, []string{"adp-2", "adp-4"}, idsOf(hidden))

	shown := catalog.Filter(items, completed, catalog.Query{ShowCompleted: true})
	assert.Equal(t, []string{"adp-1", "adp-2", "adp-3", "adp-4"}, idsOf(shown))
}

/*
TestFilter_NeutralQueryReturnsWholeCatalog checks the identity query: empty
text, "All" genre, completed shown.
*/
func TestFilter_NeutralQueryReturnsWholeCatalog(t *testing.T) {
	items := browseCatalog()
	completed := map[string]bool{"adp-2": true}

	result := catalog.Filter(items, completed, catalog.Query{Text: "", Genre: "All", ShowCompleted: true})
	assert.Equal(t, items, result)
}

/*
TestFilter_Idempotent verifies that re-filtering a result with the same query
changes nothing.
*/
func TestFilter_Idempotent(t *testing.T) {
	items := browseCatalog()
	completed := map[string]bool{"adp-1": true}
	query := catalog.Query{Text: "g", Genre: "All", ShowCompleted: false}

	once := catalog.Filter(items, completed, query)
	twice := catalog.Filter(once, completed, query)

	assert.Equal(t, once, twice)
}

/*
TestFilter_DoesNotMutateInput guards the purity contract.
*/
func TestFilter_DoesNotMutateInput(t *testing.T) {
	items := browseCatalog()
	original := browseCatalog()

	_ = catalog.Filter(items, map[string]bool{"adp-1": true}, catalog.Query{Text: "dune"})
	assert.Equal(t, original, items)
}

/*
TestFamous returns only the entries flagged as famous novels.
*/
func TestFamous(t *testing.T) {
	result := catalog.Famous(browseCatalog())
	require.Len(t, result, 1)
	assert.Equal(t, "adp-2", result[0].ID)

	assert.Empty(t, catalog.Famous(nil))
}
