package admin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/book2screen/book2screen/internal/admin"
)

/*
TestSplitList trims each segment and keeps empty ones, so the round trip
through an edit form is lossless.
*/
func TestSplitList(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single", "Sci-Fi", []string{"Sci-Fi"}},
		{"trimmed", " Sci-Fi ,  Drama", []string{"Sci-Fi", "Drama"}},
		{"trailing comma keeps empty segment", "Sci-Fi, Drama,", []string{"Sci-Fi", "Drama", ""}},
		{"consecutive commas", "a,,b", []string{"a", "", "b"}},
		{"empty input is one empty segment", "", []string{""}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, admin.SplitList(testCase.input))
		})
	}
}

/*
TestJoinList is the inverse transform used to prefill edit forms.
*/
func TestJoinList(t *testing.T) {
	assert.Equal(t, "Sci-Fi, Drama", admin.JoinList([]string{"Sci-Fi", "Drama"}))
	assert.Equal(t, "", admin.JoinList(nil))

	// Lists that came in with empty segments round-trip through the form.
	raw := "Sci-Fi, Drama,"
	assert.Equal(t, "Sci-Fi, Drama, ", admin.JoinList(admin.SplitList(raw)))
}

/*
TestCoerceRating leaves blank input at zero and maps unparsable input to
NaN instead of failing the save.
*/
func TestCoerceRating(t *testing.T) {
	assert.Equal(t, 4.5, float64(admin.CoerceRating("4.5")))
	assert.Equal(t, 9.0, float64(admin.CoerceRating(" 9 ")))
	assert.Equal(t, 0.0, float64(admin.CoerceRating("")))
	assert.Equal(t, 0.0, float64(admin.CoerceRating("   ")))
	assert.True(t, admin.CoerceRating("great").IsNaN())
	assert.True(t, admin.CoerceRating("4.5/10").IsNaN())
}
