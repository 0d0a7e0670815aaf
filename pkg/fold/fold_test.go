// Copyright (c) 2026 Book2Screen. All rights reserved.

package fold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/book2screen/book2screen/pkg/fold"
)

/*
TestContains covers ASCII and non-trivial Unicode caseless matching.
*/
func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		expected bool
	}{
		{"exact", "Dune", "Dune", true},
		{"lower_needle", "Pride and Prejudice", "pride", true},
		{"upper_needle", "the shining", "SHINING", true},
		{"substring_middle", "The Lord of the Rings", "lord of", true},
		{"no_match", "Gone Girl", "dune", false},
		{"empty_needle_matches_all", "The Godfather", "", true},
		{"german_sharp_s", "Straße", "STRASSE", true},
		{"accented", "Gabriel García Márquez", "garcía", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fold.Contains(tt.haystack, tt.needle))
		})
	}
}

/*
TestEqual verifies full-string caseless equality.
*/
func TestEqual(t *testing.T) {
	assert.True(t, fold.Equal("Sci-Fi", "sci-fi"))
	assert.True(t, fold.Equal("FANTASY", "Fantasy"))
	assert.False(t, fold.Equal("Drama", "Dramas"))
}
