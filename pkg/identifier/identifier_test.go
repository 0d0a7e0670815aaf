// Copyright (c) 2026 Book2Screen. All rights reserved.

package identifier_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book2screen/book2screen/pkg/identifier"
)

/*
TestNew_Uniqueness generates many IDs and verifies they never collide.
*/
func TestNew_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		id, err := identifier.New(identifier.PrefixAdaptation)
		require.NoError(t, err)
		assert.False(t, seen[id], "ID should be unique: %s", id)
		seen[id] = true
	}

	assert.Len(t, seen, count)
}

/*
TestNew_Format verifies the prefix-nanoid layout for every entity class.
*/
func TestNew_Format(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"adaptation", identifier.PrefixAdaptation},
		{"author", identifier.PrefixAuthor},
		{"review", identifier.PrefixReview},
		{"user", identifier.PrefixUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := identifier.New(tt.prefix)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(id, tt.prefix+"-"))

			// Default NanoID length is 21 characters
			nanoidPart := strings.TrimPrefix(id, tt.prefix+"-")
			assert.Len(t, nanoidPart, 21)

			// NanoID alphabet is URL-safe: A-Za-z0-9_-
			for _, char := range nanoidPart {
				assert.True(t,
					(char >= 'A' && char <= 'Z') ||
						(char >= 'a' && char <= 'z') ||
						(char >= '0' && char <= '9') ||
						char == '_' || char == '-',
					"Character %c should be URL-safe", char)
			}
		})
	}
}

/*
TestNew_PrefixesDistinct confirms that no two entity prefixes overlap, so IDs
from different classes can never be confused.
*/
func TestNew_PrefixesDistinct(t *testing.T) {
	prefixes := []string{
		identifier.PrefixAdaptation,
		identifier.PrefixAuthor,
		identifier.PrefixReview,
		identifier.PrefixUser,
	}

	seen := make(map[string]bool)
	for _, p := range prefixes {
		assert.False(t, seen[p], "prefix %q duplicated", p)
		seen[p] = true
	}
}

/*
TestMust_Format covers the panic-on-failure variant's happy path.
*/
func TestMust_Format(t *testing.T) {
	id := identifier.Must(identifier.PrefixReview)

	assert.True(t, strings.HasPrefix(id, "rev-"))
	assert.Equal(t, len("rev")+1+21, len(id))
}
