package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/book2screen/book2screen/internal/core/catalog"
)

/*
TestRating_NaNSerializesAsNull verifies that the unparsable-input sentinel
survives JSON encoding the same way browsers emit it.
*/
func TestRating_NaNSerializesAsNull(t *testing.T) {
	payload, err := json.Marshal(catalog.Adaptation{
		ID:          "adp-1",
		BookRating:  catalog.NaNRating,
		MovieRating: 4.5,
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Nil(t, decoded["bookRating"])
	assert.Equal(t, 4.5, decoded["movieRating"])
}

/*
TestRating_UnmarshalNull verifies the null-to-NaN round trip.
*/
func TestRating_UnmarshalNull(t *testing.T) {
	var r catalog.Rating
	require.NoError(t, json.Unmarshal([]byte("null"), &r))
	assert.True(t, r.IsNaN())

	require.NoError(t, json.Unmarshal([]byte("3.5"), &r))
	assert.False(t, r.IsNaN())
	assert.Equal(t, catalog.Rating(3.5), r)

	assert.Error(t, json.Unmarshal([]byte(`"five"`), &r))
}
