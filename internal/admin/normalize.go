package admin

import (
	"strconv"
	"strings"

	"github.com/book2screen/book2screen/internal/core/catalog"
	"github.com/book2screen/book2screen/pkg/slice"
)

// SplitList splits a comma-separated form field into its segments,
// trimming whitespace around each one. Empty segments survive: a
// trailing comma yields a trailing "" entry, and the empty string
// splits into a single "" element. Consumers that want a clean list
// filter afterwards; the pipeline itself stays lossless.
func SplitList(raw string) []string {
	return slice.Map(strings.Split(raw, ","), strings.TrimSpace)
}

// JoinList is the reverse of SplitList for prefilling edit forms.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// CoerceRating converts a rating form field to its numeric value.
// Blank input is left at zero. Non-blank input that does not parse as
// a number becomes NaN rather than an error, so a mistyped rating
// saves as "unrated" instead of rejecting the whole form.
func CoerceRating(raw string) catalog.Rating {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return catalog.NaNRating
	}
	return catalog.Rating(value)
}

func formatRating(rating catalog.Rating) string {
	if rating.IsNaN() {
		return ""
	}
	return strconv.FormatFloat(float64(rating), 'f', -1, 64)
}
