package catalog

import (
	"math"
	"strconv"
)

// Rating is a 0-5 star value attached to the book or movie side of an
// adaptation. It is a float so that a half star (4.5) survives intact.
//
// A Rating may be NaN when admin form input could not be parsed as a
// number. NaN serializes as JSON null, which is what browser clients
// produce for the same situation, so the sentinel round-trips cleanly.
type Rating float64

// NaNRating is the sentinel for "not a number" form input.
var NaNRating = Rating(math.NaN())

// IsNaN reports whether the rating is the unparsable-input sentinel.
func (r Rating) IsNaN() bool {
	return math.IsNaN(float64(r))
}

// MarshalJSON encodes NaN as null; every other value as a plain number.
func (r Rating) MarshalJSON() ([]byte, error) {
	if r.IsNaN() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(r), 'f', -1, 64)), nil
}

// UnmarshalJSON decodes null back into NaN.
func (r *Rating) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = NaNRating
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*r = Rating(f)
	return nil
}

// Adaptation is a single book-to-movie pairing in the catalog.
//
// Both sides carry their own descriptive block so the book page and the
// movie page can render independently.
type Adaptation struct {
	ID                string   `json:"id"`
	Slug              string   `json:"slug"`
	BookTitle         string   `json:"bookTitle"`
	MovieTitle        string   `json:"movieTitle"`
	Author            string   `json:"author"`
	ReleaseYear       string   `json:"releaseYear"`
	Genre             []string `json:"genre"`
	Moods             []string `json:"moods"`
	FamousQuote       string   `json:"famousQuote"`
	ComparisonSummary string   `json:"comparisonSummary"`
	SpoilerAnalysis   string   `json:"spoilerAnalysis"`
	IsFamous          bool     `json:"isFamous"`

	// Book side
	CoverURL         string `json:"coverUrl"`
	BookDescription  string `json:"bookDescription"`
	TargetAudience   string `json:"targetAudience"`
	BookRating       Rating `json:"bookRating"`
	OriginalLanguage string `json:"originalLanguage"`
	BookReleaseYear  string `json:"bookReleaseYear"`
	ReadLink         string `json:"readLink"`
	BuyLink          string `json:"buyLink"`

	// Movie side
	MoviePosterURL      string   `json:"moviePosterUrl"`
	MovieDescription    string   `json:"movieDescription"`
	Director            string   `json:"director"`
	Cast                []string `json:"cast"`
	MovieTargetAudience string   `json:"movieTargetAudience"`
	MovieRating         Rating   `json:"movieRating"`
	TrailerURL          string   `json:"trailerUrl"`
	OTTLink             string   `json:"ottLink"`
}

// Global field names for validation
const (
	FieldBookTitle   = "bookTitle"
	FieldMovieTitle  = "movieTitle"
	FieldAuthor      = "author"
	FieldReleaseYear = "releaseYear"
	FieldCoverURL    = "coverUrl"
	FieldPosterURL   = "moviePosterUrl"
)
