// Package admin implements the editing pipeline behind the catalog
// management screens.
//
// Admin forms submit every field as text. The pipeline normalizes the
// tagged draft into the typed entity (list splitting, numeric
// coercion), routes it to add-or-edit based on ID presence, and offers
// the reverse transform for prefilling an edit form.
package admin

import (
	"github.com/book2screen/book2screen/internal/core/author"
	"github.com/book2screen/book2screen/internal/core/catalog"
)

// AdaptationDraft is the raw adaptation form submission. List fields
// arrive as one comma-separated string; ratings arrive as text.
type AdaptationDraft struct {
	ID                string `json:"id"`
	BookTitle         string `json:"bookTitle"`
	MovieTitle        string `json:"movieTitle"`
	Author            string `json:"author"`
	ReleaseYear       string `json:"releaseYear"`
	Genre             string `json:"genre"`
	Moods             string `json:"moods"`
	FamousQuote       string `json:"famousQuote"`
	ComparisonSummary string `json:"comparisonSummary"`
	SpoilerAnalysis   string `json:"spoilerAnalysis"`
	IsFamous          bool   `json:"isFamous"`

	CoverURL         string `json:"coverUrl"`
	BookDescription  string `json:"bookDescription"`
	TargetAudience   string `json:"targetAudience"`
	BookRating       string `json:"bookRating"`
	OriginalLanguage string `json:"originalLanguage"`
	BookReleaseYear  string `json:"bookReleaseYear"`
	ReadLink         string `json:"readLink"`
	BuyLink          string `json:"buyLink"`

	MoviePosterURL      string `json:"moviePosterUrl"`
	MovieDescription    string `json:"movieDescription"`
	Director            string `json:"director"`
	Cast                string `json:"cast"`
	MovieTargetAudience string `json:"movieTargetAudience"`
	MovieRating         string `json:"movieRating"`
	TrailerURL          string `json:"trailerUrl"`
	OTTLink             string `json:"ottLink"`
}

// ToAdaptation normalizes the draft into the typed catalog entity.
func (draft AdaptationDraft) ToAdaptation() catalog.Adaptation {
	return catalog.Adaptation{
		ID:                draft.ID,
		BookTitle:         draft.BookTitle,
		MovieTitle:        draft.MovieTitle,
		Author:            draft.Author,
		ReleaseYear:       draft.ReleaseYear,
		Genre:             SplitList(draft.Genre),
		Moods:             SplitList(draft.Moods),
		FamousQuote:       draft.FamousQuote,
		ComparisonSummary: draft.ComparisonSummary,
		SpoilerAnalysis:   draft.SpoilerAnalysis,
		IsFamous:          draft.IsFamous,

		CoverURL:         draft.CoverURL,
		BookDescription:  draft.BookDescription,
		TargetAudience:   draft.TargetAudience,
		BookRating:       CoerceRating(draft.BookRating),
		OriginalLanguage: draft.OriginalLanguage,
		BookReleaseYear:  draft.BookReleaseYear,
		ReadLink:         draft.ReadLink,
		BuyLink:          draft.BuyLink,

		MoviePosterURL:      draft.MoviePosterURL,
		MovieDescription:    draft.MovieDescription,
		Director:            draft.Director,
		Cast:                SplitList(draft.Cast),
		MovieTargetAudience: draft.MovieTargetAudience,
		MovieRating:         CoerceRating(draft.MovieRating),
		TrailerURL:          draft.TrailerURL,
		OTTLink:             draft.OTTLink,
	}
}

// AdaptationDraftFrom is the reverse transform: it prefills an edit
// form from the stored entity, joining list fields with ", ".
func AdaptationDraftFrom(item catalog.Adaptation) AdaptationDraft {
	return AdaptationDraft{
		ID:                item.ID,
		BookTitle:         item.BookTitle,
		MovieTitle:        item.MovieTitle,
		Author:            item.Author,
		ReleaseYear:       item.ReleaseYear,
		Genre:             JoinList(item.Genre),
		Moods:             JoinList(item.Moods),
		FamousQuote:       item.FamousQuote,
		ComparisonSummary: item.ComparisonSummary,
		SpoilerAnalysis:   item.SpoilerAnalysis,
		IsFamous:          item.IsFamous,

		CoverURL:         item.CoverURL,
		BookDescription:  item.BookDescription,
		TargetAudience:   item.TargetAudience,
		BookRating:       formatRating(item.BookRating),
		OriginalLanguage: item.OriginalLanguage,
		BookReleaseYear:  item.BookReleaseYear,
		ReadLink:         item.ReadLink,
		BuyLink:          item.BuyLink,

		MoviePosterURL:      item.MoviePosterURL,
		MovieDescription:    item.MovieDescription,
		Director:            item.Director,
		Cast:                JoinList(item.Cast),
		MovieTargetAudience: item.MovieTargetAudience,
		MovieRating:         formatRating(item.MovieRating),
		TrailerURL:          item.TrailerURL,
		OTTLink:             item.OTTLink,
	}
}

// AuthorDraft is the raw author form submission.
type AuthorDraft struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	ImageURL     string `json:"imageUrl"`
	NotableWorks string `json:"notableWorks"`
}

// ToAuthor normalizes the draft into the typed author entity.
func (draft AuthorDraft) ToAuthor() author.Author {
	return author.Author{
		ID:           draft.ID,
		Name:         draft.Name,
		Bio:          draft.Bio,
		ImageURL:     draft.ImageURL,
		NotableWorks: SplitList(draft.NotableWorks),
	}
}

// AuthorDraftFrom prefills an author edit form from the stored entity.
func AuthorDraftFrom(item author.Author) AuthorDraft {
	return AuthorDraft{
		ID:           item.ID,
		Name:         item.Name,
		Bio:          item.Bio,
		ImageURL:     item.ImageURL,
		NotableWorks: JoinList(item.NotableWorks),
	}
}
