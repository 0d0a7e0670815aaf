// Package seed holds the launch catalog loaded at startup. The data is
// static editorial content; IDs are stable so reviews and progress
// ledgers can reference entries across restarts.
package seed

import (
	"github.com/book2screen/book2screen/internal/core/author"
	"github.com/book2screen/book2screen/internal/core/catalog"
	"github.com/book2screen/book2screen/internal/core/place"
	"github.com/book2screen/book2screen/internal/core/review"
	"github.com/book2screen/book2screen/pkg/pointer"
	"github.com/book2screen/book2screen/pkg/slug"
)

// Adaptations returns the launch catalog, in display order.
func Adaptations() []catalog.Adaptation {
	items := []catalog.Adaptation{
		{
			ID:                "1",
			BookTitle:         "Dune",
			MovieTitle:        "Dune: Part One",
			Author:            "Frank Herbert",
			ReleaseYear:       "2021",
			Genre:             []string{"Sci-Fi", "Adventure", "Epic"},
			Moods:             []string{"Intense", "Epic", "Philosophical"},
			FamousQuote:       "I must not fear. Fear is the mind-killer. Fear is the little-death that brings total obliteration.",
			ComparisonSummary: "The book relies heavily on internal monologue to explain the politics; the movie uses breathtaking visuals and sound design to convey the scale.",
			SpoilerAnalysis:   "The movie ends abruptly after the jamis duel, leaving out the time jump and Feyd-Rautha. The book explores the ecology of Arrakis in much deeper detail which the movie glosses over for pacing.",
			IsFamous:          true,

			CoverURL:         "https://picsum.photos/seed/dune/300/450",
			BookDescription:  "Paul Atreides, a brilliant and gifted young man born into a great destiny beyond his understanding, must travel to the most dangerous planet in the universe to ensure the future of his family and his people.",
			TargetAudience:   "Adult",
			BookRating:       4.8,
			OriginalLanguage: "English",
			BookReleaseYear:  "1965",
			ReadLink:         "#",
			BuyLink:          "https://amazon.com",

			MoviePosterURL:      "https://picsum.photos/seed/dune-movie/300/450",
			MovieDescription:    "A noble family becomes embroiled in a war for control over the galaxy's most valuable asset while its heir becomes troubled by visions of a dark future.",
			Director:            "Denis Villeneuve",
			Cast:                []string{"Timothée Chalamet", "Rebecca Ferguson", "Oscar Isaac"},
			MovieTargetAudience: "Adults/Teens",
			MovieRating:         4.6,
			TrailerURL:          "https://youtube.com",
			OTTLink:             "https://www.max.com",
		},
		{
			ID:                "2",
			BookTitle:         "Pride and Prejudice",
			MovieTitle:        "Pride & Prejudice",
			Author:            "Jane Austen",
			ReleaseYear:       "2005",
			Genre:             []string{"Romance", "Drama", "Classic"},
			Moods:             []string{"Romantic", "Witty", "Feel-good"},
			FamousQuote:       "It is a truth universally acknowledged, that a single man in possession of a good fortune, must be in want of a wife.",
			ComparisonSummary: "The novel is sharper and more satirical about class; the 2005 film is more romantic and visually stylized.",
			SpoilerAnalysis:   "The movie adds a romantic alternative ending for US audiences (the 'Mrs. Darcy' scene) which is not in the book. The book focuses more on Lydia's scandal ramifications.",
			IsFamous:          true,

			CoverURL:         "https://picsum.photos/seed/pride/300/450",
			BookDescription:  "Sparks fly when spirited Elizabeth Bennet meets single, rich, and proud Mr. Darcy. But Mr. Darcy reluctantly finds himself falling in love with a woman beneath his class.",
			TargetAudience:   "Adult / YA",
			BookRating:       4.9,
			OriginalLanguage: "English",
			BookReleaseYear:  "1813",
			ReadLink:         "#",
			BuyLink:          "https://amazon.com",

			MoviePosterURL:      "https://picsum.photos/seed/pride-movie/300/450",
			MovieDescription:    "Sparks fly when spirited Elizabeth Bennet meets single, rich, and proud Mr. Darcy. But Mr. Darcy reluctantly finds himself falling in love with a woman beneath his class.",
			Director:            "Joe Wright",
			Cast:                []string{"Keira Knightley", "Matthew Macfadyen"},
			MovieTargetAudience: "General Audience",
			MovieRating:         4.7,
			TrailerURL:          "https://youtube.com",
			OTTLink:             "https://netflix.com",
		},
		{
			ID:                "3",
			BookTitle:         "The Lord of the Rings",
			MovieTitle:        "The Fellowship of the Ring",
			Author:            "J.R.R. Tolkien",
			ReleaseYear:       "2001",
			Genre:             []string{"Fantasy", "Adventure", "Action"},
			Moods:             []string{"Epic", "Adventurous", "Hopeful"},
			FamousQuote:       "Not all those who wander are lost.",
			ComparisonSummary: "Tolkien's songs and Tom Bombadil are missing, but the film masters the pacing and action sequences needed for cinema.",
			SpoilerAnalysis:   "Arwen replaces Glorfindel in the movie. The timeline is compressed significantly (Gandalf is gone for years in the book). The ending of the movie Fellowship covers the beginning of the Two Towers book.",
			IsFamous:          true,

			CoverURL:         "https://picsum.photos/seed/lotr/300/450",
			BookDescription:  "A meek Hobbit from the Shire and eight companions set out on a journey to destroy the powerful One Ring and save Middle-earth from the Dark Lord Sauron.",
			TargetAudience:   "All Ages",
			BookRating:       5.0,
			OriginalLanguage: "English",
			BookReleaseYear:  "1954",
			ReadLink:         "#",
			BuyLink:          "https://amazon.com",

			MoviePosterURL:      "https://picsum.photos/seed/lotr-movie/300/450",
			MovieDescription:    "A meek Hobbit from the Shire and eight companions set out on a journey to destroy the powerful One Ring and save Middle-earth from the Dark Lord Sauron.",
			Director:            "Peter Jackson",
			Cast:                []string{"Elijah Wood", "Ian McKellen", "Viggo Mortensen"},
			MovieTargetAudience: "Teens/Adults",
			MovieRating:         4.9,
			TrailerURL:          "https://youtube.com",
			OTTLink:             "https://primevideo.com",
		},
		{
			ID:                "4",
			BookTitle:         "The Godfather",
			MovieTitle:        "The Godfather",
			Author:            "Mario Puzo",
			ReleaseYear:       "1972",
			Genre:             []string{"Crime", "Drama"},
			Moods:             []string{"Dark", "Intense", "Classic"},
			FamousQuote:       "I'm gonna make him an offer he can't refuse.",
			ComparisonSummary: "The movie elevates the source material, removing some of the book's pulpier subplots to focus on the family tragedy.",
			SpoilerAnalysis:   "The book contains a subplot about Lucy Mancini's surgery which is completely removed from the film. The movie ending is more abrupt and powerful regarding Kay's realization.",
			IsFamous:          true,

			CoverURL:         "https://picsum.photos/seed/godfather/300/450",
			BookDescription:  "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
			TargetAudience:   "Adult",
			BookRating:       4.5,
			OriginalLanguage: "English",
			BookReleaseYear:  "1969",
			BuyLink:          "https://amazon.com",

			MoviePosterURL:      "https://picsum.photos/seed/godfather-movie/300/450",
			MovieDescription:    "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
			Director:            "Francis Ford Coppola",
			Cast:                []string{"Marlon Brando", "Al Pacino"},
			MovieTargetAudience: "Adults",
			MovieRating:         5.0,
			TrailerURL:          "#",
			OTTLink:             "#",
		},
		{
			ID:                "5",
			BookTitle:         "Harry Potter",
			MovieTitle:        "HP & The Sorcerer's Stone",
			Author:            "J.K. Rowling",
			ReleaseYear:       "2001",
			Genre:             []string{"Fantasy", "Family"},
			Moods:             []string{"Magical", "Childhood", "Fun"},
			FamousQuote:       "It does not do to dwell on dreams and forget to live.",
			ComparisonSummary: "Very faithful adaptation, though Peeves the Poltergeist is notably absent.",
			IsFamous:          true,

			CoverURL:         "https://picsum.photos/seed/harry/300/450",
			BookDescription:  "An orphaned boy enrolls in a school of wizardry, where he learns the truth about himself, his family and the terrible evil that haunts the magical world.",
			TargetAudience:   "Children / YA",
			BookRating:       4.8,
			OriginalLanguage: "English",
			BookReleaseYear:  "1997",
			BuyLink:          "https://amazon.com",

			MoviePosterURL:      "https://picsum.photos/seed/harry-movie/300/450",
			Director:            "Chris Columbus",
			Cast:                []string{"Daniel Radcliffe", "Emma Watson", "Rupert Grint"},
			MovieTargetAudience: "Children/Family",
			MovieRating:         4.7,
			TrailerURL:          "#",
			OTTLink:             "#",
		},
		{
			ID:                "6",
			BookTitle:         "The Shining",
			MovieTitle:        "The Shining",
			Author:            "Stephen King",
			ReleaseYear:       "1980",
			Genre:             []string{"Horror", "Thriller"},
			Moods:             []string{"Terrifying", "Psychological", "Dark"},
			FamousQuote:       "All work and no play makes Jack a dull boy.",
			ComparisonSummary: "King wrote a tragedy about a good man flawed by addiction; Kubrick made a cold, precise horror about a man who hates his family.",
			SpoilerAnalysis:   "The book ends with the hotel exploding due to the boiler; the movie ends with Jack freezing to death in the maze. Hallorann survives in the book but dies in the movie.",
			IsFamous:          true,

			CoverURL:         "https://picsum.photos/seed/shining/300/450",
			BookDescription:  "A family heads to an isolated hotel for the winter where a sinister presence influences the father into violence.",
			TargetAudience:   "Adult",
			BookRating:       4.6,
			OriginalLanguage: "English",
			BookReleaseYear:  "1977",
			BuyLink:          "https://amazon.com",

			MoviePosterURL:      "https://picsum.photos/seed/shining-movie/300/450",
			Director:            "Stanley Kubrick",
			Cast:                []string{"Jack Nicholson", "Shelley Duvall"},
			MovieTargetAudience: "Adults",
			MovieRating:         4.8,
			TrailerURL:          "#",
			OTTLink:             "#",
		},
		{
			ID:                "7",
			BookTitle:         "Gone Girl",
			MovieTitle:        "Gone Girl",
			Author:            "Gillian Flynn",
			ReleaseYear:       "2014",
			Genre:             []string{"Thriller", "Mystery"},
			Moods:             []string{"Twisted", "Suspenseful", "Dark"},
			FamousQuote:       "Marriage is hard work.",
			ComparisonSummary: "The movie keeps the twist intact and uses the author's own screenplay, ensuring the tone matches perfectly.",
			IsFamous:          false,

			CoverURL:         "https://picsum.photos/seed/gonegirl/300/450",
			BookDescription:  "With his wife's disappearance having become the focus of an intense media circus, a man sees the spotlight turned on him.",
			TargetAudience:   "Adult",
			BookRating:       4.1,
			OriginalLanguage: "English",
			BookReleaseYear:  "2012",
			BuyLink:          "https://amazon.com",

			MoviePosterURL:      "https://picsum.photos/seed/gonegirl-movie/300/450",
			Director:            "David Fincher",
			Cast:                []string{"Ben Affleck", "Rosamund Pike"},
			MovieTargetAudience: "Adults",
			MovieRating:         4.5,
			TrailerURL:          "#",
			OTTLink:             "#",
		},
	}

	for index := range items {
		items[index].Slug = slug.From(items[index].BookTitle)
	}
	return items
}

// Authors returns the launch author profiles.
func Authors() []author.Author {
	return []author.Author{
		{
			ID:           "a1",
			Name:         "Frank Herbert",
			Bio:          "Franklin Patrick Herbert Jr. was an American science fiction author best known for the 1965 novel Dune and its five sequels.",
			ImageURL:     "https://picsum.photos/seed/herbert/200/200",
			NotableWorks: []string{"Dune", "Dune Messiah", "Children of Dune"},
		},
		{
			ID:           "a2",
			Name:         "Jane Austen",
			Bio:          "Jane Austen was an English novelist known primarily for her six major novels, which interpret, critique and comment upon the British landed gentry at the end of the 18th century.",
			ImageURL:     "https://picsum.photos/seed/austen/200/200",
			NotableWorks: []string{"Pride and Prejudice", "Sense and Sensibility", "Emma"},
		},
		{
			ID:           "a3",
			Name:         "J.R.R. Tolkien",
			Bio:          "John Ronald Reuel Tolkien was an English writer, poet, philologist, and academic, best known as the author of the high fantasy works The Hobbit and The Lord of the Rings.",
			ImageURL:     "https://picsum.photos/seed/tolkien/200/200",
			NotableWorks: []string{"The Hobbit", "The Lord of the Rings", "The Silmarillion"},
		},
	}
}

// Reviews returns the launch reviews, oldest last to match the ledger's
// most-recent-first ordering.
func Reviews() []review.Review {
	return []review.Review{
		{
			ID:       "r1",
			UserName: "Alice M.",
			Rating:   5,
			Comment:  "The Dune movie really captured the scale of the book. Villeneuve is a genius!",
			ItemID:   "1",
			ItemName: "Dune",
			Date:     "2023-10-15",
		},
		{
			ID:       "r2",
			UserName: "BookWorm99",
			Rating:   4,
			Comment:  "I still prefer the internal monologues in the book, but the 2005 movie was beautiful.",
			ItemID:   "2",
			ItemName: "Pride & Prejudice",
			Date:     "2023-11-02",
		},
	}
}

// Places returns the launch map locations.
func Places() []place.Place {
	return []place.Place{
		{
			ID:          "p1",
			Name:        "Annual Book Fair",
			Type:        place.TypeFair,
			Date:        pointer.To("Dec 15 - Dec 20"),
			Description: "The city's largest gathering of publishers and rare book dealers.",
			X:           28,
			Y:           32,
			Address:     "Central Exhibition Hall",
		},
		{
			ID:          "p2",
			Name:        "The Reader's Nook",
			Type:        place.TypeStore,
			Description: "Independent bookstore with a dedicated adaptations shelf.",
			X:           55,
			Y:           48,
			Address:     "12 Elm Street",
		},
		{
			ID:          "p3",
			Name:        "Sunday Page Market",
			Type:        place.TypeMarket,
			Date:        pointer.To("Every Sunday"),
			Description: "Open-air second-hand book market by the riverside.",
			X:           70,
			Y:           25,
			Address:     "Riverside Promenade",
		},
		{
			ID:          "p4",
			Name:        "Grand Public Library",
			Type:        place.TypeLibrary,
			Description: "Historic library hosting weekly book-to-film screening nights.",
			X:           42,
			Y:           66,
			Address:     "1 Library Square",
		},
		{
			ID:          "p5",
			Name:        "Midnight Chapters",
			Type:        place.TypeStore,
			Description: "Late-night bookshop and café favored by screenwriters.",
			X:           18,
			Y:           74,
			Address:     "89 Harbor Lane",
		},
		{
			ID:          "p6",
			Name:        "Winter Novel Fair",
			Type:        place.TypeFair,
			Date:        pointer.To("Jan 10 - Jan 12"),
			Description: "Seasonal fair focused on fantasy and science fiction imprints.",
			X:           63,
			Y:           80,
			Address:     "North Pavilion",
		},
	}
}
