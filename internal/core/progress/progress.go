package progress

// Flag names one of the five independent booleans in a progress record.
type Flag string

const (
	FlagFavoriteBook       Flag = "isFavoriteBook"
	FlagFavoriteMovie      Flag = "isFavoriteMovie"
	FlagFavoriteAdaptation Flag = "isFavoriteAdaptation"
	FlagBookRead           Flag = "isBookRead"
	FlagMovieWatched       Flag = "isMovieWatched"
)

// Flags lists every valid flag name, used for input validation.
var Flags = []Flag{
	FlagFavoriteBook,
	FlagFavoriteMovie,
	FlagFavoriteAdaptation,
	FlagBookRead,
	FlagMovieWatched,
}

// Record tracks one reader's state for one catalog entry. The five
// flags are fully independent; an absent record is equivalent to the
// zero value.
type Record struct {
	FavoriteBook       bool `json:"isFavoriteBook"`
	FavoriteMovie      bool `json:"isFavoriteMovie"`
	FavoriteAdaptation bool `json:"isFavoriteAdaptation"`
	BookRead           bool `json:"isBookRead"`
	MovieWatched       bool `json:"isMovieWatched"`
}

// IsCompleted reports whether both consumption flags are set.
func (r Record) IsCompleted() bool {
	return r.BookRead && r.MovieWatched
}

// IsZero reports whether every flag is false, i.e. the record carries no
// information and can be dropped from the ledger.
func (r Record) IsZero() bool {
	return r == Record{}
}

// Get returns the value of one flag.
func (r Record) Get(flag Flag) bool {
	switch flag {
	case FlagFavoriteBook:
		return r.FavoriteBook
	case FlagFavoriteMovie:
		return r.FavoriteMovie
	case FlagFavoriteAdaptation:
		return r.FavoriteAdaptation
	case FlagBookRead:
		return r.BookRead
	case FlagMovieWatched:
		return r.MovieWatched
	}
	return false
}

// withFlag returns a copy of the record with one flag set to value.
func (r Record) withFlag(flag Flag, value bool) Record {
	switch flag {
	case FlagFavoriteBook:
		r.FavoriteBook = value
	case FlagFavoriteMovie:
		r.FavoriteMovie = value
	case FlagFavoriteAdaptation:
		r.FavoriteAdaptation = value
	case FlagBookRead:
		r.BookRead = value
	case FlagMovieWatched:
		r.MovieWatched = value
	}
	return r
}

// Stats is the aggregate view over the whole ledger. Every counter is
// derived on demand; nothing is cached across mutations.
type Stats struct {
	BooksRead           int `json:"booksRead"`
	MoviesWatched       int `json:"moviesWatched"`
	AdaptationsDone     int `json:"adaptationsDone"`
	FavoriteBooks       int `json:"favoriteBooks"`
	FavoriteMovies      int `json:"favoriteMovies"`
	FavoriteAdaptations int `json:"favoriteAdaptations"`
}
