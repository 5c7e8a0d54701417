package tmdb

// Raw api.themoviedb.org response shapes.

type MovieResult struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

type MovieListResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

type ReviewResult struct {
	Id        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type ReviewListResponse struct {
	Page    int            `json:"page"`
	Results []ReviewResult `json:"results"`
}

//------------------------------------------
//------------------------------------------

// MappedMovie is a catalog movie translated to the local Movie shape. Entries
// are identified by the external `tmdb-<id>` form until first persisted.
type MappedMovie struct {
	Id            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ReleaseYear   int     `json:"releaseYear"`
	ImageSrc      string  `json:"imageSrc"`
	AverageRating float64 `json:"averageRating"`
	TmdbId        int64   `json:"tmdbId"`
	VoteCount     int     `json:"voteCount"`
}

type SearchRes struct {
	Movies       []MappedMovie `json:"movies"`
	TotalPages   int           `json:"totalPages"`
	TotalResults int           `json:"totalResults"`
}

type MovieReview struct {
	Id      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// MovieExtraRes backs the tmdbMovieDetails query.
type MovieExtraRes struct {
	TmdbRating  float64       `json:"tmdbRating"`
	TmdbReviews []MovieReview `json:"tmdbReviews"`
	VoteCount   int           `json:"voteCount"`
}
