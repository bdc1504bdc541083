package tmdb

// Movie is a raw list entry as returned by the paged list endpoints.
// Upstream mixes movie-shaped and show-shaped records, so most fields are
// optional; normalization into a uniform record happens in the catalog
// package.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	OriginalName string  `json:"original_name"`
	PosterPath   string  `json:"poster_path"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
	GenreIDs     []int64 `json:"genre_ids"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// MovieList is the envelope returned by the paged list endpoints.
type MovieList struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is a named genre as returned by the detail endpoint.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the raw single-title record from GET /movie/{id}.
type MovieDetails struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	PosterPath    string  `json:"poster_path"`
	ReleaseDate   string  `json:"release_date"`
	Genres        []Genre `json:"genres"`
	VoteAverage   float64 `json:"vote_average"`
	Overview      string  `json:"overview"`
	Runtime       int     `json:"runtime"`
	Tagline       string  `json:"tagline"`
}
