package catalog

import (
	"strconv"
	"time"

	"github.com/marquee-app/marquee/tmdb"
)

const (
	imageBaseURL     = "https://image.tmdb.org/t/p/w500"
	placeholderImage = "https://via.placeholder.com/500"

	unknownTitle  = "Unknown"
	unknownValue  = "N/A"
	noDescription = "No description available."

	categoryMovies = "Movies"
	categoryShows  = "Shows"
	categoryMovie  = "Movie"

	// dramaGenreID (18) discriminates movie-shaped records in mixed lists.
	// An upstream quirk of the deployed catalog, kept for compatibility.
	dramaGenreID = 18
)

// NormalizeMovies maps raw list records to uniform summaries, prefixing each
// id with the source stream so the same title appearing in several streams
// stays unique within a rendered sequence. It is total: a record missing
// every optional field still yields a usable summary.
func NormalizeMovies(raw []tmdb.Movie, source Stream) []Summary {
	out := make([]Summary, 0, len(raw))
	for _, m := range raw {
		out = append(out, normalizeMovie(m, source))
	}
	return out
}

func normalizeMovie(m tmdb.Movie, source Stream) Summary {
	rawID := strconv.FormatInt(m.ID, 10)

	title := m.Name
	if title == "" {
		title = m.Title
	}
	if title == "" {
		title = m.OriginalName
	}
	if title == "" {
		title = unknownTitle
	}

	image := placeholderImage
	switch {
	case m.PosterPath != "":
		image = imageBaseURL + m.PosterPath
	case m.Image != "":
		image = m.Image
	}

	category := categoryShows
	switch {
	case containsGenre(m.GenreIDs, dramaGenreID):
		category = categoryMovies
	case m.Category != "":
		category = m.Category
	}

	return Summary{
		ID:         string(source) + "_" + rawID,
		OriginalID: rawID,
		Title:      title,
		Image:      image,
		Category:   category,
	}
}

// NormalizeDetail maps a raw detail record to the uniform detail shape,
// substituting sentinels for absent fields.
func NormalizeDetail(d tmdb.MovieDetails) Detail {
	rawID := strconv.FormatInt(d.ID, 10)

	title := d.Title
	if title == "" {
		title = d.OriginalTitle
	}
	if title == "" {
		title = unknownTitle
	}

	image := placeholderImage
	if d.PosterPath != "" {
		image = imageBaseURL + d.PosterPath
	}

	year := unknownValue
	if t, err := time.Parse("2006-01-02", d.ReleaseDate); err == nil {
		year = strconv.Itoa(t.Year())
	}

	genres := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		genres = append(genres, g.Name)
	}
	if len(genres) == 0 {
		genres = []string{unknownValue}
	}

	rating := unknownValue
	if d.VoteAverage > 0 {
		rating = strconv.FormatFloat(d.VoteAverage, 'f', 1, 64)
	}

	description := d.Overview
	if description == "" {
		description = noDescription
	}

	return Detail{
		ID:          rawID,
		OriginalID:  rawID,
		Title:       title,
		Image:       image,
		Year:        year,
		Genres:      genres,
		Rating:      rating,
		Description: description,
		Category:    categoryMovie,
	}
}

func containsGenre(ids []int64, id int64) bool {
	for _, g := range ids {
		if g == id {
			return true
		}
	}
	return false
}
