package catalog

import (
	"reflect"
	"testing"

	"github.com/marquee-app/marquee/tmdb"
)

func TestNormalizeMovieIsTotal(t *testing.T) {
	// A record missing every optional field still normalizes
	got := NormalizeMovies([]tmdb.Movie{{ID: 7}}, StreamPopular)

	want := Summary{
		ID:         "popular_7",
		OriginalID: "7",
		Title:      "Unknown",
		Image:      "https://via.placeholder.com/500",
		Category:   "Shows",
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0], want) {
		t.Errorf("normalize(empty record) = %+v, want %+v", got, want)
	}
}

func TestNormalizeMovieTitlePrecedence(t *testing.T) {
	tests := []struct {
		name  string
		movie tmdb.Movie
		want  string
	}{
		{
			name:  "name wins over title",
			movie: tmdb.Movie{ID: 1, Name: "Dark", Title: "Ignored", OriginalName: "Ignored"},
			want:  "Dark",
		},
		{
			name:  "title wins over original_name",
			movie: tmdb.Movie{ID: 1, Title: "Heat", OriginalName: "Ignored"},
			want:  "Heat",
		},
		{
			name:  "original_name as last resort",
			movie: tmdb.Movie{ID: 1, OriginalName: "Le Samouraï"},
			want:  "Le Samouraï",
		},
		{
			name:  "unknown fallback",
			movie: tmdb.Movie{ID: 1},
			want:  "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeMovie(tt.movie, StreamPopular)
			if got.Title != tt.want {
				t.Errorf("title = %q, want %q", got.Title, tt.want)
			}
		})
	}
}

func TestNormalizeMovieImageResolution(t *testing.T) {
	poster := normalizeMovie(tmdb.Movie{ID: 1, PosterPath: "/abc.jpg"}, StreamPopular)
	if poster.Image != "https://image.tmdb.org/t/p/w500/abc.jpg" {
		t.Errorf("unexpected poster image %q", poster.Image)
	}

	raw := normalizeMovie(tmdb.Movie{ID: 1, Image: "https://example.com/x.jpg"}, StreamPopular)
	if raw.Image != "https://example.com/x.jpg" {
		t.Errorf("expected raw image fallback, got %q", raw.Image)
	}
}

func TestNormalizeMovieCategory(t *testing.T) {
	drama := normalizeMovie(tmdb.Movie{ID: 1, GenreIDs: []int64{53, 18}}, StreamPopular)
	if drama.Category != "Movies" {
		t.Errorf("genre 18 should classify as Movies, got %q", drama.Category)
	}

	own := normalizeMovie(tmdb.Movie{ID: 1, Category: "Anime"}, StreamPopular)
	if own.Category != "Anime" {
		t.Errorf("record category should pass through, got %q", own.Category)
	}
}

func TestNormalizeMovieIDUniquePerStream(t *testing.T) {
	raw := []tmdb.Movie{{ID: 42, Title: "Heat"}}

	popular := NormalizeMovies(raw, StreamPopular)[0]
	upcoming := NormalizeMovies(raw, StreamUpcoming)[0]

	if popular.ID == upcoming.ID {
		t.Error("ids must differ across streams for the same title")
	}
	if popular.OriginalID != upcoming.OriginalID {
		t.Error("originalId must be stable across streams")
	}
}

func TestNormalizeDetail(t *testing.T) {
	raw := tmdb.MovieDetails{
		ID:          603,
		Title:       "The Matrix",
		PosterPath:  "/matrix.jpg",
		ReleaseDate: "1999-03-30",
		Genres:      []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		VoteAverage: 8.7,
		Overview:    "A hacker learns the truth.",
	}

	got := NormalizeDetail(raw)
	if got.ID != "603" || got.OriginalID != "603" {
		t.Errorf("unexpected ids %q/%q", got.ID, got.OriginalID)
	}
	if got.Year != "1999" {
		t.Errorf("year = %q, want %q", got.Year, "1999")
	}
	if got.Rating != "8.7" {
		t.Errorf("rating = %q, want %q", got.Rating, "8.7")
	}
	if !reflect.DeepEqual(got.Genres, []string{"Action", "Science Fiction"}) {
		t.Errorf("unexpected genres %v", got.Genres)
	}
	if got.Category != "Movie" {
		t.Errorf("category = %q, want %q", got.Category, "Movie")
	}
}

func TestNormalizeDetailSentinels(t *testing.T) {
	got := NormalizeDetail(tmdb.MovieDetails{ID: 1})

	if got.Title != "Unknown" {
		t.Errorf("title = %q, want %q", got.Title, "Unknown")
	}
	if got.Year != "N/A" {
		t.Errorf("year = %q, want %q", got.Year, "N/A")
	}
	if got.Rating != "N/A" {
		t.Errorf("rating = %q, want %q", got.Rating, "N/A")
	}
	if !reflect.DeepEqual(got.Genres, []string{"N/A"}) {
		t.Errorf("genres = %v, want one-element sentinel", got.Genres)
	}
	if got.Description != "No description available." {
		t.Errorf("description = %q", got.Description)
	}
	if got.Image != "https://via.placeholder.com/500" {
		t.Errorf("image = %q", got.Image)
	}
}
