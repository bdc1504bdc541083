package catalog

import (
	"context"

	"github.com/marquee-app/marquee/tmdb"
)

// CatalogAPI defines the slice of the TMDB client the orchestrator depends on
type CatalogAPI interface {
	// List operations, one per stream
	GetPopular(ctx context.Context, page int) (*tmdb.MovieList, error)
	GetUpcoming(ctx context.Context, page int) (*tmdb.MovieList, error)
	GetNowPlaying(ctx context.Context, page int) (*tmdb.MovieList, error)

	// Single-title lookup
	GetMovie(ctx context.Context, id string) (*tmdb.MovieDetails, error)
}
