package catalog

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/marquee-app/marquee/tmdb"
)

// Orchestrator issues paged fetches against the three catalog streams and
// on-demand detail lookups, recording every outcome in the store. Fetches
// for different streams are independent and may run concurrently; failures
// are surfaced once and never retried automatically — the caller decides
// whether to re-issue the same fetch.
type Orchestrator struct {
	api    CatalogAPI
	store  *Store
	logger zerolog.Logger

	mu      sync.Mutex
	cursors map[Stream]int
	maxPage int
}

// NewOrchestrator creates an orchestrator with every stream cursor at page 1.
func NewOrchestrator(api CatalogAPI, store *Store, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		api:     api,
		store:   store,
		logger:  logger,
		cursors: newCursors(),
		maxPage: tmdb.MaxPage,
	}
}

// SetMaxPage overrides the pagination cap, mainly for tests and config.
func (o *Orchestrator) SetMaxPage(maxPage int) {
	if maxPage < 1 {
		return
	}
	o.mu.Lock()
	o.maxPage = maxPage
	o.mu.Unlock()
}

// Store returns the store the orchestrator mutates.
func (o *Orchestrator) Store() *Store {
	return o.store
}

func newCursors() map[Stream]int {
	cursors := make(map[Stream]int, len(AllStreams()))
	for _, stream := range AllStreams() {
		cursors[stream] = 1
	}
	return cursors
}

// FetchPopular fetches one page of the popular stream.
func (o *Orchestrator) FetchPopular(ctx context.Context, page int) error {
	return o.fetchList(ctx, StreamPopular, page)
}

// FetchUpcoming fetches one page of the upcoming stream.
func (o *Orchestrator) FetchUpcoming(ctx context.Context, page int) error {
	return o.fetchList(ctx, StreamUpcoming, page)
}

// FetchNowPlaying fetches one page of the now-playing stream.
func (o *Orchestrator) FetchNowPlaying(ctx context.Context, page int) error {
	return o.fetchList(ctx, StreamNowPlaying, page)
}

func (o *Orchestrator) fetchList(ctx context.Context, stream Stream, page int) error {
	o.store.Pending(stream)

	list, err := o.list(ctx, stream, page)
	if err != nil {
		o.store.Reject(stream, err.Error())
		o.logger.Warn().
			Err(err).
			Str("stream", string(stream)).
			Int("page", page).
			Msg("Stream fetch failed")
		return err
	}

	o.store.Fulfill(stream, page, list.Results)
	o.logger.Debug().
		Str("stream", string(stream)).
		Int("page", page).
		Int("count", len(list.Results)).
		Int("total", o.store.Len(stream)).
		Msg("Stream page fetched")
	return nil
}

func (o *Orchestrator) list(ctx context.Context, stream Stream, page int) (*tmdb.MovieList, error) {
	switch stream {
	case StreamUpcoming:
		return o.api.GetUpcoming(ctx, page)
	case StreamNowPlaying:
		return o.api.GetNowPlaying(ctx, page)
	default:
		return o.api.GetPopular(ctx, page)
	}
}

// FetchDetail fetches and normalizes the detail record for a single title.
// Each call gets a fresh generation; a response that arrives after a newer
// detail fetch was issued is discarded by the store.
func (o *Orchestrator) FetchDetail(ctx context.Context, id string) error {
	gen := o.store.BeginDetail()

	raw, err := o.api.GetMovie(ctx, id)
	if err != nil {
		if !o.store.RejectDetail(gen, err.Error()) {
			o.logger.Debug().Str("id", id).Msg("Discarded stale detail failure")
		}
		return err
	}

	if !o.store.FulfillDetail(gen, NormalizeDetail(*raw)) {
		o.logger.Debug().Str("id", id).Msg("Discarded stale detail response")
		return nil
	}

	o.logger.Debug().Str("id", id).Msg("Detail fetched")
	return nil
}

// Page returns the current cursor for a stream: the highest page fetched
// successfully through LoadMore, starting at 1.
func (o *Orchestrator) Page(stream Stream) int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.cursors[stream]
}

// HasMore reports whether a stream has pages left below the cap. Each
// stream owns its own predicate; none reads another stream's cursor.
func (o *Orchestrator) HasMore(stream Stream) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.cursors[stream] < o.maxPage
}

// AnyHasMore reports whether any stream still has pages left.
func (o *Orchestrator) AnyHasMore() bool {
	for _, stream := range AllStreams() {
		if o.HasMore(stream) {
			return true
		}
	}
	return false
}

// LoadMore fetches the next page of a stream and advances its cursor on
// success. At the cap it is a no-op.
func (o *Orchestrator) LoadMore(ctx context.Context, stream Stream) error {
	o.mu.Lock()
	if o.cursors[stream] >= o.maxPage {
		o.mu.Unlock()
		return nil
	}
	next := o.cursors[stream] + 1
	o.mu.Unlock()

	if err := o.fetchList(ctx, stream, next); err != nil {
		return err
	}

	o.mu.Lock()
	if o.cursors[stream] < next {
		o.cursors[stream] = next
	}
	o.mu.Unlock()
	return nil
}

// LoadMoreAll loads the next page of every stream that has one, fetching
// concurrently. Streams are independent: one failing does not cancel the
// others, and the first error is returned after all fetches settle.
func (o *Orchestrator) LoadMoreAll(ctx context.Context) error {
	var g errgroup.Group
	for _, stream := range AllStreams() {
		if !o.HasMore(stream) {
			continue
		}
		stream := stream
		g.Go(func() error {
			return o.LoadMore(ctx, stream)
		})
	}
	return g.Wait()
}

// Reset clears the store and rewinds every cursor to page 1.
func (o *Orchestrator) Reset() {
	o.store.Reset()

	o.mu.Lock()
	o.cursors = newCursors()
	o.mu.Unlock()
}

// RefreshAll resets everything and fetches page 1 of all three streams
// concurrently, the refresh-from-top cycle.
func (o *Orchestrator) RefreshAll(ctx context.Context) error {
	o.Reset()

	var g errgroup.Group
	g.Go(func() error { return o.FetchPopular(ctx, 1) })
	g.Go(func() error { return o.FetchUpcoming(ctx, 1) })
	g.Go(func() error { return o.FetchNowPlaying(ctx, 1) })
	return g.Wait()
}

// Project derives the rendered sequence for one stream: normalize, filter,
// sort. Reads never mutate the store.
func (o *Orchestrator) Project(stream Stream, query, category string, order Order) []Summary {
	normalized := NormalizeMovies(o.store.Movies(stream), stream)
	return SortMovies(FilterMovies(normalized, query, category), order)
}

// Search projects every stream with the given query and category, then
// merges them into a single deduplicated sequence.
func (o *Orchestrator) Search(query, category string, order Order) []Summary {
	sequences := make([][]Summary, 0, len(AllStreams()))
	for _, stream := range AllStreams() {
		normalized := NormalizeMovies(o.store.Movies(stream), stream)
		sequences = append(sequences, FilterMovies(normalized, query, category))
	}
	return MergeForSearch(order, sequences...)
}
