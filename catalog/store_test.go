package catalog

import (
	"reflect"
	"testing"

	"github.com/marquee-app/marquee/tmdb"
)

func makeMovies(base int64, n int) []tmdb.Movie {
	movies := make([]tmdb.Movie, 0, n)
	for i := 0; i < n; i++ {
		movies = append(movies, tmdb.Movie{
			ID:    base + int64(i),
			Title: "Movie",
		})
	}
	return movies
}

func TestFulfillPageOneReplaces(t *testing.T) {
	s := NewStore()

	s.Fulfill(StreamPopular, 1, makeMovies(1, 20))
	s.Fulfill(StreamPopular, 2, makeMovies(21, 20))
	if got := s.Len(StreamPopular); got != 40 {
		t.Fatalf("expected 40 entries after page 2, got %d", got)
	}

	// A fresh page 1 replaces the whole sequence, not appends
	replacement := makeMovies(100, 20)
	s.Fulfill(StreamPopular, 1, replacement)
	if got := s.Movies(StreamPopular); !reflect.DeepEqual(got, replacement) {
		t.Errorf("page 1 fulfillment should replace the sequence, got %d entries", len(got))
	}
}

func TestFulfillAppendsPreservingOrder(t *testing.T) {
	s := NewStore()

	first := makeMovies(1, 20)
	second := makeMovies(21, 20)
	s.Fulfill(StreamUpcoming, 1, first)
	s.Fulfill(StreamUpcoming, 2, second)

	got := s.Movies(StreamUpcoming)
	want := append(append([]tmdb.Movie(nil), first...), second...)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("page 2 fulfillment should append preserving order")
	}
}

func TestRejectRetainsDataAndRecordsError(t *testing.T) {
	s := NewStore()

	s.Fulfill(StreamPopular, 1, makeMovies(1, 20))
	s.Fulfill(StreamPopular, 2, makeMovies(21, 20))

	s.Pending(StreamPopular)
	if !s.Loading() {
		t.Error("expected loading while a fetch is pending")
	}
	s.Reject(StreamPopular, "Network Error")

	if got := s.Len(StreamPopular); got != 40 {
		t.Errorf("rejection should retain prior data, got %d entries", got)
	}
	if got := s.Err(); got != "Network Error" {
		t.Errorf("expected error %q, got %q", "Network Error", got)
	}
	if s.Loading() {
		t.Error("expected loading=false after rejection")
	}
	status := s.StreamStatus(StreamPopular)
	if status.Phase != PhaseRejected || status.Err != "Network Error" {
		t.Errorf("unexpected stream status %+v", status)
	}
}

func TestPendingClearsSharedError(t *testing.T) {
	s := NewStore()

	s.Pending(StreamPopular)
	s.Reject(StreamPopular, "boom")
	s.Pending(StreamPopular)

	if got := s.Err(); got != "" {
		t.Errorf("pending should clear the shared error, got %q", got)
	}
}

func TestPerStreamStatusIndependence(t *testing.T) {
	s := NewStore()

	s.Pending(StreamPopular)
	s.Pending(StreamUpcoming)
	s.Reject(StreamUpcoming, "upstream down")

	// popular still loading while upcoming already errored
	if got := s.StreamStatus(StreamPopular).Phase; got != PhasePending {
		t.Errorf("expected popular pending, got %v", got)
	}
	if got := s.StreamStatus(StreamUpcoming); got.Phase != PhaseRejected || got.Err != "upstream down" {
		t.Errorf("unexpected upcoming status %+v", got)
	}
	if !s.Loading() {
		t.Error("expected coarse loading=true while popular is pending")
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := NewStore()

	s.Fulfill(StreamPopular, 1, makeMovies(1, 5))
	s.Fulfill(StreamUpcoming, 1, makeMovies(6, 5))
	s.Fulfill(StreamNowPlaying, 1, makeMovies(11, 5))
	gen := s.BeginDetail()
	s.FulfillDetail(gen, Detail{ID: "1", Title: "Heat"})
	s.Pending(StreamPopular)
	s.Reject(StreamPopular, "boom")

	s.Reset()

	for _, stream := range AllStreams() {
		if got := s.Len(stream); got != 0 {
			t.Errorf("expected empty %s after reset, got %d", stream, got)
		}
		if got := s.StreamStatus(stream).Phase; got != PhaseIdle {
			t.Errorf("expected idle %s after reset, got %v", stream, got)
		}
	}
	if _, ok := s.Detail(); ok {
		t.Error("expected no detail after reset")
	}
	if s.Loading() {
		t.Error("expected loading=false after reset")
	}
	if got := s.Err(); got != "" {
		t.Errorf("expected no error after reset, got %q", got)
	}
}

func TestDetailGenerationFencing(t *testing.T) {
	s := NewStore()

	gen1 := s.BeginDetail()
	gen2 := s.BeginDetail()

	// The older in-flight fetch resolves after the newer one was issued
	if s.FulfillDetail(gen1, Detail{ID: "1", Title: "Stale"}) {
		t.Error("stale fulfillment should be discarded")
	}
	if _, ok := s.Detail(); ok {
		t.Error("discarded fulfillment should not populate the detail slot")
	}

	if !s.FulfillDetail(gen2, Detail{ID: "2", Title: "Fresh"}) {
		t.Fatal("current fulfillment should be accepted")
	}
	d, ok := s.Detail()
	if !ok || d.Title != "Fresh" {
		t.Errorf("expected the latest-issued fetch to win, got %+v", d)
	}

	// Stale rejections are discarded too
	if s.RejectDetail(gen1, "too late") {
		t.Error("stale rejection should be discarded")
	}
	if got := s.Err(); got != "" {
		t.Errorf("stale rejection should not record an error, got %q", got)
	}
}

func TestDetailFulfillReplacesWholesale(t *testing.T) {
	s := NewStore()

	gen := s.BeginDetail()
	s.FulfillDetail(gen, Detail{ID: "1", Title: "First"})

	gen = s.BeginDetail()
	s.FulfillDetail(gen, Detail{ID: "2", Title: "Second"})

	d, ok := s.Detail()
	if !ok || d.ID != "2" {
		t.Errorf("detail should be replaced wholesale, got %+v", d)
	}
}

func TestDetailRejectRetainsPreviousDetail(t *testing.T) {
	s := NewStore()

	gen := s.BeginDetail()
	s.FulfillDetail(gen, Detail{ID: "1", Title: "Kept"})

	gen = s.BeginDetail()
	s.RejectDetail(gen, "not found")

	d, ok := s.Detail()
	if !ok || d.Title != "Kept" {
		t.Errorf("rejection should retain the previous detail, got %+v", d)
	}
	if got := s.Err(); got != "not found" {
		t.Errorf("expected error %q, got %q", "not found", got)
	}
}

func TestMoviesReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Fulfill(StreamPopular, 1, makeMovies(1, 3))

	got := s.Movies(StreamPopular)
	got[0].Title = "mutated"

	if s.Movies(StreamPopular)[0].Title == "mutated" {
		t.Error("Movies should return a copy, not the backing slice")
	}
}
