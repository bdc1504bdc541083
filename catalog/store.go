package catalog

import (
	"sync"

	"github.com/marquee-app/marquee/tmdb"
)

// Store is the single process-wide cache of fetched catalog data: one raw
// record sequence per stream plus the most recently fetched detail record.
// All mutation goes through the transition methods below; readers get
// copies. The store performs no persistence and no revalidation — it is a
// request-driven read cache with application lifetime.
type Store struct {
	mu sync.Mutex

	streams map[Stream][]tmdb.Movie
	status  map[Stream]Status

	detail       *Detail
	detailStatus Status
	detailGen    uint64

	lastErr string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		streams: make(map[Stream][]tmdb.Movie),
		status:  make(map[Stream]Status),
	}
}

// Pending marks a stream fetch as in flight and clears the shared error.
func (s *Store) Pending(stream Stream) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status[stream] = Status{Phase: PhasePending}
	s.lastErr = ""
}

// Fulfill records a successful page fetch. Page 1 replaces the stream's
// sequence wholesale so a refresh restarts from the top; any later page is
// appended, preserving order across successive fetches.
func (s *Store) Fulfill(stream Stream, page int, results []tmdb.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page <= 1 {
		s.streams[stream] = append([]tmdb.Movie(nil), results...)
	} else {
		s.streams[stream] = append(s.streams[stream], results...)
	}
	s.status[stream] = Status{Phase: PhaseFulfilled}
}

// Reject records a failed stream fetch. Previously fetched data for the
// stream is retained.
func (s *Store) Reject(stream Stream, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status[stream] = Status{Phase: PhaseRejected, Err: message}
	s.lastErr = message
}

// BeginDetail marks a detail fetch as in flight and returns its generation.
// Generations are monotonic; a fulfillment or rejection carrying anything
// but the latest generation is discarded, so a slow response for a title
// the user already navigated away from never overwrites the current one.
func (s *Store) BeginDetail() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.detailGen++
	s.detailStatus = Status{Phase: PhasePending}
	s.lastErr = ""
	return s.detailGen
}

// FulfillDetail replaces the detail slot if gen is still the latest issued
// generation. It reports whether the result was accepted.
func (s *Store) FulfillDetail(gen uint64, d Detail) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.detailGen {
		return false
	}
	s.detail = &d
	s.detailStatus = Status{Phase: PhaseFulfilled}
	return true
}

// RejectDetail records a failed detail fetch if gen is still current. The
// previously fetched detail, if any, is retained.
func (s *Store) RejectDetail(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.detailGen {
		return false
	}
	s.detailStatus = Status{Phase: PhaseRejected, Err: message}
	s.lastErr = message
	return true
}

// Reset synchronously clears all stream sequences, the detail slot and all
// status, guaranteeing page-1 semantics for whatever is fetched next. The
// detail generation is not reset; it stays monotonic for the process
// lifetime so fencing survives a refresh cycle.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.streams = make(map[Stream][]tmdb.Movie)
	s.status = make(map[Stream]Status)
	s.detail = nil
	s.detailStatus = Status{}
	s.lastErr = ""
}

// Movies returns a copy of the raw record sequence for a stream.
func (s *Store) Movies(stream Stream) []tmdb.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]tmdb.Movie(nil), s.streams[stream]...)
}

// Len returns the number of raw records held for a stream.
func (s *Store) Len(stream Stream) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.streams[stream])
}

// Detail returns the most recently fulfilled detail record, if any.
func (s *Store) Detail() (Detail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detail == nil {
		return Detail{}, false
	}
	return *s.detail, true
}

// StreamStatus returns the fetch status of a single stream.
func (s *Store) StreamStatus(stream Stream) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status[stream]
}

// DetailStatus returns the fetch status of the detail slot.
func (s *Store) DetailStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.detailStatus
}

// Loading reports whether any fetch, stream or detail, is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detailStatus.Phase == PhasePending {
		return true
	}
	for _, st := range s.status {
		if st.Phase == PhasePending {
			return true
		}
	}
	return false
}

// Err returns the message of the most recent rejection across all streams
// and the detail slot, last-write-wins, or the empty string.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastErr
}
