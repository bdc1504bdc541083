package catalog

// Stream identifies one independently paginated catalog list.
type Stream string

// The three streams the catalog exposes.
const (
	StreamPopular    Stream = "popular"
	StreamUpcoming   Stream = "upcoming"
	StreamNowPlaying Stream = "nowPlaying"
)

// AllStreams returns the streams in display order.
func AllStreams() []Stream {
	return []Stream{StreamPopular, StreamUpcoming, StreamNowPlaying}
}

// Summary is the uniform list-item record consumed by the presentation
// layer. ID is unique within any rendered sequence because it carries the
// source stream as a prefix; OriginalID is the raw catalog id and is stable
// for a given title across streams.
type Summary struct {
	ID         string
	OriginalID string
	Title      string
	Subtitle   string
	Image      string
	Category   string
}

// Detail is the uniform single-title record. Fields that the upstream
// record may omit carry the "N/A" sentinel instead of being empty.
type Detail struct {
	ID          string
	OriginalID  string
	Title       string
	Image       string
	Year        string
	Genres      []string
	Rating      string
	Description string
	Category    string
}

// Phase is the lifecycle state of a fetch for one stream or the detail slot.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseFulfilled
	PhaseRejected
)

// String implements fmt.Stringer
func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseFulfilled:
		return "fulfilled"
	case PhaseRejected:
		return "rejected"
	default:
		return "idle"
	}
}

// Status pairs a fetch phase with the error message of the most recent
// rejection, if any.
type Status struct {
	Phase Phase
	Err   string
}

// Order selects the presentation order of a projected sequence.
type Order string

const (
	// OrderDefault keeps the input order untouched.
	OrderDefault Order = "default"
	// OrderAlphabetical sorts ascending by title, locale-aware.
	OrderAlphabetical Order = "alphabetical"
)
