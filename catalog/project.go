package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The projection functions below are pure: they never touch the store,
// never mutate their input, and are safe to call from any goroutine.

// FilterMovies narrows a sequence by case-insensitive substring match on
// title (and subtitle when present) and exact category match. An empty
// query and an empty category are each no-ops; with both empty the input
// is returned unchanged.
func FilterMovies(movies []Summary, query, category string) []Summary {
	if query == "" && category == "" {
		return movies
	}

	q := strings.ToLower(query)
	out := make([]Summary, 0, len(movies))
	for _, m := range movies {
		if q != "" {
			titleMatch := strings.Contains(strings.ToLower(m.Title), q)
			subtitleMatch := m.Subtitle != "" && strings.Contains(strings.ToLower(m.Subtitle), q)
			if !titleMatch && !subtitleMatch {
				continue
			}
		}
		if category != "" && m.Category != category {
			continue
		}
		out = append(out, m)
	}
	return out
}

// SortMovies returns a copy sorted ascending by title for OrderAlphabetical,
// using locale-aware collation. Any other order is the identity.
func SortMovies(movies []Summary, order Order) []Summary {
	if order != OrderAlphabetical {
		return movies
	}

	// Collators are not safe for concurrent use, so build one per call.
	c := collate.New(language.English)
	out := append([]Summary(nil), movies...)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Title, out[j].Title) < 0
	})
	return out
}

// MergeForSearch concatenates the given sequences, deduplicates by id
// keeping the last occurrence at the position of the first, then applies
// the requested order. Keeping the position of the first occurrence makes
// the subsequent stable sort deterministic across refreshes.
func MergeForSearch(order Order, sequences ...[]Summary) []Summary {
	pos := make(map[string]int)
	merged := make([]Summary, 0)
	for _, seq := range sequences {
		for _, m := range seq {
			if i, ok := pos[m.ID]; ok {
				merged[i] = m
				continue
			}
			pos[m.ID] = len(merged)
			merged = append(merged, m)
		}
	}
	return SortMovies(merged, order)
}
