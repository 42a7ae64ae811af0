package catalogue

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/eventtix/eventtix/pkg/errors"
)

// GenreAll is the genre filter value that passes every event.
const GenreAll = "all"

// MinQueryLength is the minimum trimmed length of a free-text query. Shorter
// non-empty queries are rejected and the previous results stand.
const MinQueryLength = 2

// ShortQueryNotice is the user-visible message for a rejected short query.
const ShortQueryNotice = "Please enter at least 2 characters to search"

// Filter selects the displayed subset of the catalogue: an active genre
// filter and a free-text query, combined with AND. Source order is preserved.
type Filter struct {
	Genre string
	Query string
}

// Apply filters events by genre and query, preserving catalogue order.
// A non-empty query shorter than MinQueryLength after trimming returns
// ErrQueryTooShort; callers keep their previous results in that case.
func (f Filter) Apply(events []Event) ([]Event, error) {
	query := strings.TrimSpace(f.Query)
	if n := utf8.RuneCountInString(query); n > 0 && n < MinQueryLength {
		return nil, errors.ErrQueryTooShort
	}

	filtered := make([]Event, 0, len(events))
	for _, event := range events {
		if !f.matchesGenre(event) {
			continue
		}
		if query != "" && !matchesQuery(event, query) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered, nil
}

func (f Filter) matchesGenre(event Event) bool {
	if f.Genre == "" || strings.EqualFold(f.Genre, GenreAll) {
		return true
	}
	return strings.EqualFold(event.Genre, f.Genre)
}

// matchesQuery reports a case-insensitive substring match against the
// event's artist, venue, or genre.
func matchesQuery(event Event, query string) bool {
	query = strings.ToLower(query)
	return strings.Contains(strings.ToLower(event.Artist), query) ||
		strings.Contains(strings.ToLower(event.Venue), query) ||
		strings.Contains(strings.ToLower(event.Genre), query)
}

// ResultNotice is the user-visible match-count message emitted on an
// explicit search submission, pluralized ("1 event" vs "N events").
func ResultNotice(count int, query string) string {
	noun := "events"
	if count == 1 {
		noun = "event"
	}
	return fmt.Sprintf("Found %d %s matching %q", count, noun, strings.TrimSpace(query))
}
