package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/errors"
)

func testEvents() []catalogue.Event {
	return []catalogue.Event{
		{ID: 1, Artist: "The Midnight Ravens", Venue: "Dasharath Stadium", Genre: "Rock"},
		{ID: 2, Artist: "Sajjan Raj Vaidya", Venue: "Hyatt Regency", Genre: "Pop"},
		{ID: 3, Artist: "Kutumba", Venue: "Patan Durbar Square", Genre: "Folk"},
		{ID: 4, Artist: "Albatross", Venue: "LOD Thamel", Genre: "rock"},
	}
}

func TestFilterGenre(t *testing.T) {
	events := testEvents()

	tests := []struct {
		name    string
		genre   string
		wantIDs []int64
	}{
		{"all passes everything", "all", []int64{1, 2, 3, 4}},
		{"empty passes everything", "", []int64{1, 2, 3, 4}},
		{"exact match", "Pop", []int64{2}},
		{"case-insensitive match", "ROCK", []int64{1, 4}},
		{"no match", "Jazz", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := catalogue.Filter{Genre: tc.genre}.Apply(events)
			require.NoError(t, err)
			assert.Equal(t, tc.wantIDs, ids(got))
		})
	}
}

func TestFilterQuery(t *testing.T) {
	events := testEvents()

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{"empty matches everything", "", []int64{1, 2, 3, 4}},
		{"artist substring", "raven", []int64{1}},
		{"venue substring", "hyatt", []int64{2}},
		{"genre substring", "ro", []int64{1, 4}},
		{"trimmed before matching", "  kutumba  ", []int64{3}},
		{"no match", "zzz", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := catalogue.Filter{Query: tc.query}.Apply(events)
			require.NoError(t, err)
			assert.Equal(t, tc.wantIDs, ids(got))
		})
	}
}

func TestFilterShortQueryRejected(t *testing.T) {
	events := testEvents()

	_, err := catalogue.Filter{Query: "z"}.Apply(events)
	assert.ErrorIs(t, err, errors.ErrQueryTooShort)

	// Whitespace padding does not rescue a one-character query.
	_, err = catalogue.Filter{Query: " z "}.Apply(events)
	assert.ErrorIs(t, err, errors.ErrQueryTooShort)

	// Length is counted in runes, so a single multi-byte character is
	// still one character.
	_, err = catalogue.Filter{Query: "न"}.Apply(events)
	assert.ErrorIs(t, err, errors.ErrQueryTooShort)

	_, err = catalogue.Filter{Query: "音"}.Apply(events)
	assert.ErrorIs(t, err, errors.ErrQueryTooShort)

	// Two runes clear the minimum even when they are many bytes.
	_, err = catalogue.Filter{Query: "नग"}.Apply(events)
	assert.NoError(t, err)
}

func TestFilterCombinesGenreAndQuery(t *testing.T) {
	events := testEvents()

	got, err := catalogue.Filter{Genre: "rock", Query: "albatross"}.Apply(events)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, ids(got))
}

func TestFilterPreservesSourceOrder(t *testing.T) {
	events := testEvents()

	// "ra" matches the artist of 1 and 2 and the venue of 3.
	got, err := catalogue.Filter{Query: "ra"}.Apply(events)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestResultNotice(t *testing.T) {
	assert.Equal(t, `Found 1 event matching "kutumba"`, catalogue.ResultNotice(1, "kutumba"))
	assert.Equal(t, `Found 2 events matching "rock"`, catalogue.ResultNotice(2, "rock"))
	assert.Equal(t, `Found 0 events matching "jazz"`, catalogue.ResultNotice(0, " jazz "))
}

func ids(events []catalogue.Event) []int64 {
	if len(events) == 0 {
		return nil
	}
	out := make([]int64, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
