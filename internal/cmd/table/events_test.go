package table_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventtix/eventtix/internal/cmd/table"
	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/checkout"
	"github.com/eventtix/eventtix/pkg/tickets"
)

func TestEventsToTableData(t *testing.T) {
	events := []catalogue.Event{
		{ID: 3, Artist: "Kutumba", Venue: "Patan Durbar Square", Date: "2026-09-12", Genre: "Folk",
			Tickets: []catalogue.TicketTier{{Type: "General", Price: "NPR 1500", Remaining: 120}}},
		{ID: 4, Artist: "Albatross", Venue: "LOD Thamel", Genre: "Rock"},
	}

	data := table.EventsToTableData(events, false)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"ID", "Artist", "Venue", "Date", "Genre", "From"}, data.Headers)
	assert.Equal(t, "NPR 1500", data.Rows[0][5])
	assert.Equal(t, "-", data.Rows[1][5]) // no tiers, no starting price
}

func TestEventsToTableDataTruncatesDescriptionOnRuneBoundaries(t *testing.T) {
	long := strings.Repeat("नगरकोट ", 20)
	events := []catalogue.Event{
		{ID: 1, Artist: "Kutumba", Description: long,
			Tickets: []catalogue.TicketTier{{Type: "General", Price: "NPR 1500"}}},
	}

	data := table.EventsToTableData(events, true)

	require.Len(t, data.Rows, 1)
	desc := data.Rows[0][len(data.Rows[0])-1]
	assert.True(t, strings.HasSuffix(desc, "..."))
	assert.True(t, utf8.ValidString(desc))
	assert.Equal(t, 80, utf8.RuneCountInString(desc))
}

func TestTiersToTableData(t *testing.T) {
	event := catalogue.Event{
		Tickets: []catalogue.TicketTier{
			{Type: "General", Price: "NPR 1500", Remaining: 120},
			{Type: "VIP", Price: "NPR 3000", Remaining: 20},
		},
	}

	data := table.TiersToTableData(event)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Standard Experience", data.Rows[0][1])
	assert.Equal(t, "Enhanced Experience", data.Rows[1][1])
}

func TestTicketsToTableData(t *testing.T) {
	data := table.TicketsToTableData([]tickets.Ticket{
		{EventName: "Kutumba", Venue: "Patan", TicketType: "VIP", Quantity: 2, Total: 6600, Status: tickets.StatusActive},
	})

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "6600.00", data.Rows[0][5])
	assert.Equal(t, "active", data.Rows[0][6])
}

func TestQuoteToTableData(t *testing.T) {
	data := table.QuoteToTableData(checkout.NewQuote(1500, 2))

	require.Len(t, data.Rows, 3)
	assert.Equal(t, [][]string{
		{"Subtotal", "3000.00"},
		{"Service Fee", "300.00"},
		{"Total", "3300.00"},
	}, data.Rows)
}
