package table

import (
	"fmt"
	"strconv"

	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/checkout"
	"github.com/eventtix/eventtix/pkg/tickets"
)

// EventsToTableData converts catalogue events to table format.
func EventsToTableData(events []catalogue.Event, showDetails bool) Data {
	headers := []string{"ID", "Artist", "Venue", "Date", "Genre", "From"}
	if showDetails {
		headers = append(headers, "Tiers", "Description")
	}

	rows := make([][]string, 0, len(events))
	for _, event := range events {
		row := []string{
			strconv.FormatInt(event.ID, 10),
			event.Artist,
			event.Venue,
			event.Date,
			event.Genre,
			FormatStartingPrice(event),
		}

		if showDetails {
			row = append(row, strconv.Itoa(len(event.Tickets)), truncate(event.Description, 80))
		}

		rows = append(rows, row)
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignRight, AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight,
		},
	}
}

// TiersToTableData converts an event's ticket tiers to table format.
func TiersToTableData(event catalogue.Event) Data {
	rows := make([][]string, 0, len(event.Tickets))
	for i, tier := range event.Tickets {
		rows = append(rows, []string{
			tier.Type,
			catalogue.TierExperience(i),
			tier.Price,
			strconv.Itoa(tier.Remaining),
		})
	}

	return Data{
		Headers: []string{"Tier", "Experience", "Price", "Remaining"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft, AlignLeft, AlignRight, AlignRight,
		},
	}
}

// TicketsToTableData converts owned tickets to table format.
func TicketsToTableData(owned []tickets.Ticket) Data {
	rows := make([][]string, 0, len(owned))
	for _, t := range owned {
		rows = append(rows, []string{
			t.EventName,
			t.Venue,
			t.Date,
			t.TicketType,
			strconv.Itoa(t.Quantity),
			FormatAmount(t.Total),
			string(t.Status),
		})
	}

	return Data{
		Headers: []string{"Event", "Venue", "Date", "Type", "Qty", "Total", "Status"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft,
		},
	}
}

// QuoteToTableData converts a cost quote to a key-value table.
func QuoteToTableData(quote checkout.Quote) Data {
	return Data{
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Subtotal", FormatAmount(quote.Subtotal)},
			{"Service Fee", FormatAmount(quote.ServiceFee)},
			{"Total", FormatAmount(quote.Total)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// FormatStartingPrice returns the display price of an event's first tier,
// or "-" when the event has none.
func FormatStartingPrice(event catalogue.Event) string {
	if len(event.Tickets) == 0 {
		return "-"
	}
	return event.Tickets[0].Price
}

// FormatAmount renders a monetary amount with two decimal places.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func truncate(s string, limit int) string {
	if s == "" {
		return "-"
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit-3]) + "..."
	}
	return s
}
