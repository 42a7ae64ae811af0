package eventtix

import (
	"context"
	"fmt"

	"github.com/eventtix/eventtix/pkg/checkout"
	"github.com/eventtix/eventtix/pkg/errors"
	"github.com/eventtix/eventtix/pkg/gate"
	"github.com/eventtix/eventtix/pkg/logging"
	"github.com/eventtix/eventtix/pkg/tickets"
)

// ErrPendingAuth is returned when an action was parked behind the sign-in
// gate instead of executing.
var ErrPendingAuth = errors.New("action pending authentication")

// Buy purchases tickets for an event. Signed out, the purchase is parked
// and replayed after the next successful sign-in. An empty tierType selects
// the event's first tier; quantity is clamped to the allowed range.
func (c *client) Buy(ctx context.Context, eventID int64, tierType string, quantity int) (tickets.Ticket, error) {
	event, err := c.catalogue.Get(eventID)
	if err != nil {
		c.notifyError(noticeEventNotFound)
		return tickets.Ticket{}, err
	}

	if !c.sessions.Authenticated() {
		c.gate.Request(gate.Action{Kind: gate.KindPurchase, EventID: eventID})
		return tickets.Ticket{}, ErrPendingAuth
	}

	purchase := checkout.NewPurchase(event)
	if tierType != "" {
		if err := purchase.SelectTier(tierType); err != nil {
			return tickets.Ticket{}, err
		}
	}
	purchase.SetQuantity(quantity)

	intent, err := purchase.Confirm()
	if err != nil {
		return tickets.Ticket{}, err
	}

	sess := c.sessions.Current()
	ticket, err := c.backend.RecordPurchase(ctx, sess.User, event, intent)
	if err != nil {
		c.notifyError(fmt.Sprintf("Purchase failed: %v", err))
		return tickets.Ticket{}, err
	}

	logging.Info().
		Int64("event_id", event.ID).
		Str("reference", intent.Reference).
		Int("quantity", intent.Quantity).
		Msg("Purchase recorded")

	c.notify(purchaseNotice(intent, event.Artist))
	return ticket, nil
}

// Tickets returns the signed-in user's tickets.
func (c *client) Tickets(ctx context.Context) ([]tickets.Ticket, error) {
	sess := c.sessions.Current()
	if !sess.Valid() {
		return nil, errors.ErrAuthRequired
	}
	return c.backend.ListTickets(ctx, sess.User.ID)
}

func purchaseNotice(intent checkout.Intent, artist string) string {
	unit := "ticket"
	if intent.Quantity != 1 {
		unit = "tickets"
	}
	return fmt.Sprintf("%d %s %s purchased for %s!", intent.Quantity, intent.TierType, unit, artist)
}
