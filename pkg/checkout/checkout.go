// Package checkout models the ticket purchase flow for a single event: tier
// selection, quantity clamping and the itemized cost quote.
package checkout

import (
	"github.com/google/uuid"

	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/errors"
)

// Quantity bounds per purchase.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Purchase is an in-progress ticket order for one event. The first tier is
// selected by default; an event with no tiers produces a purchase that
// cannot be confirmed.
type Purchase struct {
	event    catalogue.Event
	tier     catalogue.TicketTier
	hasTier  bool
	quantity int
}

// NewPurchase starts an order for the given event.
func NewPurchase(event catalogue.Event) *Purchase {
	p := &Purchase{event: event, quantity: MinQuantity}
	if len(event.Tickets) > 0 {
		p.tier = event.Tickets[0]
		p.hasTier = true
	}
	return p
}

// Event returns the event being purchased.
func (p *Purchase) Event() catalogue.Event {
	return p.event
}

// Tier returns the selected tier, or false when the event has none.
func (p *Purchase) Tier() (catalogue.TicketTier, bool) {
	return p.tier, p.hasTier
}

// SelectTier switches the order to the named tier.
func (p *Purchase) SelectTier(tierType string) error {
	for _, tier := range p.event.Tickets {
		if tier.Type == tierType {
			p.tier = tier
			p.hasTier = true
			return nil
		}
	}
	return errors.NewValidationError("tier", tierType, "unknown ticket tier")
}

// Quantity returns the current ticket count.
func (p *Purchase) Quantity() int {
	return p.quantity
}

// SetQuantity sets the ticket count, clamped to the allowed range.
func (p *Purchase) SetQuantity(n int) {
	if n < MinQuantity {
		n = MinQuantity
	}
	if n > MaxQuantity {
		n = MaxQuantity
	}
	p.quantity = n
}

// Increment raises the ticket count by one, saturating at the maximum.
func (p *Purchase) Increment() {
	p.SetQuantity(p.quantity + 1)
}

// Decrement lowers the ticket count by one, saturating at the minimum.
func (p *Purchase) Decrement() {
	p.SetQuantity(p.quantity - 1)
}

// Quote returns the itemized cost of the order as currently configured. An
// unconfirmable order quotes zero.
func (p *Purchase) Quote() Quote {
	if !p.hasTier {
		return Quote{}
	}
	return NewQuote(ParsePrice(p.tier.Price), p.quantity)
}

// Intent is a confirmed order, ready to hand to the backend.
type Intent struct {
	Reference string  `json:"reference" yaml:"reference"`
	EventID   int64   `json:"event_id"  yaml:"event_id"`
	TierType  string  `json:"tier_type" yaml:"tier_type"`
	Quantity  int     `json:"quantity"  yaml:"quantity"`
	Quote     Quote   `json:"quote"     yaml:"quote"`
}

// Confirm freezes the order into an intent with a fresh reference.
func (p *Purchase) Confirm() (Intent, error) {
	if !p.hasTier {
		return Intent{}, errors.ErrNoTierSelected
	}
	return Intent{
		Reference: uuid.NewString(),
		EventID:   p.event.ID,
		TierType:  p.tier.Type,
		Quantity:  p.quantity,
		Quote:     p.Quote(),
	}, nil
}
