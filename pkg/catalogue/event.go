// Package catalogue provides the event catalogue for the eventtix client:
// the read-only event data model, an in-memory store sourced from the hosted
// data API, the featured-event rule, and the filter/search pipeline.
//
// Events are created and updated externally; this package never mutates them.
// The store preserves the catalogue's source order, which is significant for
// presentation.
package catalogue

// Event is a single ticketed event in the marketplace catalogue.
type Event struct {
	ID          int64        `json:"id" yaml:"id"`
	Artist      string       `json:"artist" yaml:"artist"`
	Venue       string       `json:"venue" yaml:"venue"`
	Date        string       `json:"date" yaml:"date"`
	Time        string       `json:"time" yaml:"time"`
	Genre       string       `json:"genre" yaml:"genre"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string       `json:"image,omitempty" yaml:"image,omitempty"`
	Tickets     []TicketTier `json:"tickets" yaml:"tickets"`
}

// TicketTier is a purchasable class of ticket for an event. Tiers are
// distinguished by list position, not by a type field: index 0 is the
// general tier, 1 the enhanced tier, 2 the premium tier.
type TicketTier struct {
	Type      string `json:"type" yaml:"type"`
	Price     string `json:"price" yaml:"price"`
	Remaining int    `json:"remaining" yaml:"remaining"`
}

// Tier positions with presentation meaning.
const (
	TierGeneral = iota
	TierEnhanced
	TierPremium
)

// TierExperience returns the conventional experience label for a tier
// position, or empty for positions beyond the three conventional tiers.
func TierExperience(position int) string {
	switch position {
	case TierGeneral:
		return "Standard Experience"
	case TierEnhanced:
		return "Enhanced Experience"
	case TierPremium:
		return "Premium Experience"
	default:
		return ""
	}
}
