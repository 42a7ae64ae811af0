package eventtix

import (
	"context"
	"fmt"

	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/gate"
)

// ToggleFavorite flips an event's favorite status. Signed out, the action
// is parked and replayed after the next successful sign-in.
func (c *client) ToggleFavorite(_ context.Context, eventID int64) error {
	event, err := c.catalogue.Get(eventID)
	if err != nil {
		c.notifyError(noticeEventNotFound)
		return err
	}

	if !c.sessions.Authenticated() {
		c.gate.Request(gate.Action{Kind: gate.KindFavorite, EventID: eventID})
		return nil
	}

	if c.favorites.Toggle(eventID) {
		c.notify(fmt.Sprintf("Added %s to favorites", event.Artist))
	} else {
		c.notify(fmt.Sprintf("Removed %s from favorites", event.Artist))
	}
	return nil
}

// Favorites returns the favorited events in the order they were added.
// Favorites whose events are no longer in the catalogue are skipped.
func (c *client) Favorites() []catalogue.Event {
	var out []catalogue.Event
	for _, id := range c.favorites.List() {
		if event, ok := c.catalogue.Find(id); ok {
			out = append(out, event)
		}
	}
	return out
}
