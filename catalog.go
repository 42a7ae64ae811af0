package eventtix

import (
	"context"
	"strings"

	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/errors"
)

// Refresh performs the one-shot catalogue fetch.
func (c *client) Refresh(ctx context.Context) error {
	return c.catalogue.Refresh(ctx)
}

// Events applies the filter to the catalogue. A rejected short query leaves
// the previous results standing: the notice fires and the last successful
// result set is returned alongside the error.
func (c *client) Events(filter catalogue.Filter) ([]catalogue.Event, error) {
	results, err := filter.Apply(c.catalogue.Events())
	if err != nil {
		if errors.Is(err, errors.ErrQueryTooShort) {
			c.notifyError(catalogue.ShortQueryNotice)
			c.mu.Lock()
			previous := c.lastResults
			c.mu.Unlock()
			return previous, err
		}
		return nil, err
	}

	if query := strings.TrimSpace(filter.Query); query != "" {
		c.notify(catalogue.ResultNotice(len(results), query))
	}

	c.mu.Lock()
	c.lastResults = results
	c.mu.Unlock()
	return results, nil
}

// Featured returns the featured event, if present in the catalogue.
func (c *client) Featured() (catalogue.Event, bool) {
	return c.catalogue.Featured()
}

// Event returns a single event by identifier.
func (c *client) Event(id int64) (catalogue.Event, error) {
	event, err := c.catalogue.Get(id)
	if err != nil {
		c.notifyError(noticeEventNotFound)
		return catalogue.Event{}, err
	}
	return event, nil
}
