package eventtix

import (
	"github.com/eventtix/eventtix/internal/storage"
	"github.com/eventtix/eventtix/pkg/errors"
)

// Option is a function that configures a Client instance.
type Option func(*config) error

type config struct {
	backend    Backend
	stateDir   *storage.Dir
	notifier   Notifier
	featuredID int64
}

var defaultConfig = &config{
	notifier: nopNotifier{},
}

// WithBackend configures the hosted API client. Required.
func WithBackend(b Backend) Option {
	return func(c *config) error {
		if b == nil {
			return errors.NewValidationError("backend", nil, "backend must not be nil")
		}
		c.backend = b
		return nil
	}
}

// WithStateDir configures the directory that persists favorites and the
// cached session between runs. Without it, state lives only in memory.
func WithStateDir(dir *storage.Dir) Option {
	return func(c *config) error {
		c.stateDir = dir
		return nil
	}
}

// WithNotifier configures where user-facing notices go.
func WithNotifier(n Notifier) Option {
	return func(c *config) error {
		if n == nil {
			n = nopNotifier{}
		}
		c.notifier = n
		return nil
	}
}

// WithFeaturedEventID overrides the featured-event sentinel identifier.
func WithFeaturedEventID(id int64) Option {
	return func(c *config) error {
		if id <= 0 {
			return errors.NewValidationError("featured_event_id", id, "must be positive")
		}
		c.featuredID = id
		return nil
	}
}
