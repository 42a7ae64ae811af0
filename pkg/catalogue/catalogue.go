package catalogue

import (
	"context"
	"strconv"
	"sync"

	"github.com/eventtix/eventtix/pkg/errors"
)

// DefaultFeaturedEventID is the sentinel identifier of the event promoted to
// the hero position when no other sentinel is configured.
const DefaultFeaturedEventID int64 = 1

// Source fetches the full event list from the external catalogue
// collaborator. Implementations live in internal/backend.
type Source interface {
	ListEvents(ctx context.Context) ([]Event, error)
}

// Store holds the event catalogue and its loading/error state. All reads
// return copies; the store is safe for use from UI callbacks and tests alike.
type Store struct {
	mu         sync.RWMutex
	source     Source
	featuredID int64

	events  []Event
	loaded  bool
	loading bool
	err     error
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithFeaturedEventID overrides the featured-event sentinel identifier.
func WithFeaturedEventID(id int64) StoreOption {
	return func(s *Store) {
		if id > 0 {
			s.featuredID = id
		}
	}
}

// NewStore creates a catalogue store backed by the given source. The store
// starts empty; call Refresh to perform the one-shot fetch.
func NewStore(source Source, opts ...StoreOption) *Store {
	s := &Store{
		source:     source,
		featuredID: DefaultFeaturedEventID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh fetches the full event list from the source, replacing the current
// catalogue. A fetch failure leaves the previous catalogue in place and is
// retained as the store's error state until the next successful refresh;
// there is no automatic retry.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	events, err := s.source.ListEvents(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = errors.WrapResource("fetch", "catalogue", "", err)
		return s.err
	}
	s.events = events
	s.loaded = true
	return nil
}

// Events returns the catalogue in source order.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Featured returns the event whose identifier equals the featured sentinel,
// or false if no such event exists in the catalogue.
func (s *Store) Featured() (Event, bool) {
	return s.Find(s.featuredID)
}

// Find returns the event with the given identifier.
func (s *Store) Find(id int64) (Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, event := range s.events {
		if event.ID == id {
			return event, true
		}
	}
	return Event{}, false
}

// Get returns the event with the given identifier or a NotFoundError.
func (s *Store) Get(id int64) (Event, error) {
	event, ok := s.Find(id)
	if !ok {
		return Event{}, errors.NewNotFoundError("event", strconv.FormatInt(id, 10))
	}
	return event, nil
}

// Len returns the number of events in the catalogue.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// Loaded reports whether a fetch has completed successfully.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the persistent error state from the last refresh, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
