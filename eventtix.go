// Package eventtix is the client-side core of the EventTix marketplace: the
// event catalogue with filter and search, locally persisted favorites, the
// ticket purchase flow, and session handling with authentication gating.
//
// Actions that require a signed-in user (buying tickets, favoriting) are
// parked while signed out and replayed exactly once after a successful
// sign-in.
package eventtix

import (
	"context"
	"sync"

	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/checkout"
	"github.com/eventtix/eventtix/pkg/errors"
	"github.com/eventtix/eventtix/pkg/favorites"
	"github.com/eventtix/eventtix/pkg/gate"
	"github.com/eventtix/eventtix/pkg/logging"
	"github.com/eventtix/eventtix/pkg/session"
	"github.com/eventtix/eventtix/pkg/tickets"
)

// Backend is the hosted marketplace API surface the client depends on.
// internal/backend provides the production implementation.
type Backend interface {
	ListEvents(ctx context.Context) ([]catalogue.Event, error)
	SignIn(ctx context.Context, email, password string) (*session.Session, error)
	SignUp(ctx context.Context, email, password, displayName string) (*session.Session, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (session.User, error)
	ListTickets(ctx context.Context, userID string) ([]tickets.Ticket, error)
	RecordPurchase(ctx context.Context, user session.User, event catalogue.Event, intent checkout.Intent) (tickets.Ticket, error)
}

// Client is the marketplace client facade.
type Client interface {
	// Refresh performs the one-shot catalogue fetch.
	Refresh(ctx context.Context) error

	// Events returns the catalogue filtered by genre and search query.
	Events(filter catalogue.Filter) ([]catalogue.Event, error)

	// Featured returns the featured event, if present in the catalogue.
	Featured() (catalogue.Event, bool)

	// Event returns a single event by identifier.
	Event(id int64) (catalogue.Event, error)

	// ToggleFavorite flips an event's favorite status. Signed out, it
	// parks the action for replay after sign-in.
	ToggleFavorite(ctx context.Context, eventID int64) error

	// Favorites returns the favorited events in the order they were added.
	Favorites() []catalogue.Event

	// Buy purchases tickets for an event. Signed out, it parks the action
	// for replay after sign-in. An empty tierType selects the first tier;
	// quantity is clamped to the allowed range.
	Buy(ctx context.Context, eventID int64, tierType string, quantity int) (tickets.Ticket, error)

	// Tickets returns the signed-in user's tickets.
	Tickets(ctx context.Context) ([]tickets.Ticket, error)

	// SignIn authenticates and replays any parked action.
	SignIn(ctx context.Context, email, password string) error

	// SignUp registers an account with an optional display name; an
	// immediately active session also replays any parked action.
	SignUp(ctx context.Context, email, password, displayName string) error

	// SignOut ends the session. A backend failure leaves the session in
	// place.
	SignOut(ctx context.Context) error

	// Session returns the active session, or nil when signed out.
	Session() *session.Session

	// CurrentUser verifies the active session against the backend and
	// returns the account it belongs to.
	CurrentUser(ctx context.Context) (session.User, error)

	// PendingAction returns the action parked behind the sign-in gate.
	PendingAction() (gate.Action, bool)

	// DismissPendingAction discards the parked action without replay.
	DismissPendingAction()
}

// client is the internal implementation of the Client interface.
type client struct {
	mu sync.Mutex

	config    *config
	backend   Backend
	catalogue *catalogue.Store
	sessions  *session.Store
	favorites *favorites.Ledger
	gate      *gate.Machine
	notifier  Notifier

	// lastResults holds the most recent successful search results so a
	// rejected short query leaves the previous view standing.
	lastResults []catalogue.Event
}

// New creates a Client with the given options. A backend is required.
func New(opts ...Option) (Client, error) {
	cfg := *defaultConfig
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, errors.WrapValidation("options", err)
		}
	}
	if cfg.backend == nil {
		return nil, errors.NewConfigError("client", "a backend is required", nil)
	}

	var storeOpts []catalogue.StoreOption
	if cfg.featuredID > 0 {
		storeOpts = append(storeOpts, catalogue.WithFeaturedEventID(cfg.featuredID))
	}

	var persister favorites.Persister
	if cfg.stateDir != nil {
		persister = favorites.NewFileStore(cfg.stateDir)
	}

	c := &client{
		config:    &cfg,
		backend:   cfg.backend,
		catalogue: catalogue.NewStore(cfg.backend, storeOpts...),
		sessions:  session.NewStore(),
		favorites: favorites.NewLedger(persister),
		gate:      gate.NewMachine(),
		notifier:  cfg.notifier,
	}

	c.restoreSession()
	c.sessions.Subscribe(c.onSessionChange)

	return c, nil
}

// onSessionChange replays the parked action when a session becomes active.
func (c *client) onSessionChange(s *session.Session) {
	c.persistSession(s)
	if !s.Valid() {
		return
	}

	action, ok := c.gate.Complete()
	if !ok {
		return
	}

	logging.Debug().
		Str("kind", string(action.Kind)).
		Int64("event_id", action.EventID).
		Msg("Replaying parked action after sign-in")

	ctx := context.Background()
	switch action.Kind {
	case gate.KindPurchase:
		if _, err := c.Buy(ctx, action.EventID, "", 1); err != nil {
			c.notifier.Notify(Notice{Text: err.Error(), Error: true})
		}
	case gate.KindFavorite:
		if err := c.ToggleFavorite(ctx, action.EventID); err != nil {
			c.notifier.Notify(Notice{Text: err.Error(), Error: true})
		}
	}
}

func (c *client) notify(text string) {
	c.notifier.Notify(Notice{Text: text})
}

func (c *client) notifyError(text string) {
	c.notifier.Notify(Notice{Text: text, Error: true})
}
