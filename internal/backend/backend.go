// Package backend implements the hosted marketplace API client: the event
// catalogue, the password-grant auth endpoints and the tickets table.
//
// The API follows the PostgREST convention: table reads live under
// /rest/v1/<table> with filter operators in the query string, and auth
// endpoints live under /auth/v1. Every request carries the project API key;
// authenticated requests additionally carry the session bearer token.
package backend

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/eventtix/eventtix/internal/transport"
	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/checkout"
	"github.com/eventtix/eventtix/pkg/errors"
	"github.com/eventtix/eventtix/pkg/logging"
	"github.com/eventtix/eventtix/pkg/session"
	"github.com/eventtix/eventtix/pkg/tickets"
)

const apiKeyHeader = "apikey"

// Client talks to the hosted marketplace API.
type Client struct {
	baseURL string
	http    *transport.Client
}

// Option configures a Client.
type Option func(*clientConfig)

type clientConfig struct {
	transportOpts []transport.Option
}

// WithTokenFunc supplies the session token source; authenticated endpoints
// send it as a bearer credential.
func WithTokenFunc(token transport.TokenFunc) Option {
	return func(c *clientConfig) {
		c.transportOpts = append(c.transportOpts, transport.WithTokenFunc(token))
	}
}

// WithTransportOptions forwards options to the underlying transport client.
func WithTransportOptions(opts ...transport.Option) Option {
	return func(c *clientConfig) {
		c.transportOpts = append(c.transportOpts, opts...)
	}
}

// New creates a backend client for the given project URL and API key.
func New(baseURL, apiKey string, opts ...Option) *Client {
	var cfg clientConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    transport.New(&transport.HeaderAuth{Header: apiKeyHeader}, apiKey, cfg.transportOpts...),
	}
}

// ListEvents fetches the full event catalogue.
func (c *Client) ListEvents(ctx context.Context) ([]catalogue.Event, error) {
	logging.Debug().Str("endpoint", "/rest/v1/events").Msg("Fetching event catalogue")

	resp, err := c.http.Get(ctx, c.baseURL+"/rest/v1/events?select=*&order=id.asc")
	if err != nil {
		return nil, errors.WrapResource("list", "events", "", err)
	}

	var events []catalogue.Event
	if err := transport.DecodeResponse("catalogue", resp, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListTickets fetches the tickets owned by the given user.
func (c *Client) ListTickets(ctx context.Context, userID string) ([]tickets.Ticket, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/tickets?select=*&user_id=eq.%s&order=date.asc",
		c.baseURL, url.QueryEscape(userID))

	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return nil, errors.WrapResource("list", "tickets", userID, err)
	}

	var owned []tickets.Ticket
	if err := transport.DecodeResponse("tickets", resp, &owned); err != nil {
		return nil, err
	}
	return owned, nil
}

// RecordPurchase inserts a ticket row for a confirmed purchase intent and
// returns the recorded ticket.
func (c *Client) RecordPurchase(ctx context.Context, user session.User, event catalogue.Event, intent checkout.Intent) (tickets.Ticket, error) {
	row := tickets.Ticket{
		UserID:     user.ID,
		EventID:    event.ID,
		EventName:  event.Artist,
		Venue:      event.Venue,
		Date:       event.Date,
		TicketType: intent.TierType,
		Quantity:   intent.Quantity,
		Total:      intent.Quote.Total,
		Status:     tickets.StatusActive,
		Reference:  intent.Reference,
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/rest/v1/tickets", row)
	if err != nil {
		return tickets.Ticket{}, errors.WrapResource("create", "ticket", intent.Reference, err)
	}

	var created []tickets.Ticket
	if err := transport.DecodeResponse("tickets", resp, &created); err != nil {
		return tickets.Ticket{}, err
	}
	if len(created) == 0 {
		// Insert without return=representation; echo the submitted row.
		return row, nil
	}
	return created[0], nil
}
