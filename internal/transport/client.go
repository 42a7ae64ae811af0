// Package transport provides the authenticated HTTP client shared by the
// backend collaborators.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/eventtix/eventtix/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = 30 * time.Second

// TokenFunc returns the credential for the session-scoped authenticator, or
// empty when no session is active.
type TokenFunc func() string

// Client provides HTTP client functionality with layered authentication: a
// static API key applied to every request plus an optional per-session
// bearer token.
type Client struct {
	http    *http.Client
	keyAuth Authenticator
	apiKey  string
	token   TokenFunc
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTokenFunc sets the per-session token source. When the function
// returns a non-empty token it is applied as a bearer credential.
func WithTokenFunc(token TokenFunc) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a transport client that applies the API key through the given
// authenticator on every request.
func New(keyAuth Authenticator, apiKey string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: DefaultHTTPTimeout},
		keyAuth: keyAuth,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs an HTTP request with authentication and common headers
// applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.keyAuth != nil && c.apiKey != "" {
		c.keyAuth.Apply(req, c.apiKey)
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			(&BearerAuth{}).Apply(req, tok)
		}
	}

	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.Do(req)
}

// Post performs a POST request with a JSON body. A nil body sends an empty
// request.
func (c *Client) Post(ctx context.Context, url string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WrapParse("json", "request body", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "POST "+url, err)
	}
	return c.Do(req)
}
