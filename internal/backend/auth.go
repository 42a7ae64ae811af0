package backend

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/eventtix/eventtix/internal/transport"
	"github.com/eventtix/eventtix/pkg/errors"
	"github.com/eventtix/eventtix/pkg/logging"
	"github.com/eventtix/eventtix/pkg/session"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signupCredentials carries the optional display name to the identity API
// as user metadata.
type signupCredentials struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     signupMetadata `json:"data"`
}

type signupMetadata struct {
	DisplayName string `json:"display_name,omitempty"`
}

// userPayload is the identity API's user record; the display name rides in
// the metadata object.
type userPayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Metadata struct {
		DisplayName string `json:"display_name"`
	} `json:"user_metadata"`
}

func (u userPayload) user() session.User {
	return session.User{ID: u.ID, Email: u.Email, DisplayName: u.Metadata.DisplayName}
}

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	User         userPayload `json:"user"`
}

func (r tokenResponse) session() *session.Session {
	s := &session.Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		User:         r.User.user(),
	}
	if r.ExpiresIn > 0 {
		s.ExpiresAt = time.Now().Add(time.Duration(r.ExpiresIn) * time.Second)
	}
	return s
}

// SignIn exchanges an email and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	if email == "" || password == "" {
		return nil, errors.NewValidationError("credentials", "", "email and password are required")
	}

	logging.Debug().Str("email", email).Msg("Signing in")

	resp, err := c.http.Post(ctx, c.baseURL+"/auth/v1/token?grant_type=password",
		credentials{Email: email, Password: password})
	if err != nil {
		return nil, errors.NewAuthenticationError("sign_in", "request failed", err)
	}

	var token tokenResponse
	if err := transport.DecodeResponse("auth", resp, &token); err != nil {
		return nil, errors.NewAuthenticationError("sign_in", "invalid credentials or unreachable backend", err)
	}
	return token.session(), nil
}

// SignUp registers a new account. When the backend confirms the account
// immediately the returned session is active; otherwise it carries only the
// user and the caller must sign in after confirmation.
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) (*session.Session, error) {
	if email == "" || password == "" {
		return nil, errors.NewValidationError("credentials", "", "email and password are required")
	}
	if displayName != "" && utf8.RuneCountInString(displayName) < 2 {
		return nil, errors.NewValidationError("display_name", displayName, "name must be at least 2 characters")
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/auth/v1/signup",
		signupCredentials{Email: email, Password: password, Data: signupMetadata{DisplayName: displayName}})
	if err != nil {
		return nil, errors.NewAuthenticationError("sign_up", "request failed", err)
	}

	var token tokenResponse
	if err := transport.DecodeResponse("auth", resp, &token); err != nil {
		return nil, errors.NewAuthenticationError("sign_up", "registration rejected", err)
	}
	return token.session(), nil
}

// CurrentUser fetches the account behind the active session token.
func (c *Client) CurrentUser(ctx context.Context) (session.User, error) {
	resp, err := c.http.Get(ctx, c.baseURL+"/auth/v1/user")
	if err != nil {
		return session.User{}, errors.NewAuthenticationError("current_user", "request failed", err)
	}

	var user userPayload
	if err := transport.DecodeResponse("auth", resp, &user); err != nil {
		return session.User{}, err
	}
	return user.user(), nil
}

// SignOut revokes the active session token.
func (c *Client) SignOut(ctx context.Context) error {
	resp, err := c.http.Post(ctx, c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return errors.NewAuthenticationError("sign_out", "request failed", err)
	}
	return transport.DecodeResponse("auth", resp, nil)
}
