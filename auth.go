package eventtix

import (
	"context"
	"fmt"

	"github.com/eventtix/eventtix/internal/storage"
	"github.com/eventtix/eventtix/pkg/errors"
	"github.com/eventtix/eventtix/pkg/gate"
	"github.com/eventtix/eventtix/pkg/logging"
	"github.com/eventtix/eventtix/pkg/session"
)

// SignIn authenticates with the backend and activates the session, which
// replays any parked action.
func (c *client) SignIn(ctx context.Context, email, password string) error {
	sess, err := c.backend.SignIn(ctx, email, password)
	if err != nil {
		c.notifyError(fmt.Sprintf("Sign in failed: %v", err))
		return err
	}

	c.sessions.Set(sess)
	c.notify(fmt.Sprintf("Signed in as %s", sess.User.Email))
	return nil
}

// SignUp registers a new account. When the backend activates the session
// immediately it behaves like a sign-in, including action replay.
func (c *client) SignUp(ctx context.Context, email, password, displayName string) error {
	sess, err := c.backend.SignUp(ctx, email, password, displayName)
	if err != nil {
		c.notifyError(fmt.Sprintf("Sign up failed: %v", err))
		return err
	}

	if sess.Valid() {
		c.sessions.Set(sess)
		c.notify(fmt.Sprintf("Signed in as %s", sess.User.Email))
		return nil
	}

	c.notify("Account created. Check your email to confirm, then sign in.")
	return nil
}

// SignOut revokes the session with the backend. A backend failure leaves
// the session in place so the user can retry.
func (c *client) SignOut(ctx context.Context) error {
	if !c.sessions.Authenticated() {
		c.sessions.Set(nil)
		return nil
	}

	if err := c.backend.SignOut(ctx); err != nil {
		text := noticeSignOutFallback
		if msg := err.Error(); msg != "" {
			text = msg
		}
		c.notifyError(text)
		return err
	}

	c.sessions.Set(nil)
	c.notify(noticeSignedOut)
	return nil
}

// Session returns the active session, or nil when signed out.
func (c *client) Session() *session.Session {
	return c.sessions.Current()
}

// CurrentUser fetches the account behind the active session, verifying the
// cached token is still accepted by the backend.
func (c *client) CurrentUser(ctx context.Context) (session.User, error) {
	if !c.sessions.Authenticated() {
		return session.User{}, errors.ErrAuthRequired
	}
	return c.backend.CurrentUser(ctx)
}

// PendingAction returns the action parked behind the sign-in gate.
func (c *client) PendingAction() (gate.Action, bool) {
	return c.gate.Pending()
}

// DismissPendingAction discards the parked action without replay.
func (c *client) DismissPendingAction() {
	c.gate.Dismiss()
}

// restoreSession loads the cached session from the state directory. An
// expired or unreadable cache is discarded.
func (c *client) restoreSession() {
	if c.config.stateDir == nil {
		return
	}

	var sess session.Session
	if err := c.config.stateDir.ReadJSON(storage.SessionFile, &sess); err != nil {
		return
	}
	if !sess.Valid() {
		if err := c.config.stateDir.Remove(storage.SessionFile); err != nil {
			logging.Warn().Err(err).Msg("Failed to discard expired session cache")
		}
		return
	}

	// Observers subscribe after restore, so this cannot trigger a replay.
	c.sessions.Set(&sess)
}

// persistSession mirrors session changes into the state directory.
func (c *client) persistSession(s *session.Session) {
	if c.config.stateDir == nil {
		return
	}
	if s == nil {
		if err := c.config.stateDir.Remove(storage.SessionFile); err != nil {
			logging.Warn().Err(err).Msg("Failed to remove session cache")
		}
		return
	}
	if err := c.config.stateDir.WriteJSON(storage.SessionFile, s); err != nil {
		logging.Warn().Err(err).Msg("Failed to persist session cache")
	}
}
