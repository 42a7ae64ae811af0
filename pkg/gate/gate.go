// Package gate serializes actions that require an authenticated session.
// When an unauthenticated user attempts such an action, the machine parks it
// and waits for a sign-in; a successful sign-in replays the parked action
// exactly once.
package gate

import (
	"sync"
)

// Kind identifies the class of a gated action.
type Kind string

// Gated action kinds.
const (
	KindPurchase Kind = "purchase"
	KindFavorite Kind = "favorite"
)

// Action is a deferred user intent awaiting authentication.
type Action struct {
	Kind    Kind
	EventID int64
}

// State is the machine's position.
type State string

// Machine states.
const (
	StateIdle         State = "idle"
	StateAwaitingAuth State = "awaiting_auth"
)

// Machine holds at most one pending action. Requesting while a pending
// action exists replaces it; the newest intent wins.
type Machine struct {
	mu      sync.Mutex
	state   State
	pending Action
}

// NewMachine returns an idle machine.
func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Pending returns the parked action, if any.
func (m *Machine) Pending() (Action, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAwaitingAuth {
		return Action{}, false
	}
	return m.pending, true
}

// Request parks an action and moves the machine to awaiting-auth. An action
// already parked is replaced.
func (m *Machine) Request(action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = action
	m.state = StateAwaitingAuth
}

// Complete consumes the parked action, returning it for replay. The machine
// returns to idle whether or not an action was parked, so a second Complete
// yields nothing.
func (m *Machine) Complete() (Action, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAwaitingAuth {
		return Action{}, false
	}
	action := m.pending
	m.pending = Action{}
	m.state = StateIdle
	return action, true
}

// Dismiss discards the parked action without replaying it. Used when the
// user abandons the sign-in prompt.
func (m *Machine) Dismiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = Action{}
	m.state = StateIdle
}
