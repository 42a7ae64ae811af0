// Package session tracks the signed-in user and notifies observers when the
// session changes.
package session

import (
	"strings"
	"sync"
	"time"
)

// User identifies an authenticated account.
type User struct {
	ID          string `json:"id"                     yaml:"id"`
	Email       string `json:"email"                  yaml:"email"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}

// Name returns the display name, falling back to the local part of the
// email address.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if i := strings.Index(u.Email, "@"); i > 0 {
		return u.Email[:i]
	}
	if u.Email != "" {
		return u.Email
	}
	return "User"
}

// Session is an authenticated backend session.
type Session struct {
	AccessToken  string    `json:"access_token"  yaml:"access_token"`
	RefreshToken string    `json:"refresh_token" yaml:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"    yaml:"expires_at"`
	User         User      `json:"user"          yaml:"user"`
}

// Valid reports whether the session has a token that has not expired.
func (s *Session) Valid() bool {
	if s == nil || s.AccessToken == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || time.Now().Before(s.ExpiresAt)
}

// Observer is called with the new session, or nil on sign-out.
type Observer func(*Session)

// Store holds the current session and a set of observers. Observers fire
// synchronously, in subscription order, on every Set.
type Store struct {
	mu        sync.RWMutex
	current   *Session
	observers map[int]Observer
	nextID    int
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{observers: make(map[int]Observer)}
}

// Current returns the active session, or nil when signed out.
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Authenticated reports whether a valid session is active.
func (s *Store) Authenticated() bool {
	return s.Current().Valid()
}

// Set replaces the current session and notifies observers. Pass nil to
// record a sign-out.
func (s *Store) Set(session *Session) {
	s.mu.Lock()
	s.current = session
	observers := make([]Observer, 0, len(s.observers))
	for id := 0; id < s.nextID; id++ {
		if obs, ok := s.observers[id]; ok {
			observers = append(observers, obs)
		}
	}
	s.mu.Unlock()

	for _, obs := range observers {
		obs(session)
	}
}

// Subscribe registers an observer and returns a function that removes it.
func (s *Store) Subscribe(obs Observer) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = obs
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}
