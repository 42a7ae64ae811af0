// Package favorites keeps the user's favorited events, persisted locally so
// the set survives restarts.
package favorites

import (
	"sync"

	"github.com/eventtix/eventtix/pkg/errors"
	"github.com/eventtix/eventtix/pkg/logging"
)

// Persister loads and saves the favorite set. The file-backed implementation
// lives in store.go; tests substitute an in-memory one.
type Persister interface {
	Load() ([]int64, error)
	Save(ids []int64) error
}

// Ledger is the in-memory favorite set. Mutations persist the whole set;
// persistence failures are logged and never block the toggle.
type Ledger struct {
	mu    sync.RWMutex
	ids   []int64
	index map[int64]struct{}
	store Persister
}

// NewLedger loads the persisted set through the given persister. A missing
// or malformed state file yields an empty ledger rather than an error.
func NewLedger(store Persister) *Ledger {
	l := &Ledger{
		index: make(map[int64]struct{}),
		store: store,
	}
	if store == nil {
		return l
	}
	ids, err := store.Load()
	if err != nil {
		if !errors.IsNotFound(err) {
			logging.Warn().Err(err).Msg("Ignoring unreadable favorites state")
		}
		return l
	}
	for _, id := range ids {
		if _, dup := l.index[id]; dup {
			continue
		}
		l.ids = append(l.ids, id)
		l.index[id] = struct{}{}
	}
	return l
}

// Toggle adds the event when absent and removes it when present, returning
// true when the event is now a favorite.
func (l *Ledger) Toggle(eventID int64) bool {
	l.mu.Lock()
	if _, ok := l.index[eventID]; ok {
		delete(l.index, eventID)
		for i, id := range l.ids {
			if id == eventID {
				l.ids = append(l.ids[:i], l.ids[i+1:]...)
				break
			}
		}
		l.persistLocked()
		l.mu.Unlock()
		return false
	}
	l.ids = append(l.ids, eventID)
	l.index[eventID] = struct{}{}
	l.persistLocked()
	l.mu.Unlock()
	return true
}

// Has reports whether the event is a favorite.
func (l *Ledger) Has(eventID int64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.index[eventID]
	return ok
}

// List returns the favorite identifiers in the order they were added.
func (l *Ledger) List() []int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]int64, len(l.ids))
	copy(out, l.ids)
	return out
}

// Len returns the number of favorites.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ids)
}

func (l *Ledger) persistLocked() {
	if l.store == nil {
		return
	}
	ids := make([]int64, len(l.ids))
	copy(ids, l.ids)
	if err := l.store.Save(ids); err != nil {
		logging.Warn().Err(err).Msg("Failed to persist favorites")
	}
}
