// internal/store/memory.go
//
// In-memory session store used by the HTTP boundary.
//
// Characteristics:
//   - Stores game.Session values keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts; sessions are never persisted.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordscramble/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("store: session not found")

// Store defines the interface for holding live sessions.
type Store interface {
	// Save stores or replaces a session.
	Save(ctx context.Context, s game.Session) error

	// Get retrieves a session by ID or returns ErrNotFound.
	Get(ctx context.Context, id string) (game.Session, error)

	// Delete forgets a session. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Update applies fn to the stored session and saves the session it
	// returns. Calls for the same store are serialized, so fn always sees
	// the latest state. If fn returns an error nothing is saved and the
	// error is returned; unknown IDs return ErrNotFound.
	Update(ctx context.Context, id string, fn func(game.Session) (game.Session, error)) error

	// Len reports the number of live sessions.
	Len() int
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]game.Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]game.Session)}
}

func (m *memory) Save(ctx context.Context, s game.Session) error {
	if s.ID == "" {
		return errors.New("store: session has no id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return game.Session{}, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(game.Session) (game.Session, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	next.ID = id
	m.sessions[id] = next
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
