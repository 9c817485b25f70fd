package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront-demo/internal/domains/launcher/domain"
	"storefront-demo/internal/domains/launcher/ports"
)

var _ ports.StateStore = (*StateStore)(nil)

// StateStore keeps per-session launcher state in memory for the session's
// lifetime.
type StateStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

type entry struct {
	state   *domain.UIState
	touched time.Time
}

func NewStateStore() *StateStore {
	return &StateStore{sessions: map[string]*entry{}, now: time.Now}
}

// Load returns a clone of the session's state, creating default state for
// sessions seen for the first time.
func (s *StateStore) Load(_ context.Context, sessionID string) (*domain.UIState, error) {
	if sessionID == "" {
		return nil, errors.New("session id is empty")
	}
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return domain.NewUIState(), nil
	}
	return e.state.Clone(), nil
}

// Save stores a clone of the state and stamps the session as touched.
func (s *StateStore) Save(_ context.Context, sessionID string, state *domain.UIState) error {
	if sessionID == "" {
		return errors.New("session id is empty")
	}
	if state == nil || state.Recognizer == nil {
		return errors.New("launcher state is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = &entry{state: state.Clone(), touched: s.now()}
	return nil
}

// PurgeIdle removes launcher state untouched since the cutoff.
func (s *StateStore) PurgeIdle(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for sessionID, e := range s.sessions {
		if e.touched.Before(cutoff) {
			delete(s.sessions, sessionID)
			purged++
		}
	}
	return purged, nil
}
