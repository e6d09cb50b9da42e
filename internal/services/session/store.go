package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/shuv1824/islandmap/internal/services/viewer"
	"github.com/shuv1824/islandmap/internal/state"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session not found")

// Store keeps one viewer state per session for the session TTL.
type Store struct {
	viewer *viewer.ViewerService
	states *gocache.Cache
	mu     sync.Mutex
}

// NewStore creates a session store backed by an expiring in-process cache.
func NewStore(v *viewer.ViewerService, ttl time.Duration) *Store {
	return &Store{
		viewer: v,
		states: gocache.New(ttl, ttl),
	}
}

// Create starts a new session and returns its ID and first view.
func (s *Store) Create() (string, viewer.View, error) {
	id := uuid.NewString()

	view, st, err := s.viewer.Render(state.New())
	if err != nil {
		return "", viewer.View{}, err
	}
	s.states.SetDefault(id, st)
	return id, view, nil
}

// Get renders the current view of a session.
func (s *Store) Get(id string) (viewer.View, error) {
	st, err := s.load(id)
	if err != nil {
		return viewer.View{}, err
	}
	view, _, err := s.viewer.Render(st)
	return view, err
}

// Apply runs an event against a session. The state is only kept when the
// resulting view renders, so an invalid selection leaves the session as it was.
func (s *Store) Apply(id string, e state.Event) (viewer.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(id)
	if err != nil {
		return viewer.View{}, err
	}

	view, next, err := s.viewer.Render(state.Apply(st, e))
	if err != nil {
		return viewer.View{}, fmt.Errorf("apply %s: %w", e.Name(), err)
	}
	s.states.SetDefault(id, next)
	return view, nil
}

// Exists returns ErrNotFound when id names no live session.
func (s *Store) Exists(id string) error {
	_, err := s.load(id)
	return err
}

// Delete ends a session. Deleting an unknown or expired session returns
// ErrNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.load(id); err != nil {
		return err
	}
	s.states.Delete(id)
	return nil
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	return s.states.ItemCount()
}

func (s *Store) load(id string) (state.State, error) {
	v, ok := s.states.Get(id)
	if !ok {
		return state.State{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return v.(state.State), nil
}
