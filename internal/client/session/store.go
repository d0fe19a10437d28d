// Package session holds the client's cached authentication state.
//
// The Store is an explicit object injected into the gateway rather than
// ambient global state: exactly one live session per running client,
// replaced wholesale on sign-in/sign-up and cleared on sign-out. Only the
// auth flows write it; gateway calls are read-only consumers.
package session

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/healthtrack/internal/client/models"
)

// Store caches at most one session. Safe for concurrent use: a single
// writer (sign-in/sign-up/sign-out) and many readers (gateway calls).
type Store struct {
	mu  sync.RWMutex
	cur *models.Session
	now func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Set replaces the cached session wholesale.
func (s *Store) Set(sess *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = sess
}

// Clear drops the cached session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = nil
}

// Current returns a copy of the cached session, or nil when no session
// exists or the cached one has expired. It never performs network I/O.
func (s *Store) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.cur.Valid(s.now()) {
		return nil
	}
	cp := *s.cur
	return &cp
}

// AuthHeader returns the bearer header for the live session, or an empty
// map when none exists. It never fabricates a header from an expired
// token.
func (s *Store) AuthHeader() map[string]string {
	cur := s.Current()
	if cur == nil {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + cur.AccessToken}
}
