package cmd

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mj1618/rotary-nav/internal/nav"
	"github.com/mj1618/rotary-nav/internal/platform/snapshot"
)

// navSession is one loaded snapshot plus its navigator. The navigator keeps
// the session's focus state between tool calls.
type navSession struct {
	provider *snapshot.Provider
	nv       *nav.Navigator
	lastUsed time.Time
}

// sessionStore holds MCP navigation sessions with TTL-based eviction.
// Sessions expire after ttl of inactivity; a ttl of 0 disables expiry.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*navSession
	ttl      time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*navSession),
		ttl:      ttl,
	}
}

// put registers a session and returns its generated ID.
func (s *sessionStore) put(provider *snapshot.Provider, nv *nav.Navigator) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired()
	s.sessions[id] = &navSession{provider: provider, nv: nv, lastUsed: time.Now()}
	return id
}

// get returns the session for id, refreshing its activity timestamp.
func (s *sessionStore) get(id string) (*navSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("unknown or expired session %q; call load_snapshot first", id)
	}
	sess.lastUsed = time.Now()
	return sess, nil
}

// release drops a session explicitly.
func (s *sessionStore) release(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// evictExpired removes idle sessions. Caller must hold the mutex.
func (s *sessionStore) evictExpired() {
	if s.ttl == 0 {
		return
	}
	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastUsed.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
