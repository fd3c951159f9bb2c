package cmd

import (
	"testing"
	"time"

	"github.com/mj1618/rotary-nav/internal/nav"
	"github.com/mj1618/rotary-nav/internal/platform/snapshot"
)

const sessionSnapshot = `
windows:
  - id: w
    bounds: [0, 0, 800, 600]
    layer: 0
    root:
      id: root
      bounds: [0, 0, 800, 600]
      children:
        - id: b1
          bounds: [0, 0, 100, 40]
          focusable: true
        - id: b2
          bounds: [0, 50, 100, 40]
          focusable: true
`

func testSession(t *testing.T) (*snapshot.Provider, *nav.Navigator) {
	t.Helper()
	p, err := snapshot.Parse([]byte(sessionSnapshot))
	if err != nil {
		t.Fatalf("parse snapshot: %v", err)
	}
	return p, nav.New(p, nav.HUNRules{})
}

func TestSessionStore_PutGetRelease(t *testing.T) {
	store := newSessionStore(0)
	p, nv := testSession(t)

	id := store.put(p, nv)
	if id == "" {
		t.Fatal("put returned an empty session id")
	}

	sess, err := store.get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess.nv != nv || sess.provider != p {
		t.Error("get returned a different session")
	}

	if !store.release(id) {
		t.Error("release of a live session should report true")
	}
	if store.release(id) {
		t.Error("double release should report false")
	}
	if _, err := store.get(id); err == nil {
		t.Error("get after release should fail")
	}
}

func TestSessionStore_DistinctIDs(t *testing.T) {
	store := newSessionStore(0)
	p, nv := testSession(t)

	if store.put(p, nv) == store.put(p, nv) {
		t.Error("each put must generate a fresh session id")
	}
}

func TestSessionStore_TTLEviction(t *testing.T) {
	store := newSessionStore(10 * time.Millisecond)
	p, nv := testSession(t)
	id := store.put(p, nv)

	// Activity within the TTL keeps the session alive.
	if _, err := store.get(id); err != nil {
		t.Fatalf("get within ttl: %v", err)
	}

	store.mu.Lock()
	store.sessions[id].lastUsed = time.Now().Add(-time.Minute)
	store.mu.Unlock()

	if _, err := store.get(id); err == nil {
		t.Error("idle session past the ttl should be evicted")
	}
}

func TestSessionStore_ZeroTTLNeverExpires(t *testing.T) {
	store := newSessionStore(0)
	p, nv := testSession(t)
	id := store.put(p, nv)

	store.mu.Lock()
	store.sessions[id].lastUsed = time.Now().Add(-24 * time.Hour)
	store.mu.Unlock()

	if _, err := store.get(id); err != nil {
		t.Errorf("get with ttl 0: %v", err)
	}
}

func TestSessionStore_NavigatorKeepsStateAcrossCalls(t *testing.T) {
	store := newSessionStore(0)
	p, nv := testSession(t)
	id := store.put(p, nv)

	sess, err := store.get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, _, err := sess.nv.InitFocus(); err != nil {
		t.Fatalf("InitFocus: %v", err)
	}
	if got := sess.nv.FocusedID(); got != "b1" {
		t.Fatalf("FocusedID = %q, want b1", got)
	}

	sess, err = store.get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := sess.nv.FocusedID(); got != "b1" {
		t.Errorf("FocusedID = %q, want focus state kept in the session", got)
	}
}
