// Package session holds the authenticated identity for the lifetime of the
// process. There is exactly one Store per application, created at startup and
// injected into every consumer; nothing in this package is a global.
package session

import (
	"sync"

	"github.com/storeops/storefront-console/internal/core/domain"
)

// Session is a snapshot of the authentication state. A nil Identity means
// anonymous.
type Session struct {
	Identity *domain.User
}

// Authenticated reports whether an identity is present.
func (s Session) Authenticated() bool { return s.Identity != nil }

// Roles returns the role set derived from the identity. It is always exactly
// the identity's roles, or empty when anonymous; it is never settable on its
// own.
func (s Session) Roles() []string {
	if s.Identity == nil {
		return nil
	}
	return s.Identity.Roles
}

// HasAnyRole reports whether the session's role set intersects required.
// An empty requirement list always denies: callers are expected to name at
// least one role, and a silent allow would widen access on a typo.
func (s Session) HasAnyRole(required ...string) bool {
	if s.Identity == nil || len(required) == 0 {
		return false
	}
	for _, want := range required {
		for _, have := range s.Identity.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Store is the process-wide holder of the current Session. It has one writer
// path (Login/Logout) and arbitrarily many readers.
type Store struct {
	mu          sync.RWMutex
	current     Session
	subscribers map[int]func(Session)
	nextSubID   int
}

// NewStore creates an anonymous session store.
func NewStore() *Store {
	return &Store{subscribers: make(map[int]func(Session))}
}

// Current returns the session snapshot.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Login atomically replaces the held identity.
func (s *Store) Login(identity *domain.User) {
	s.replace(Session{Identity: identity})
}

// Logout resets the session to anonymous.
func (s *Store) Logout() {
	s.replace(Session{})
}

// HasAnyRole is a convenience over Current().HasAnyRole.
func (s *Store) HasAnyRole(required ...string) bool {
	return s.Current().HasAnyRole(required...)
}

// Subscribe registers fn to run after every session change. The returned
// cancel function removes the subscription; once cancelled, fn is never
// called again, so a disposed consumer cannot be touched by late updates.
func (s *Store) Subscribe(fn func(Session)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Store) replace(next Session) {
	s.mu.Lock()
	s.current = next
	subs := make([]func(Session), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}
