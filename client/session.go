// Package client implements the CRM's client-side authentication core:
// an explicit session store, the signup/verification flow controller and
// the role-gated navigation guards, all speaking to the auth service over
// its JSON envelope API.
package client

import (
	"sync"

	"github.com/realtorcrm/authsvc/domain"
)

// User is the profile record held in the client session.
type User struct {
	ID                  uint        `json:"id"`
	Email               string      `json:"email"`
	Phone               string      `json:"phone,omitempty"`
	FirstName           string      `json:"first_name"`
	LastName            string      `json:"last_name"`
	UserType            domain.Role `json:"user_type"`
	UserRef             string      `json:"user_ref,omitempty"`
	Verified            bool        `json:"verified"`
	PaymentVerification bool        `json:"payment_verification"`
}

// Snapshot is an immutable view of the session at one point in time.
// Guards evaluate snapshots, never the live store.
type Snapshot struct {
	Token string
	User  *User
}

// IsAuthenticated reports whether a credential is held. Expiry checking is
// delegated to the gateway: a 401 clears the session.
func (s Snapshot) IsAuthenticated() bool {
	return s.Token != ""
}

// UserType returns the session's role, or empty when the user is absent
// or not yet classified.
func (s Snapshot) UserType() domain.Role {
	if s.User == nil {
		return ""
	}
	return s.User.UserType
}

// SessionStore is the single source of truth for client authentication
// state. All mutation flows through SetCredentials and ClearSession;
// subscribers are notified after every mutation. The store never touches
// the network itself.
type SessionStore struct {
	mu      sync.RWMutex
	token   string
	user    *User
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{subs: make(map[int]func(Snapshot))}
}

// SetCredentials unconditionally overwrites the session. There are no
// merge semantics.
func (s *SessionStore) SetCredentials(token string, user *User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	snap := s.snapshotLocked()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// ClearSession resets the store to empty. Used on logout, verification
// abandonment and gateway 401 responses.
func (s *SessionStore) ClearSession() {
	s.SetCredentials("", nil)
}

// Snapshot returns the current session view.
func (s *SessionStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// IsAuthenticated reports whether a credential is held.
func (s *SessionStore) IsAuthenticated() bool {
	return s.Snapshot().IsAuthenticated()
}

// CurrentUser returns the session user, or nil.
func (s *SessionStore) CurrentUser() *User {
	return s.Snapshot().User
}

// UserType returns the session's role, or empty.
func (s *SessionStore) UserType() domain.Role {
	return s.Snapshot().UserType()
}

// Subscribe registers fn to run after every session mutation. The
// returned function removes the subscription.
func (s *SessionStore) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *SessionStore) snapshotLocked() Snapshot {
	if s.user == nil {
		return Snapshot{Token: s.token}
	}
	u := *s.user
	return Snapshot{Token: s.token, User: &u}
}

func (s *SessionStore) subscribersLocked() []func(Snapshot) {
	out := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
