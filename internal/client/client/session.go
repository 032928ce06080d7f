package client

import (
	"errors"
	"sync"
	"time"
)

// Session is the bearer token and the identity it was issued to.
// It is either fully set or empty; callers never observe anything in between.
type Session struct {
	mu    sync.RWMutex
	state SessionState
}

// SessionState is a point-in-time copy of a Session.
type SessionState struct {
	Token     string
	SubjectID string
	RoleID    int
	// ExpiresAt is advisory and zero when unknown.
	ExpiresAt time.Time
}

func (s SessionState) Empty() bool {
	return s.Token == ""
}

func NewSession() *Session {
	return &Session{}
}

// Set replaces the whole session at once. Token and subject are required.
func (s *Session) Set(token, subjectID string, roleID int, expiresAt time.Time) error {
	if token == "" || subjectID == "" {
		return errors.New("session: token and subject are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionState{Token: token, SubjectID: subjectID, RoleID: roleID, ExpiresAt: expiresAt}
	return nil
}

// Clear empties the session. Clearing an empty session is a no-op.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionState{}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *Session) Snapshot() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated reports whether the session is populated and belongs to
// requiredRole.
func (s *Session) IsAuthenticated(requiredRole int) bool {
	st := s.Snapshot()
	return !st.Empty() && st.SubjectID != "" && st.RoleID == requiredRole
}
