package auth

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pollwise/newsvote-be/internal/models"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// Session associates a browser with an authenticated identity. It carries
// only the public identity fields, never the password hash.
type Session struct {
	UserID    string
	Name      string
	Email     string
	ExpiresAt time.Time
}

// SessionStore is an in-process session store keyed by opaque token. It is
// injected into handlers rather than held as ambient state.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
}

// NewSessionStore creates a SessionStore whose sessions expire after ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

// Create establishes a session for the given user and returns its token.
func (s *SessionStore) Create(user models.User) (string, Session) {
	token := uuid.New().String()
	session := Session{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return token, session
}

// Get returns the session for a token. Expired sessions are removed lazily.
func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(session.ExpiresAt) {
		delete(s.sessions, token)
		return Session{}, false
	}
	return session, true
}

// Delete invalidates a session token.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// FromRequest resolves the session referenced by the request's cookie.
func (s *SessionStore) FromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return Session{}, false
	}
	return s.Get(cookie.Value)
}
