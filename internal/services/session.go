package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/qadesk/internal/store"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "qadesk_session"

// Session is the explicit per-login context object. Handlers receive it
// through middleware locals; there is no process-global current user.
type Session struct {
	Token   string    `json:"-"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Expires time.Time `json:"expires"`
}

// SessionService holds active sessions in memory. Sessions do not survive a
// restart, matching the demo scope of the credential store.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*Session
	users    *store.UserStore
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionService creates a service validating against the given
// allow-list store.
func NewSessionService(users *store.UserStore, ttl time.Duration) *SessionService {
	return &SessionService{
		sessions: make(map[string]*Session),
		users:    users,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login checks credentials against the allow-list and creates a session.
// The comparison is plaintext equality against users.json; a placeholder
// gate for demo deployments, not real authentication.
func (s *SessionService) Login(email, password string) (*Session, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if user.Password != password {
		return nil, fmt.Errorf("invalid credentials")
	}

	session := &Session{
		Token:   uuid.NewString(),
		Email:   user.Email,
		Name:    user.Name,
		Expires: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	log.Printf("Session created for %s", user.Email)
	return session, nil
}

// Validate returns the session for a token, removing it when expired.
func (s *SessionService) Validate(token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, fmt.Errorf("no such session")
	}
	if s.now().After(session.Expires) {
		delete(s.sessions, token)
		return nil, fmt.Errorf("session expired")
	}
	return session, nil
}

// Logout destroys the session for a token. Unknown tokens are a no-op.
func (s *SessionService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
