package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/localnerve/qadesk/internal/store"
)

func newTestSessions(t *testing.T) *SessionService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	users := `[{"email":"auditor@example.com","password":"changeme","name":"Demo Auditor"}]`
	if err := os.WriteFile(path, []byte(users), 0o644); err != nil {
		t.Fatalf("Failed to seed users file: %v", err)
	}
	return NewSessionService(store.NewUserStore(path), time.Hour)
}

func TestSessionLogin(t *testing.T) {
	sessions := newTestSessions(t)

	session, err := sessions.Login("auditor@example.com", "changeme")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if session.Token == "" || session.Email != "auditor@example.com" {
		t.Errorf("Bad session: %+v", session)
	}

	validated, err := sessions.Validate(session.Token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if validated.Email != session.Email {
		t.Errorf("Validated session mismatch: %+v", validated)
	}
}

func TestSessionLoginBadCredentials(t *testing.T) {
	sessions := newTestSessions(t)

	if _, err := sessions.Login("auditor@example.com", "wrong"); err == nil {
		t.Error("Expected wrong password to fail")
	}
	if _, err := sessions.Login("ghost@example.com", "changeme"); err == nil {
		t.Error("Expected unknown user to fail")
	}
}

func TestSessionExpiry(t *testing.T) {
	sessions := newTestSessions(t)

	session, err := sessions.Login("auditor@example.com", "changeme")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// Move the clock past the TTL
	sessions.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := sessions.Validate(session.Token); err == nil {
		t.Error("Expected expired session to fail validation")
	}
	// Expired sessions are dropped; a second validation also fails
	if _, err := sessions.Validate(session.Token); err == nil {
		t.Error("Expected dropped session to stay invalid")
	}
}

func TestSessionLogout(t *testing.T) {
	sessions := newTestSessions(t)

	session, _ := sessions.Login("auditor@example.com", "changeme")
	sessions.Logout(session.Token)
	if _, err := sessions.Validate(session.Token); err == nil {
		t.Error("Expected logged-out session to fail validation")
	}
}
