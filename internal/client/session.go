package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/desertthunder/focusdeck/internal/shared"
)

// SessionTTL is the lifetime the server stamps on issued tokens. The client
// never refreshes proactively; it reacts to server rejections instead.
const SessionTTL = 24 * time.Hour

// Session holds the opaque bearer credential and the identity it was issued
// for.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the session has a token that is not yet past its
// expiry. The server remains the authority; this is a local shortcut only.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && time.Now().Before(s.ExpiresAt)
}

// DefaultSessionPath returns the session file location under the user's home
// directory.
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".focusdeck", "session.json")
	}
	return filepath.Join(home, ".focusdeck", "session.json")
}

// LoadSession reads a persisted session from path.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrNotAuthenticated, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("%w: corrupt session file", shared.ErrNotAuthenticated)
	}

	return &session, nil
}

// SaveSession persists the session to path with owner-only permissions.
func SaveSession(path string, session *Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}

	return nil
}

// ClearSession removes the persisted session. A missing file is not an error.
func ClearSession(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", shared.ErrStorage, err)
	}
	return nil
}
