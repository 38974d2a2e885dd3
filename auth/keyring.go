// Package auth keeps the club session token in the system keyring.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/odyssey-club/aiosource/constant"
	"github.com/odyssey-club/aiosource/log"
	"github.com/zalando/go-keyring"
)

const user = "session-token"

// Session is a keyring-backed login. It implements aio.Authenticator.
type Session struct {
	Service string
	User    string
}

// NewSession returns the session of this application.
func NewSession() *Session {
	return &Session{Service: constant.App, User: user}
}

// Token returns the stored token, or "" when nobody is logged in.
func (s *Session) Token() (string, error) {
	token, err := keyring.Get(s.Service, s.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return token, nil
}

// Save stores token, replacing any previous one.
func (s *Session) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty session token")
	}
	if err := keyring.Set(s.Service, s.User, token); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Clear logs out. Clearing an absent session is not an error.
func (s *Session) Clear() error {
	err := keyring.Delete(s.Service, s.User)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Session) IsAuthenticated() (bool, error) {
	token, err := s.Token()
	return token != "", err
}

// Header returns the authorization header for the current session, if any.
// It is meant for network.HTTPGateway.Headers.
func (s *Session) Header() map[string]string {
	token, err := s.Token()
	if err != nil {
		log.Warnf("session header: %v", err)
		return nil
	}
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}
