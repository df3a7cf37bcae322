// Package session owns the bearer credential used on every backend call.
// The token lives in an explicit session object with a small lifecycle:
// login stores it, the expiry gate reads it, logout or a 401 clears it.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/yashwalhekar/adminpanelfrontend/internal/domain"
)

// Session holds the current bearer token. Safe for concurrent use.
type Session struct {
	store  TokenStore
	logger *zap.Logger

	mu    sync.RWMutex
	token string
}

// New creates a session, loading any previously persisted token.
func New(store TokenStore, logger *zap.Logger) *Session {
	s := &Session{store: store, logger: logger}
	if store != nil {
		if token, err := store.Load(); err == nil {
			s.token = token
		} else {
			logger.Warn("could not load persisted token", zap.Error(err))
		}
	}
	return s
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores a freshly issued token and persists it.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	return s.store.Save(token)
}

// Clear drops the token from memory and from the persistent store.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			s.logger.Warn("could not clear persisted token", zap.Error(err))
		}
	}
}

// Valid reports whether a token is present and not expired as of now.
// Only the exp claim is decoded; signature verification is the backend's
// job, the client just avoids rendering screens it cannot use.
func (s *Session) Valid(now time.Time) bool {
	token := s.Token()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.After(now)
}

// Guard is the gate in front of every protected screen. On a missing or
// expired token it clears the session and returns ErrAuthExpired before
// any network call is issued.
func (s *Session) Guard(now time.Time) error {
	if s.Valid(now) {
		return nil
	}
	s.Clear()
	return domain.ErrAuthExpired
}
