// pkg/memcache/sessions.go
package memcache

import (
	"sync"
	"time"

	"resto/internal/models/response_models"
)

type SessionStore interface {
	Set(token string, user response_models.AuthUser, ttl time.Duration)

	// Get returns the identity for token if not expired. The token stays
	// valid until Delete or expiry.
	Get(token string) (response_models.AuthUser, bool)

	Delete(token string)
}

type sessionEntry struct {
	user      response_models.AuthUser
	expiresAt time.Time
}

type Sessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewSessions() *Sessions {
	return &Sessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *Sessions) Set(token string, user response_models.AuthUser, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = sessionEntry{
		user:      user,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Sessions) Get(token string) (response_models.AuthUser, bool) {
	s.mu.RLock()
	e, ok := s.data[token]
	s.mu.RUnlock()

	if !ok {
		return response_models.AuthUser{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.Delete(token) // cleanup expired
		return response_models.AuthUser{}, false
	}
	return e.user, true
}

func (s *Sessions) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, token)
}
