package memcache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	email     string
	expiresAt time.Time
}

// MemoryResetTokens is the fallback store used when redis is unreachable at
// startup. Tokens do not survive a restart.
type MemoryResetTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewMemoryResetTokens() *MemoryResetTokens {
	return &MemoryResetTokens{data: make(map[string]entry)}
}

func (s *MemoryResetTokens) Set(_ context.Context, token string, accountEmail string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{email: accountEmail, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryResetTokens) Consume(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.data[token]
	if !ok {
		return "", nil
	}
	delete(s.data, token)
	if time.Now().After(e.expiresAt) {
		return "", nil
	}
	return e.email, nil
}

func (s *MemoryResetTokens) Peek(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[token]
	if !ok || time.Now().After(e.expiresAt) {
		return "", nil
	}
	return e.email, nil
}
