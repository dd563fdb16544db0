package auth

import (
	"context"
	"sync"
	"time"
)

// RevocationStore tracks session tokens revoked before their natural expiry.
// Two implementations exist: an in-process store and a Redis-backed one for
// multi-instance deployments.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Close() error
}

type memoryRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time // JTI -> token expiry
	done    chan struct{}
}

// NewMemoryRevocationStore creates an in-memory store with a background
// goroutine that drops entries for tokens past their natural expiry; tracking
// a revocation beyond that point serves no purpose.
func NewMemoryRevocationStore() RevocationStore {
	s := &memoryRevocationStore{
		entries: make(map[string]time.Time),
		done:    make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (s *memoryRevocationStore) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[jti] = expiresAt
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	exp, ok := s.entries[jti]
	if !ok {
		return false, nil
	}
	return time.Now().Before(exp), nil
}

func (s *memoryRevocationStore) Close() error {
	close(s.done)
	return nil
}

func (s *memoryRevocationStore) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for jti, exp := range s.entries {
				if now.After(exp) {
					delete(s.entries, jti)
				}
			}
			s.mu.Unlock()
		}
	}
}
