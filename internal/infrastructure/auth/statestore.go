package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

const stateTTL = 10 * time.Minute

// StateStore issues and redeems single-use OAuth state tokens to protect
// the callback against CSRF. Entries expire after ten minutes.
type StateStore struct {
	mu     sync.Mutex
	states map[string]time.Time
}

func NewStateStore() *StateStore {
	return &StateStore{states: make(map[string]time.Time)}
}

// Issue creates and remembers a new random state token.
func (s *StateStore) Issue() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	state := base64.RawURLEncoding.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	s.states[state] = time.Now().Add(stateTTL)
	return state, nil
}

// Redeem consumes the state token, reporting whether it was valid. A token
// can be redeemed at most once.
func (s *StateStore) Redeem(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)
	return time.Now().Before(expiry)
}

// prune drops expired entries; callers hold the lock.
func (s *StateStore) prune() {
	now := time.Now()
	for state, expiry := range s.states {
		if now.After(expiry) {
			delete(s.states, state)
		}
	}
}
