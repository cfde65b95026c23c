package discord

import (
	"fmt"
	"sync"
	"time"

	"github.com/Tenvid/Frikibot/internal/clock"
)

const (
	// DefaultCooldown is how long a user waits between two uses of the same command
	DefaultCooldown = 5 * time.Second

	cooldownMessage = " %s This command is actually on cooldown, wait %.2f seconds."

	pruneThreshold = 1024
)

// CooldownStore tracks when a key may run again
type CooldownStore interface {
	// Acquire starts a cooldown window for key. When the key is still cooling down it
	// returns false and the time left.
	Acquire(key string, window time.Duration) (time.Duration, bool)
}

// MemoryCooldownStore is an in-memory cooldown store
type MemoryCooldownStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	buckets map[string]time.Time
}

// NewMemoryCooldownStore creates a store. A nil clock uses the real time.
func NewMemoryCooldownStore(c clock.Clock) *MemoryCooldownStore {
	if c == nil {
		c = clock.New()
	}

	return &MemoryCooldownStore{
		clock:   c,
		buckets: make(map[string]time.Time),
	}
}

// Acquire implements CooldownStore
func (s *MemoryCooldownStore) Acquire(key string, window time.Duration) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	if resetAt, exists := s.buckets[key]; exists && now.Before(resetAt) {
		return resetAt.Sub(now), false
	}

	if len(s.buckets) >= pruneThreshold {
		s.prune(now)
	}

	s.buckets[key] = now.Add(window)
	return 0, true
}

// prune drops expired buckets, callers hold the lock
func (s *MemoryCooldownStore) prune(now time.Time) {
	for key, resetAt := range s.buckets {
		if !now.Before(resetAt) {
			delete(s.buckets, key)
		}
	}
}

// cooldownKey scopes a cooldown to one user and one command
func cooldownKey(userID, command string) string {
	return userID + ":" + command
}

// CooldownMessage is the reply sent while a command is cooling down
func CooldownMessage(mention string, retryAfter time.Duration) string {
	return fmt.Sprintf(cooldownMessage, mention, retryAfter.Seconds())
}
