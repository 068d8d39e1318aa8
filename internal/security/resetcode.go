// Package security holds the password-reset code capability. The engine does
// not hash passwords or issue tokens; it only brokers short-lived reset codes
// for the external auth layer.
package security

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultResetCodeTTL bounds how long a generated code stays verifiable.
const DefaultResetCodeTTL = 15 * time.Minute

type resetEntry struct {
	code      string
	expiresAt time.Time
}

// ResetCodeStore issues and verifies single-use password-reset codes with
// explicit TTL semantics. It is an injected capability with its own lifecycle:
// construct one at process start, prune it lazily on access or via a sweep.
// Safe for concurrent use.
type ResetCodeStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]resetEntry
	now     func() time.Time
}

func NewResetCodeStore(ttl time.Duration) *ResetCodeStore {
	if ttl <= 0 {
		ttl = DefaultResetCodeTTL
	}
	return &ResetCodeStore{
		ttl:     ttl,
		entries: make(map[string]resetEntry),
		now:     time.Now,
	}
}

// Generate issues a fresh code for the email, replacing any outstanding one.
func (s *ResetCodeStore) Generate(email string) string {
	code := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[normalize(email)] = resetEntry{
		code:      code,
		expiresAt: s.now().Add(s.ttl),
	}
	return code
}

// Verify consumes the code: a successful verification invalidates it, so a
// code can be used at most once. Expired entries are pruned on access.
func (s *ResetCodeStore) Verify(email, code string) bool {
	key := normalize(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return false
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		return false
	}
	if entry.code != code {
		return false
	}
	delete(s.entries, key)
	return true
}

// Invalidate discards any outstanding code for the email.
func (s *ResetCodeStore) Invalidate(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, normalize(email))
}

// Prune removes expired entries and reports how many were removed.
func (s *ResetCodeStore) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of outstanding codes, expired or not.
func (s *ResetCodeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
