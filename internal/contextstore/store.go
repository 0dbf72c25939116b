// Package contextstore keeps per-conversation dialogue state, keyed by
// conversation ID. Idle conversations expire so abandoned sessions do not
// accumulate.
package contextstore

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"appointment-assistant/internal/model"
)

const (
	// DefaultMaxConversations bounds resident conversation state.
	DefaultMaxConversations = 4096

	// DefaultTTL evicts conversations idle longer than this.
	DefaultTTL = 30 * time.Minute
)

// Store holds all live conversations.
type Store struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *Conversation]
}

// New creates a Store. Zero values fall back to the defaults.
func New(maxConversations int, ttl time.Duration) *Store {
	if maxConversations <= 0 {
		maxConversations = DefaultMaxConversations
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		cache: expirable.NewLRU[string, *Conversation](maxConversations, nil, ttl),
	}
}

// Get returns the conversation for id, creating it on first utterance.
// New conversations start in appointment mode.
func (s *Store) Get(id string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, ok := s.cache.Get(id); ok {
		return conv
	}
	conv := &Conversation{
		ID:         id,
		ActiveMode: model.ModeAppointment,
		UpdatedAt:  time.Now(),
	}
	s.cache.Add(id, conv)
	return conv
}

// Touch refreshes the conversation's recency after a completed turn.
func (s *Store) Touch(conv *Conversation) {
	conv.UpdatedAt = time.Now()
	s.mu.Lock()
	s.cache.Add(conv.ID, conv)
	s.mu.Unlock()
}

// Reset discards the conversation outright. The next utterance starts fresh.
func (s *Store) Reset(id string) {
	s.mu.Lock()
	s.cache.Remove(id)
	s.mu.Unlock()
}

// Len reports the number of live conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
