package contextstore

import (
	"errors"
	"sync"
	"time"

	"appointment-assistant/internal/model"
)

// ErrInvariantViolation reports an internally inconsistent conversation:
// partial slots present without a pending intent. It is fatal to the current
// conversation, which is reset to idle.
var ErrInvariantViolation = errors.New("contextstore: partial slots present without a pending intent")

// Conversation is the per-session mutable memory of the dialogue engine.
// It is owned exclusively by one conversation: callers must hold the lock
// for the whole turn, so no two turns for the same conversation interleave.
type Conversation struct {
	mu sync.Mutex

	ID              string
	ActiveMode      model.Mode
	PendingIntent   model.Intent // "" when no intent is awaiting slots
	Slots           map[string]string
	LastAppointment *model.Appointment // most recently discussed appointment
	SwitchOffer     model.Mode         // pending mode-switch offer, "" if none
	UpdatedAt       time.Time
}

// Lock takes exclusive ownership for one turn.
func (c *Conversation) Lock() { c.mu.Lock() }

// Unlock releases the turn.
func (c *Conversation) Unlock() { c.mu.Unlock() }

// Validate checks the slot/intent invariant. Callers must hold the lock.
func (c *Conversation) Validate() error {
	if c.PendingIntent == "" && len(c.Slots) > 0 {
		return ErrInvariantViolation
	}
	return nil
}

// SetPending records an intent awaiting slot completion.
func (c *Conversation) SetPending(intent model.Intent) {
	c.PendingIntent = intent
	if c.Slots == nil {
		c.Slots = make(map[string]string)
	}
}

// FillSlot stores a resolved slot value. A pending intent must be set first.
func (c *Conversation) FillSlot(name, value string) {
	if c.PendingIntent == "" || value == "" {
		return
	}
	c.Slots[name] = value
}

// ClearPending drops the pending intent and its partial slots atomically,
// preserving the invariant that slots never outlive their intent.
func (c *Conversation) ClearPending() {
	c.PendingIntent = ""
	c.Slots = nil
}

// ResetState returns the conversation to idle in its current mode.
func (c *Conversation) ResetState() {
	c.ClearPending()
	c.LastAppointment = nil
	c.SwitchOffer = ""
}
