package dialogue

import (
	"time"

	"appointment-assistant/internal/model"
)

// ProcessTurnInput is one user utterance.
type ProcessTurnInput struct {
	Text      string
	Now       time.Time // reference instant for relative date resolution
	FromVoice bool      // transcribed from audio; replies stay plain-text
}

// OutcomeKind enumerates the possible next system actions.
type OutcomeKind string

const (
	// OutcomeDispatch carries a completed structured command that has been
	// handed to the appointment store or knowledge oracle.
	OutcomeDispatch OutcomeKind = "dispatch"

	// OutcomeClarify requests exactly the missing slot(s), or the intent
	// itself when classification confidence was too low.
	OutcomeClarify OutcomeKind = "clarify"

	// OutcomeModeSwitchOffer proposes switching the conversation's mode.
	OutcomeModeSwitchOffer OutcomeKind = "mode_switch_offer"

	// OutcomeModeSwitched confirms a completed mode switch.
	OutcomeModeSwitched OutcomeKind = "mode_switched"
)

// Command is the structured contract handed to the collaborators. Slots are
// fully resolved: Date is model.SlotDateFormat, Time is model.SlotTimeFormat.
// For KnowledgeQuery only Query is set.
type Command struct {
	Intent     model.Intent `json:"intent"`
	Person     string       `json:"person,omitempty"`
	Date       string       `json:"date,omitempty"`
	Time       string       `json:"time,omitempty"`
	Recurrence string       `json:"recurrence,omitempty"`
	Query      string       `json:"query,omitempty"`
}

// Outcome is the engine's answer for one turn. Reply is the user-facing
// text for whatever transport delivered the utterance.
type Outcome struct {
	Kind OutcomeKind

	// Dispatch
	Command *Command

	// Clarify
	MissingSlots  []string
	MissingIntent bool

	// Mode switching
	TargetMode model.Mode // offer
	NewMode    model.Mode // completed switch

	Reply string
}
