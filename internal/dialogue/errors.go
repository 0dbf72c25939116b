package dialogue

import "errors"

// Domain-specific errors for the dialogue engine.
var (
	// ErrEmptyUtterance is returned for blank input.
	ErrEmptyUtterance = errors.New("utterance text is empty")

	// ErrCollaboratorUnavailable wraps appointment-store or knowledge-oracle
	// failures. The conversation state is left unchanged so the same command
	// can be redispatched without re-asking for slots.
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
)
