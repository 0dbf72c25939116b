package dialogue

import (
	"context"

	"appointment-assistant/internal/model"
)

// UseCase is the dialogue engine's single operation surface.
type UseCase interface {
	// ProcessTurn runs one utterance through intent classification, entity
	// extraction, slot filling and dispatch, and returns the next system
	// action. Turns for the same conversation are processed one at a time.
	ProcessTurn(ctx context.Context, sc model.Scope, input ProcessTurnInput) (Outcome, error)

	// Reset discards the conversation's context entirely.
	Reset(ctx context.Context, sc model.Scope) error
}

// KnowledgeOracle answers open-domain questions. The engine decides that a
// query should be routed here; how the answer is produced is not its concern.
type KnowledgeOracle interface {
	Answer(ctx context.Context, question string) (string, error)
}
