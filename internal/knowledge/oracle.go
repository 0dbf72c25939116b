// Package knowledge answers open-domain questions through the configured
// LLM providers.
package knowledge

import (
	"context"
	"strings"

	"appointment-assistant/internal/dialogue"
	"appointment-assistant/pkg/llmprovider"
)

const systemInstruction = "You are a helpful assistant answering general questions in a chat. " +
	"Answer in plain text, two to three sentences at most. " +
	"If you do not know the answer, say so plainly."

// Oracle implements dialogue.KnowledgeOracle over the LLM provider manager.
type Oracle struct {
	manager *llmprovider.Manager
}

var _ dialogue.KnowledgeOracle = (*Oracle)(nil)

// New creates an Oracle.
func New(manager *llmprovider.Manager) *Oracle {
	return &Oracle{manager: manager}
}

// Answer resolves a question to a short plain-text answer.
func (o *Oracle) Answer(ctx context.Context, question string) (string, error) {
	resp, err := o.manager.GenerateText(ctx, &llmprovider.Request{
		SystemInstruction: systemInstruction,
		Prompt:            question,
		Temperature:       0.3,
		MaxTokens:         512,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}
