package http

import (
	"appointment-assistant/internal/dialogue"
)

type chatReq struct {
	// ConversationID continues an existing conversation. Omit it to start a
	// new one; the response carries the generated ID.
	ConversationID string `json:"conversation_id"`
	Text           string `json:"text" binding:"required"`
	UserID         string `json:"user_id"`
	// FromVoice marks text transcribed from audio by the caller; replies
	// stay plain text either way.
	FromVoice bool `json:"from_voice"`
}

type chatResp struct {
	ConversationID string             `json:"conversation_id"`
	Action         string             `json:"action"`
	Reply          string             `json:"reply"`
	Command        *dialogue.Command  `json:"command,omitempty"`
	MissingSlots   []string           `json:"missing_slots,omitempty"`
	MissingIntent  bool               `json:"missing_intent,omitempty"`
	TargetMode     string             `json:"target_mode,omitempty"`
	Mode           string             `json:"mode,omitempty"`
}

type resetReq struct {
	ConversationID string `json:"conversation_id" binding:"required"`
}

func newChatResp(conversationID string, out dialogue.Outcome) chatResp {
	return chatResp{
		ConversationID: conversationID,
		Action:         string(out.Kind),
		Reply:          out.Reply,
		Command:        out.Command,
		MissingSlots:   out.MissingSlots,
		MissingIntent:  out.MissingIntent,
		TargetMode:     string(out.TargetMode),
		Mode:           string(out.NewMode),
	}
}
