package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"appointment-assistant/internal/dialogue"
	"appointment-assistant/internal/model"
	"appointment-assistant/pkg/response"
)

// Chat godoc
// @Summary     Process one chat turn
// @Description Runs an utterance through the dialogue engine and returns the next action: a dispatched command, a clarification question, or a mode switch.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Utterance"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Collaborator unavailable - safe to retry"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	sc := model.Scope{ConversationID: conversationID, UserID: req.UserID}
	out, err := h.uc.ProcessTurn(ctx, sc, dialogue.ProcessTurnInput{Text: req.Text, FromVoice: req.FromVoice})
	if err != nil {
		if errors.Is(err, dialogue.ErrCollaboratorUnavailable) {
			h.l.Warnf(ctx, "dialogue.delivery.http.Chat: %v", err)
			response.Retryable(c, "A backing service is temporarily unavailable. Please send your message again.")
			return
		}
		h.l.Errorf(ctx, "dialogue.delivery.http.Chat: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newChatResp(conversationID, out))
}

// Reset godoc
// @Summary     Reset a conversation
// @Description Discards all context for a conversation. The next message starts fresh in appointment mode.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body resetReq true "Conversation to reset"
// @Success     200 {object} map[string]string
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Reset(ctx, model.Scope{ConversationID: req.ConversationID}); err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.http.Reset: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, map[string]string{"status": "reset"})
}
