package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"appointment-assistant/internal/dialogue"
	"appointment-assistant/internal/model"
	pkgLog "appointment-assistant/pkg/log"
	pkgResponse "appointment-assistant/pkg/response"
	pkgTelegram "appointment-assistant/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  dialogue.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an acknowledgement within a few
// seconds, but a knowledge-mode turn can take longer than that.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.telegram: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning the goroutine to avoid data races
	// on the gin context.
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled after the
		// acknowledgement is written.
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "dialogue.delivery.telegram: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong while handling your message. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	sc := model.Scope{
		ConversationID: fmt.Sprintf("telegram_%d", msg.Chat.ID),
	}
	// From is absent for channel posts and anonymous admins.
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
	}

	if msg.Voice != nil {
		return h.bot.SendMessage(msg.Chat.ID,
			"I can't listen to voice messages yet. Could you type that instead?")
	}
	if msg.Text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch msg.Text {
	case "/start":
		return h.bot.SendMessage(msg.Chat.ID,
			"Hi! I can schedule, cancel and list appointments, check availability, and answer general questions. "+
				"Try: \"Schedule an appointment with Dr Smith next Friday at 3pm\".")
	case "/help":
		return h.bot.SendMessage(msg.Chat.ID,
			"Talk to me in plain language. Examples:\n"+
				"- Schedule an appointment with John tomorrow at 10am\n"+
				"- Is Dr Smith available this Friday?\n"+
				"- Cancel my appointment with John\n"+
				"- Switch to knowledge mode\n"+
				"Send /reset to start over.")
	case "/reset":
		if err := h.uc.Reset(ctx, sc); err != nil {
			return err
		}
		return h.bot.SendMessage(msg.Chat.ID, "Okay, I've cleared our conversation. How can I help?")
	}

	_ = h.bot.SendTyping(msg.Chat.ID)

	out, err := h.uc.ProcessTurn(ctx, sc, dialogue.ProcessTurnInput{Text: msg.Text})
	if err != nil {
		h.l.Errorf(ctx, "dialogue.delivery.telegram: ProcessTurn failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID,
			"I couldn't reach a backing service just now. Please send that again in a moment.")
	}

	return h.bot.SendMessage(msg.Chat.ID, out.Reply)
}
