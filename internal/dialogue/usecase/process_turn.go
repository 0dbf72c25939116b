package usecase

import (
	"context"
	"strings"
	"time"

	"appointment-assistant/internal/contextstore"
	"appointment-assistant/internal/dialogue"
	"appointment-assistant/internal/model"
)

// ProcessTurn runs one utterance through the dialogue state machine:
// classify, extract, merge into conversation state, then clarify or dispatch.
// Conversation state only changes after every fallible step for the turn has
// succeeded, so a collaborator outage never loses gathered slots.
func (uc *implUseCase) ProcessTurn(ctx context.Context, sc model.Scope, input dialogue.ProcessTurnInput) (dialogue.Outcome, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return dialogue.Outcome{}, dialogue.ErrEmptyUtterance
	}
	now := input.Now
	if now.IsZero() {
		now = time.Now().In(uc.normalizer.Location())
	}

	conv := uc.contexts.Get(sc.ConversationID)
	conv.Lock()
	defer conv.Unlock()
	defer uc.contexts.Touch(conv)

	if err := conv.Validate(); err != nil {
		uc.l.Errorf(ctx, "dialogue.usecase.ProcessTurn: conversation %s: %v, resetting", conv.ID, err)
		conv.ResetState()
		return dialogue.Outcome{
			Kind:          dialogue.OutcomeClarify,
			MissingIntent: true,
			Reply:         promptInternalApology,
		}, nil
	}

	res := uc.classifier.Classify(text, conv.ActiveMode)
	uc.l.Debugf(ctx, "dialogue.usecase.ProcessTurn: conversation %s intent %s confidence %.2f", conv.ID, res.Intent, res.Confidence)

	// A pending switch offer is consumed by this turn either way: an
	// affirmation completes the switch, anything else declines it silently.
	if conv.SwitchOffer != "" {
		offered := conv.SwitchOffer
		conv.SwitchOffer = ""
		if isAffirmation(text) {
			return uc.switchMode(conv, offered), nil
		}
	}

	if res.Intent == model.IntentSwitchMode {
		return uc.switchMode(conv, explicitSwitchTarget(text, conv.ActiveMode)), nil
	}

	intent := res.Intent

	// Slot-filling turn: an unclassified or same-intent utterance while slots
	// are outstanding continues the pending command.
	continuing := conv.PendingIntent != "" &&
		(intent == model.IntentUnknown || intent == conv.PendingIntent || res.Confidence < uc.threshold)
	if continuing {
		intent = conv.PendingIntent
	} else {
		if natural := intent.NaturalMode(); natural != "" && natural != conv.ActiveMode {
			if res.Confidence >= uc.threshold {
				conv.SwitchOffer = natural
				return dialogue.Outcome{
					Kind:       dialogue.OutcomeModeSwitchOffer,
					TargetMode: natural,
					Reply:      promptModeSwitchOffer(natural),
				}, nil
			}
			intent = model.IntentUnknown
		}
		if res.Confidence < uc.threshold {
			intent = model.IntentUnknown
		}
	}

	if intent == model.IntentKnowledgeQuery ||
		(intent == model.IntentUnknown && conv.ActiveMode == model.ModeKnowledge) {
		// Everything in knowledge mode is a question for the oracle.
		return uc.dispatchKnowledge(ctx, conv, text)
	}

	if intent == model.IntentUnknown {
		return dialogue.Outcome{
			Kind:          dialogue.OutcomeClarify,
			MissingIntent: true,
			Reply:         promptClarifyIntent,
		}, nil
	}

	// Starting a different appointment command mid-flow keeps the person and
	// date already gathered; the time rarely carries over meaningfully.
	if conv.PendingIntent != "" && intent != conv.PendingIntent {
		carried := map[string]string{
			model.SlotPerson: conv.Slots[model.SlotPerson],
			model.SlotDate:   conv.Slots[model.SlotDate],
		}
		conv.ClearPending()
		conv.SetPending(intent)
		for name, value := range carried {
			conv.FillSlot(name, value)
		}
	} else if conv.PendingIntent == "" {
		conv.SetPending(intent)
	}

	entities := uc.extractor.Extract(text)
	uc.mergeEntities(conv, entities, now)
	// The bare-reply pass only runs when the extractor recognized nothing:
	// once an entity has claimed the text, rereading it as a different slot
	// invents values (day-of-month digits parsed as an hour).
	if continuing && len(entities) == 0 {
		uc.fillFromBareReply(conv, text, now)
	}

	// "cancel this appointment": unstated slots come from the appointment
	// most recently confirmed in this conversation.
	if intent == model.IntentCancelAppointment && conv.LastAppointment != nil {
		ref := conv.LastAppointment
		if conv.Slots[model.SlotPerson] == "" {
			conv.FillSlot(model.SlotPerson, ref.Person)
		}
		if conv.Slots[model.SlotDate] == "" {
			conv.FillSlot(model.SlotDate, ref.Date)
		}
		if conv.Slots[model.SlotTime] == "" {
			conv.FillSlot(model.SlotTime, ref.Time)
		}
	}

	if intent == model.IntentListAppointments {
		if !listIsFiltered(conv.Slots) {
			return dialogue.Outcome{
				Kind:         dialogue.OutcomeClarify,
				MissingSlots: []string{model.SlotPerson, model.SlotDate},
				Reply:        promptListNeedsFilter(),
			}, nil
		}
	} else if missing := missingSlots(intent, conv.Slots); len(missing) > 0 {
		return dialogue.Outcome{
			Kind:         dialogue.OutcomeClarify,
			MissingSlots: missing,
			Reply:        promptForSlots(intent, conv.Slots, missing),
		}, nil
	}

	cmd := dialogue.Command{
		Intent:     intent,
		Person:     conv.Slots[model.SlotPerson],
		Date:       conv.Slots[model.SlotDate],
		Time:       conv.Slots[model.SlotTime],
		Recurrence: conv.Slots[model.SlotRecurrence],
	}
	outcome, err := uc.dispatch(ctx, conv, cmd)
	if err != nil {
		// Pending intent and slots survive so the command can be retried.
		return dialogue.Outcome{}, err
	}
	if outcome.Kind == dialogue.OutcomeDispatch {
		conv.ClearPending()
	}
	return outcome, nil
}

// Reset discards all state for the scope's conversation.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) error {
	uc.contexts.Reset(sc.ConversationID)
	uc.l.Infof(ctx, "dialogue.usecase.Reset: conversation %s cleared", sc.ConversationID)
	return nil
}

// switchMode completes a mode switch, discarding any in-flight command.
// Cross-mode slot carry-over is never allowed.
func (uc *implUseCase) switchMode(conv *contextstore.Conversation, target model.Mode) dialogue.Outcome {
	conv.ActiveMode = target
	conv.ClearPending()
	conv.SwitchOffer = ""
	return dialogue.Outcome{
		Kind:    dialogue.OutcomeModeSwitched,
		NewMode: target,
		Reply:   promptModeSwitched(target),
	}
}
