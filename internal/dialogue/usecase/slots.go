package usecase

import (
	"strings"
	"time"

	"appointment-assistant/internal/contextstore"
	"appointment-assistant/internal/extractor"
	"appointment-assistant/internal/model"
)

// requiredSlots returns the slots an intent must have before dispatch, in
// prompting order. ListAppointments is handled separately: it needs a person
// or a date, not both.
func requiredSlots(intent model.Intent) []string {
	switch intent {
	case model.IntentScheduleAppointment, model.IntentCancelAppointment:
		return []string{model.SlotPerson, model.SlotDate, model.SlotTime}
	case model.IntentCheckAvailability:
		return []string{model.SlotPerson, model.SlotDate}
	}
	return nil
}

func missingSlots(intent model.Intent, slots map[string]string) []string {
	var missing []string
	for _, name := range requiredSlots(intent) {
		if slots[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// listIsFiltered reports whether a list command carries at least one filter.
func listIsFiltered(slots map[string]string) bool {
	return slots[model.SlotPerson] != "" || slots[model.SlotDate] != ""
}

// mergeEntities resolves the turn's entities into the conversation's slots.
// Newer values overwrite older ones. Ambiguous single-token candidates are
// disambiguated by which slot the pending intent is still waiting on.
func (uc *implUseCase) mergeEntities(conv *contextstore.Conversation, entities []extractor.Entity, now time.Time) {
	awaiting := map[string]bool{}
	for _, name := range missingSlots(conv.PendingIntent, conv.Slots) {
		awaiting[name] = true
	}

	var person, dateExpr, timeExpr, recurrence extractor.Entity
	for _, ent := range entities {
		switch ent.Kind {
		case extractor.KindPerson:
			if person.RawText == "" {
				person = ent
			}
		case extractor.KindDateExpr:
			if dateExpr.RawText == "" {
				dateExpr = ent
			}
		case extractor.KindTimeExpr:
			// An explicit numeric time wins over a named period.
			if timeExpr.RawText == "" || (!hasDigit(timeExpr.RawText) && hasDigit(ent.RawText)) {
				timeExpr = ent
			}
		case extractor.KindRecurrence:
			if recurrence.RawText == "" {
				recurrence = ent
			}
		}
	}

	// A token read as both a person and a date/time keeps the reading the
	// conversation is waiting on. Unless the person slot is the open question,
	// the temporal reading wins.
	if person.RawText != "" {
		personWanted := awaiting[model.SlotPerson]
		if spansOverlap(person.Span, dateExpr.Span) && dateExpr.RawText != "" {
			if personWanted && !awaiting[model.SlotDate] {
				dateExpr = extractor.Entity{}
			} else {
				person = extractor.Entity{}
			}
		}
		if person.RawText != "" && spansOverlap(person.Span, timeExpr.Span) && timeExpr.RawText != "" {
			if personWanted && !awaiting[model.SlotTime] {
				timeExpr = extractor.Entity{}
			} else {
				person = extractor.Entity{}
			}
		}
	}

	conv.FillSlot(model.SlotPerson, person.RawText)
	conv.FillSlot(model.SlotRecurrence, strings.ToLower(recurrence.RawText))

	if resolved, err := uc.normalizer.Normalize(dateExpr.RawText, timeExpr.RawText, now); err == nil {
		if resolved.HasDate {
			conv.FillSlot(model.SlotDate, resolved.DateString())
		}
		if resolved.HasTime {
			conv.FillSlot(model.SlotTime, resolved.TimeString())
		}
	}
}

// fillFromBareReply handles terse slot answers the extractor has no pattern
// for, like "3" or "friday" alone, by parsing the whole utterance as the one
// slot value the conversation is waiting on.
func (uc *implUseCase) fillFromBareReply(conv *contextstore.Conversation, text string, now time.Time) {
	awaiting := missingSlots(conv.PendingIntent, conv.Slots)
	for _, name := range awaiting {
		switch name {
		case model.SlotDate:
			if d, err := uc.normalizer.ParseDate(text, now); err == nil {
				conv.FillSlot(model.SlotDate, d.Format(model.SlotDateFormat))
				return
			}
		case model.SlotTime:
			if h, m, err := uc.normalizer.ParseTime(text); err == nil {
				conv.FillSlot(model.SlotTime, clockString(h, m))
				return
			}
		}
	}
}

func clockString(hour, minute int) string {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC).Format(model.SlotTimeFormat)
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

func spansOverlap(a, b [2]int) bool {
	if a == b && a[0] == 0 && a[1] == 0 {
		return false
	}
	return a[0] < b[1] && b[0] < a[1]
}

var affirmations = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "yup": true, "sure": true,
	"ok": true, "okay": true, "please": true, "please do": true,
	"go ahead": true, "do it": true, "sounds good": true, "correct": true,
	"right": true, "absolutely": true, "of course": true, "y": true,
}

func isAffirmation(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = strings.Trim(normalized, ".!")
	return affirmations[normalized]
}

// explicitSwitchTarget resolves the mode named in a switch request, toggling
// when the utterance names no mode ("switch modes").
func explicitSwitchTarget(text string, active model.Mode) model.Mode {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "knowledge") || strings.Contains(lower, "question"):
		return model.ModeKnowledge
	case strings.Contains(lower, "appointment") || strings.Contains(lower, "scheduling"):
		return model.ModeAppointment
	case active == model.ModeAppointment:
		return model.ModeKnowledge
	default:
		return model.ModeAppointment
	}
}
