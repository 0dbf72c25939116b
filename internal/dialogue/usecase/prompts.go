package usecase

import (
	"fmt"
	"strings"
	"time"

	"appointment-assistant/internal/model"
)

// User-facing phrasing for clarification and confirmation replies. Replies
// are plain text so they read the same over HTTP, Telegram and voice.
const (
	promptInternalApology = "I'm sorry, something went wrong on my end. Let's start over - how can I help you?"
	promptClarifyIntent   = "I'm not sure what you'd like to do. You can schedule, cancel or list appointments, check availability, or ask me a general question."
)

func promptModeSwitchOffer(target model.Mode) string {
	if target == model.ModeKnowledge {
		return "It sounds like you have a general question. Would you like to switch to knowledge mode?"
	}
	return "It sounds like you want to manage appointments. Would you like to switch to appointment mode?"
}

func promptModeSwitched(mode model.Mode) string {
	if mode == model.ModeKnowledge {
		return "Okay, we're in knowledge mode now. What would you like to know?"
	}
	return "Okay, we're in appointment mode now. How can I help with your appointments?"
}

// promptForSlots asks for exactly the missing slots, using the slots already
// gathered to keep the question specific.
func promptForSlots(intent model.Intent, slots map[string]string, missing []string) string {
	if len(missing) > 1 {
		return fmt.Sprintf("I need a bit more information: %s.", humanSlotList(missing))
	}

	person := slots[model.SlotPerson]
	date := slots[model.SlotDate]

	switch missing[0] {
	case model.SlotPerson:
		switch intent {
		case model.IntentCancelAppointment:
			return "Whose appointment would you like to cancel?"
		case model.IntentCheckAvailability:
			return "Whose availability would you like to check?"
		default:
			return "Who would you like to schedule an appointment with?"
		}
	case model.SlotDate:
		switch intent {
		case model.IntentCancelAppointment:
			if person != "" {
				return fmt.Sprintf("On what date is the appointment with %s you'd like to cancel?", person)
			}
			return "On what date is the appointment you'd like to cancel?"
		case model.IntentCheckAvailability:
			if person != "" {
				return fmt.Sprintf("For which date would you like to check %s's availability?", person)
			}
			return "For which date would you like to check availability?"
		default:
			if person != "" {
				return fmt.Sprintf("What day would you like your appointment with %s?", person)
			}
			return "What day would you like the appointment?"
		}
	case model.SlotTime:
		if intent == model.IntentCancelAppointment {
			return "At what time is the appointment you'd like to cancel?"
		}
		if person != "" && date != "" {
			return fmt.Sprintf("What time would you like for your appointment with %s on %s?", person, displayDate(date))
		}
		return "What time would you like the appointment?"
	}
	return fmt.Sprintf("Could you tell me the %s?", missing[0])
}

func promptListNeedsFilter() string {
	return "Would you like to see appointments for a specific person, or for a specific date?"
}

func humanSlotList(slots []string) string {
	named := make([]string, 0, len(slots))
	for _, s := range slots {
		switch s {
		case model.SlotPerson:
			named = append(named, "who the appointment is with")
		case model.SlotDate:
			named = append(named, "the date")
		case model.SlotTime:
			named = append(named, "the time")
		default:
			named = append(named, "the "+s)
		}
	}
	if len(named) == 1 {
		return named[0]
	}
	return strings.Join(named[:len(named)-1], ", ") + " and " + named[len(named)-1]
}

// displayDate renders a canonical slot date for a reply, e.g.
// "Friday, June 20, 2025". Unparseable values pass through unchanged.
func displayDate(slotDate string) string {
	t, err := time.Parse(model.SlotDateFormat, slotDate)
	if err != nil {
		return slotDate
	}
	return t.Format("Monday, January 2, 2006")
}

// displayTime renders a canonical slot time on a 12-hour clock, e.g.
// "3:00 PM".
func displayTime(slotTime string) string {
	t, err := time.Parse(model.SlotTimeFormat, slotTime)
	if err != nil {
		return slotTime
	}
	return t.Format("3:04 PM")
}
