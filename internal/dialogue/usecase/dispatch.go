package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"appointment-assistant/internal/contextstore"
	"appointment-assistant/internal/dialogue"
	"appointment-assistant/internal/dialogue/repository"
	"appointment-assistant/internal/model"
	"appointment-assistant/pkg/gcalendar"
)

// dispatch hands a completed command to its collaborator and builds the
// confirmation reply. Outcomes other than OutcomeDispatch leave the pending
// intent in place.
func (uc *implUseCase) dispatch(ctx context.Context, conv *contextstore.Conversation, cmd dialogue.Command) (dialogue.Outcome, error) {
	switch cmd.Intent {
	case model.IntentScheduleAppointment:
		return uc.dispatchSchedule(ctx, conv, cmd)
	case model.IntentCancelAppointment:
		return uc.dispatchCancel(ctx, conv, cmd)
	case model.IntentCheckAvailability:
		return uc.dispatchCheckAvailability(ctx, cmd)
	case model.IntentListAppointments:
		return uc.dispatchList(ctx, cmd)
	}
	return dialogue.Outcome{}, fmt.Errorf("dispatch: unhandled intent %q", cmd.Intent)
}

func (uc *implUseCase) dispatchSchedule(ctx context.Context, conv *contextstore.Conversation, cmd dialogue.Command) (dialogue.Outcome, error) {
	appt := model.Appointment{
		Person:     cmd.Person,
		Date:       cmd.Date,
		Time:       cmd.Time,
		Recurrence: cmd.Recurrence,
	}

	err := uc.repo.Add(ctx, appt)
	if errors.Is(err, repository.ErrConflict) {
		// Keep the pending intent, drop only the contested time.
		delete(conv.Slots, model.SlotTime)
		return dialogue.Outcome{
			Kind:         dialogue.OutcomeClarify,
			MissingSlots: []string{model.SlotTime},
			Reply: fmt.Sprintf("%s is already booked on %s at %s. What other time works for you?",
				cmd.Person, displayDate(cmd.Date), displayTime(cmd.Time)),
		}, nil
	}
	if err != nil {
		return dialogue.Outcome{}, fmt.Errorf("%w: booking appointment: %v", dialogue.ErrCollaboratorUnavailable, err)
	}

	appt.CalendarEventID = uc.mirrorSchedule(ctx, appt)
	conv.LastAppointment = &appt

	reply := fmt.Sprintf("You're all set! I've scheduled your appointment with %s on %s at %s.",
		cmd.Person, displayDate(cmd.Date), displayTime(cmd.Time))
	if cmd.Recurrence != "" {
		reply = fmt.Sprintf("You're all set! I've scheduled your appointment with %s on %s at %s, repeating %s.",
			cmd.Person, displayDate(cmd.Date), displayTime(cmd.Time), cmd.Recurrence)
	}
	return dialogue.Outcome{Kind: dialogue.OutcomeDispatch, Command: &cmd, Reply: reply}, nil
}

func (uc *implUseCase) dispatchCancel(ctx context.Context, conv *contextstore.Conversation, cmd dialogue.Command) (dialogue.Outcome, error) {
	err := uc.repo.Cancel(ctx, cmd.Person, cmd.Date, cmd.Time)
	if errors.Is(err, repository.ErrNotFound) {
		return dialogue.Outcome{
			Kind:    dialogue.OutcomeDispatch,
			Command: &cmd,
			Reply: fmt.Sprintf("I couldn't find an appointment with %s on %s at %s.",
				cmd.Person, displayDate(cmd.Date), displayTime(cmd.Time)),
		}, nil
	}
	if err != nil {
		return dialogue.Outcome{}, fmt.Errorf("%w: cancelling appointment: %v", dialogue.ErrCollaboratorUnavailable, err)
	}

	if ref := conv.LastAppointment; ref != nil &&
		ref.Person == cmd.Person && ref.Date == cmd.Date && ref.Time == cmd.Time {
		uc.mirrorCancel(ctx, ref.CalendarEventID)
		conv.LastAppointment = nil
	}

	return dialogue.Outcome{
		Kind:    dialogue.OutcomeDispatch,
		Command: &cmd,
		Reply: fmt.Sprintf("Done. Your appointment with %s on %s at %s has been cancelled.",
			cmd.Person, displayDate(cmd.Date), displayTime(cmd.Time)),
	}, nil
}

func (uc *implUseCase) dispatchCheckAvailability(ctx context.Context, cmd dialogue.Command) (dialogue.Outcome, error) {
	av, err := uc.repo.CheckAvailability(ctx, cmd.Person, cmd.Date, cmd.Time)
	if err != nil {
		return dialogue.Outcome{}, fmt.Errorf("%w: checking availability: %v", dialogue.ErrCollaboratorUnavailable, err)
	}

	var reply string
	switch {
	case cmd.Time != "" && av.Available:
		reply = fmt.Sprintf("Yes, %s is available on %s at %s. Would you like to book it?",
			cmd.Person, displayDate(cmd.Date), displayTime(cmd.Time))
	case cmd.Time != "":
		reply = fmt.Sprintf("No, %s is not available on %s at %s.",
			cmd.Person, displayDate(cmd.Date), displayTime(cmd.Time))
	case len(av.OpenSlots) > 0:
		times := make([]string, 0, len(av.OpenSlots))
		for _, slot := range av.OpenSlots {
			times = append(times, displayTime(slot))
		}
		reply = fmt.Sprintf("%s is available on %s at these times: %s.",
			cmd.Person, displayDate(cmd.Date), strings.Join(times, ", "))
	default:
		reply = fmt.Sprintf("%s has no open times on %s.", cmd.Person, displayDate(cmd.Date))
	}

	return dialogue.Outcome{Kind: dialogue.OutcomeDispatch, Command: &cmd, Reply: reply}, nil
}

func (uc *implUseCase) dispatchList(ctx context.Context, cmd dialogue.Command) (dialogue.Outcome, error) {
	items, err := uc.repo.List(ctx, repository.ListOptions{Person: cmd.Person, Date: cmd.Date})
	if err != nil {
		return dialogue.Outcome{}, fmt.Errorf("%w: listing appointments: %v", dialogue.ErrCollaboratorUnavailable, err)
	}

	if len(items) == 0 {
		reply := "I couldn't find any matching appointments."
		if cmd.Person != "" {
			reply = fmt.Sprintf("I couldn't find any appointments with %s.", cmd.Person)
		} else if cmd.Date != "" {
			reply = fmt.Sprintf("I couldn't find any appointments on %s.", displayDate(cmd.Date))
		}
		return dialogue.Outcome{Kind: dialogue.OutcomeDispatch, Command: &cmd, Reply: reply}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I found (%d):", len(items))
	for _, appt := range items {
		fmt.Fprintf(&b, "\n- %s on %s at %s", appt.Person, displayDate(appt.Date), displayTime(appt.Time))
		if appt.Recurrence != "" {
			fmt.Fprintf(&b, " (%s)", appt.Recurrence)
		}
	}
	return dialogue.Outcome{Kind: dialogue.OutcomeDispatch, Command: &cmd, Reply: b.String()}, nil
}

func (uc *implUseCase) dispatchKnowledge(ctx context.Context, conv *contextstore.Conversation, question string) (dialogue.Outcome, error) {
	if uc.oracle == nil {
		return dialogue.Outcome{}, fmt.Errorf("%w: no knowledge oracle configured", dialogue.ErrCollaboratorUnavailable)
	}
	answer, err := uc.oracle.Answer(ctx, question)
	if err != nil {
		return dialogue.Outcome{}, fmt.Errorf("%w: answering question: %v", dialogue.ErrCollaboratorUnavailable, err)
	}
	return dialogue.Outcome{
		Kind:    dialogue.OutcomeDispatch,
		Command: &dialogue.Command{Intent: model.IntentKnowledgeQuery, Query: question},
		Reply:   answer,
	}, nil
}

// mirrorSchedule copies a booked appointment into Google Calendar. Mirroring
// is best-effort: failures are logged and never surface to the user.
func (uc *implUseCase) mirrorSchedule(ctx context.Context, appt model.Appointment) string {
	if uc.calendar == nil {
		return ""
	}

	start, err := time.ParseInLocation(
		model.SlotDateFormat+" "+model.SlotTimeFormat,
		appt.Date+" "+appt.Time,
		uc.normalizer.Location(),
	)
	if err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.mirrorSchedule: bad slot values %q %q: %v", appt.Date, appt.Time, err)
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calendarID,
		Summary:    fmt.Sprintf("Appointment with %s", appt.Person),
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Timezone:   uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.mirrorSchedule: %v", err)
		return ""
	}
	return event.ID
}

func (uc *implUseCase) mirrorCancel(ctx context.Context, eventID string) {
	if uc.calendar == nil || eventID == "" {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, eventID); err != nil {
		uc.l.Warnf(ctx, "dialogue.usecase.mirrorCancel: %v", err)
	}
}
