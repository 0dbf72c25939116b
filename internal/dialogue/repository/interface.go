package repository

import (
	"context"
	"errors"

	"appointment-assistant/internal/model"
)

var (
	// ErrNotFound means no matching appointment exists.
	ErrNotFound = errors.New("appointment not found")

	// ErrConflict means the requested slot is already booked.
	ErrConflict = errors.New("appointment slot already booked")
)

// ListOptions filters an appointment lookup. Empty fields match everything.
type ListOptions struct {
	Person string
	Date   string // model.SlotDateFormat
}

// Availability is the store's answer to an availability check.
type Availability struct {
	Available bool
	// OpenSlots lists free times (model.SlotTimeFormat) for the person on
	// the date; populated when the check covers a whole day.
	OpenSlots []string
}

// AppointmentRepository is the persistent appointment store collaborator.
type AppointmentRepository interface {
	// Add books an appointment. Returns ErrConflict when the slot is taken.
	Add(ctx context.Context, appt model.Appointment) error

	// Cancel removes a booked appointment. Returns ErrNotFound when no
	// appointment matches person, date and time exactly.
	Cancel(ctx context.Context, person, date, timeOfDay string) error

	// List returns appointments matching opt, ordered by date then time.
	List(ctx context.Context, opt ListOptions) ([]model.Appointment, error)

	// CheckAvailability reports whether person is free at the given time.
	// An empty timeOfDay means "any time that day" and fills OpenSlots.
	CheckAvailability(ctx context.Context, person, date, timeOfDay string) (Availability, error)
}
