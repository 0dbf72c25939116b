package model

// Slot value formats. Dates and times are carried as canonical strings so
// that repeated normalization of an already-resolved value is a no-op.
const (
	SlotDateFormat = "2006-01-02"
	SlotTimeFormat = "15:04"
)

// Canonical slot names for the dialogue engine.
const (
	SlotPerson     = "person"
	SlotDate       = "date"
	SlotTime       = "time"
	SlotRecurrence = "recurrence"
)

// Appointment is a fully resolved appointment record.
type Appointment struct {
	Person     string // display name, e.g. "Dr Smith"
	Date       string // SlotDateFormat
	Time       string // SlotTimeFormat
	Recurrence string // raw recurrence marker, e.g. "every monday"; empty if none

	// CalendarEventID is the mirrored Google Calendar event, when mirroring
	// is enabled. Empty otherwise.
	CalendarEventID string
}
