package datemath

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnresolvable is returned when an expression contains no interpretable
// date or time token. Callers treat it as "slot still empty", not a failure.
var ErrUnresolvable = errors.New("datemath: expression is not resolvable")

// Canonical slot representations produced by the parser.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// Resolved is a calendar date and/or a wall-clock time, each of which may be
// absent. It is the only value the rest of the engine builds dates from.
type Resolved struct {
	Date    time.Time // midnight in the parser's location, valid when HasDate
	HasDate bool

	Hour    int
	Minute  int
	HasTime bool
}

// DateString renders the date in the canonical slot format, or "" when absent.
func (r Resolved) DateString() string {
	if !r.HasDate {
		return ""
	}
	return r.Date.Format(DateFormat)
}

// TimeString renders the time in the canonical slot format, or "" when absent.
func (r Resolved) TimeString() string {
	if !r.HasTime {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
}

// DisplayDate renders the date for user-facing prompts,
// e.g. "Monday, June 2, 2025".
func (r Resolved) DisplayDate() string {
	if !r.HasDate {
		return ""
	}
	return r.Date.Format("Monday, January 2, 2006")
}
