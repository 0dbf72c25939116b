package datemath_test

import (
	"errors"
	"testing"
	"time"

	"appointment-assistant/pkg/datemath"
)

func mustParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Not/AZone"); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
	p := mustParser(t)
	if p.Location().String() != "America/New_York" {
		t.Errorf("unexpected location %s", p.Location())
	}
}

func TestParseDate(t *testing.T) {
	p := mustParser(t)
	// Friday, June 20, 2025.
	now := time.Date(2025, 6, 20, 10, 30, 0, 0, p.Location())

	tests := []struct {
		name string
		expr string
		want string // yyyy-mm-dd
	}{
		{"canonical round-trip", "2025-08-01", "2025-08-01"},
		{"iso inside sentence", "let's do 2025-07-04 then", "2025-07-04"},
		{"tomorrow", "tomorrow", "2025-06-21"},
		{"today", "today please", "2025-06-20"},
		{"next monday", "next monday", "2025-06-23"},
		{"next friday skips today", "next friday", "2025-06-27"},
		{"this friday is today", "this friday", "2025-06-20"},
		{"this sunday", "this sunday", "2025-06-22"},
		{"bare weekday upcoming", "wednesday", "2025-06-25"},
		{"next week", "next week", "2025-06-27"},
		{"next month is the 1st", "next month", "2025-07-01"},
		{"in 3 days", "in 3 days", "2025-06-23"},
		{"after 2 weeks", "after 2 weeks", "2025-07-04"},
		{"from now", "2 weeks from now", "2025-07-04"},
		{"from today", "10 days from today", "2025-06-30"},
		{"month day", "june 25", "2025-06-25"},
		{"month day ordinal with year", "march 3rd, 2026", "2026-03-03"},
		{"day of month", "25th of june", "2025-06-25"},
		{"end of month", "end of month", "2025-06-30"},
		{"start of month", "beginning of month", "2025-06-01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.ParseDate(tc.expr, now)
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.expr, err)
			}
			if s := got.Format("2006-01-02"); s != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.expr, s, tc.want)
			}
		})
	}

	t.Run("unresolvable", func(t *testing.T) {
		if _, err := p.ParseDate("the blue elephant", now); !errors.Is(err, datemath.ErrUnresolvable) {
			t.Errorf("expected ErrUnresolvable, got %v", err)
		}
	})
}

func TestParseTime(t *testing.T) {
	p := mustParser(t)

	tests := []struct {
		name             string
		expr             string
		wantHour, wantMin int
	}{
		{"canonical round-trip", "15:04", 15, 4},
		{"clock pm", "3:30 pm", 15, 30},
		{"clock am", "9:15am", 9, 15},
		{"clock 24h", "14:00", 14, 0},
		{"clock no meridiem defaults pm", "3:30", 15, 30},
		{"hour meridiem", "3pm", 15, 0},
		{"hour am", "9 am", 9, 0},
		{"midnight", "12am", 0, 0},
		{"midday", "12pm", 12, 0},
		{"oclock defaults pm", "7 o'clock", 19, 0},
		{"morning", "in the morning", 9, 0},
		{"afternoon", "afternoon", 14, 0},
		{"evening", "evening", 18, 0},
		{"noon", "around noon", 12, 0},
		{"numeric beats period", "evening at 7pm", 19, 0},
		{"bare hour defaults pm", "3", 15, 0},
		{"bare twelve", "12", 12, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, m, err := p.ParseTime(tc.expr)
			if err != nil {
				t.Fatalf("ParseTime(%q): %v", tc.expr, err)
			}
			if h != tc.wantHour || m != tc.wantMin {
				t.Errorf("ParseTime(%q) = %02d:%02d, want %02d:%02d", tc.expr, h, m, tc.wantHour, tc.wantMin)
			}
		})
	}

	t.Run("unresolvable", func(t *testing.T) {
		if _, _, err := p.ParseTime("whenever works"); !errors.Is(err, datemath.ErrUnresolvable) {
			t.Errorf("expected ErrUnresolvable, got %v", err)
		}
	})
}

func TestNormalize(t *testing.T) {
	p := mustParser(t)
	now := time.Date(2025, 6, 20, 10, 30, 0, 0, p.Location())

	t.Run("date and time", func(t *testing.T) {
		r, err := p.Normalize("next friday", "3pm", now)
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		if !r.HasDate || r.DateString() != "2025-06-27" {
			t.Errorf("date = %q", r.DateString())
		}
		if !r.HasTime || r.TimeString() != "15:00" {
			t.Errorf("time = %q", r.TimeString())
		}
	})

	t.Run("idempotent on canonical values", func(t *testing.T) {
		r, err := p.Normalize("2025-06-27", "15:00", now)
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		if r.DateString() != "2025-06-27" || r.TimeString() != "15:00" {
			t.Errorf("got %s %s, canonical values must round-trip unchanged", r.DateString(), r.TimeString())
		}
	})

	t.Run("partial resolution is not an error", func(t *testing.T) {
		r, err := p.Normalize("gibberish", "10am", now)
		if err != nil {
			t.Fatalf("Normalize: %v", err)
		}
		if r.HasDate || !r.HasTime {
			t.Errorf("expected time-only resolution, got HasDate=%v HasTime=%v", r.HasDate, r.HasTime)
		}
	})

	t.Run("nothing resolvable", func(t *testing.T) {
		if _, err := p.Normalize("gibberish", "more gibberish", now); !errors.Is(err, datemath.ErrUnresolvable) {
			t.Errorf("expected ErrUnresolvable, got %v", err)
		}
	})
}
