package memory_test

import (
	"context"
	"errors"
	"testing"

	"appointment-assistant/internal/dialogue/repository"
	"appointment-assistant/internal/dialogue/repository/memory"
	"appointment-assistant/internal/model"
)

func TestAddAndConflict(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	appt := model.Appointment{Person: "Dr Smith", Date: "2025-06-27", Time: "15:00"}
	if err := s.Add(ctx, appt); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(ctx, appt); !errors.Is(err, repository.ErrConflict) {
		t.Errorf("double booking: err = %v, want ErrConflict", err)
	}

	// Same person, different time is fine.
	appt.Time = "16:00"
	if err := s.Add(ctx, appt); err != nil {
		t.Errorf("Add different time: %v", err)
	}
}

func TestCancel(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	if err := s.Cancel(ctx, "Dr Smith", "2025-06-27", "15:00"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("cancel missing: err = %v, want ErrNotFound", err)
	}

	_ = s.Add(ctx, model.Appointment{Person: "Dr Smith", Date: "2025-06-27", Time: "15:00"})
	if err := s.Cancel(ctx, "Dr Smith", "2025-06-27", "15:00"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if err := s.Cancel(ctx, "Dr Smith", "2025-06-27", "15:00"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("cancel twice: err = %v, want ErrNotFound", err)
	}
}

func TestListFiltersAndOrder(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	seed := []model.Appointment{
		{Person: "John", Date: "2025-06-28", Time: "10:00"},
		{Person: "John", Date: "2025-06-27", Time: "15:00"},
		{Person: "Alice", Date: "2025-06-27", Time: "09:00"},
	}
	for _, a := range seed {
		if err := s.Add(ctx, a); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	t.Run("by person", func(t *testing.T) {
		got, err := s.List(ctx, repository.ListOptions{Person: "John"})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 || got[0].Date != "2025-06-27" || got[1].Date != "2025-06-28" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("by date orders by time", func(t *testing.T) {
		got, err := s.List(ctx, repository.ListOptions{Date: "2025-06-27"})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 || got[0].Person != "Alice" || got[1].Person != "John" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		got, err := s.List(ctx, repository.ListOptions{Person: "Nobody"})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("got %v", got)
		}
	})
}

func TestCheckAvailability(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	_ = s.Add(ctx, model.Appointment{Person: "Dr Smith", Date: "2025-06-27", Time: "15:00"})

	t.Run("specific time booked", func(t *testing.T) {
		av, err := s.CheckAvailability(ctx, "Dr Smith", "2025-06-27", "15:00")
		if err != nil {
			t.Fatal(err)
		}
		if av.Available {
			t.Error("booked slot reported available")
		}
	})

	t.Run("specific time free", func(t *testing.T) {
		av, err := s.CheckAvailability(ctx, "Dr Smith", "2025-06-27", "10:00")
		if err != nil {
			t.Fatal(err)
		}
		if !av.Available {
			t.Error("free slot reported unavailable")
		}
	})

	t.Run("whole day lists open slots", func(t *testing.T) {
		av, err := s.CheckAvailability(ctx, "Dr Smith", "2025-06-27", "")
		if err != nil {
			t.Fatal(err)
		}
		if !av.Available {
			t.Error("day with open slots reported unavailable")
		}
		for _, slot := range av.OpenSlots {
			if slot == "15:00" {
				t.Error("booked slot listed as open")
			}
		}
		if len(av.OpenSlots) != 7 {
			t.Errorf("open slots = %v", av.OpenSlots)
		}
	})
}
