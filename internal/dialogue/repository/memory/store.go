// Package memory is an in-process appointment store. It mirrors the
// interface of the external persistent store so the dialogue engine can be
// run and tested without one.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"appointment-assistant/internal/dialogue/repository"
	"appointment-assistant/internal/model"
)

// Default working hours offered when no explicit availability is configured:
// hourly slots from 09:00 through 16:00.
var defaultSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00",
}

// Store is a thread-safe in-memory AppointmentRepository.
type Store struct {
	mu    sync.RWMutex
	byKey map[string]model.Appointment
}

var _ repository.AppointmentRepository = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{byKey: make(map[string]model.Appointment)}
}

func key(person, date, timeOfDay string) string {
	return fmt.Sprintf("%s|%s|%s", person, date, timeOfDay)
}

// Add books an appointment, rejecting double bookings for the same person,
// date and time.
func (s *Store) Add(ctx context.Context, appt model.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(appt.Person, appt.Date, appt.Time)
	if _, exists := s.byKey[k]; exists {
		return repository.ErrConflict
	}
	s.byKey[k] = appt
	return nil
}

// Cancel removes an appointment matching person, date and time exactly.
func (s *Store) Cancel(ctx context.Context, person, date, timeOfDay string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(person, date, timeOfDay)
	if _, exists := s.byKey[k]; !exists {
		return repository.ErrNotFound
	}
	delete(s.byKey, k)
	return nil
}

// List returns appointments matching opt, ordered by date then time.
func (s *Store) List(ctx context.Context, opt repository.ListOptions) ([]model.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Appointment
	for _, appt := range s.byKey {
		if opt.Person != "" && appt.Person != opt.Person {
			continue
		}
		if opt.Date != "" && appt.Date != opt.Date {
			continue
		}
		out = append(out, appt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// CheckAvailability reports whether person is free at the given time. With
// an empty timeOfDay it returns the person's remaining open slots that day.
func (s *Store) CheckAvailability(ctx context.Context, person, date, timeOfDay string) (repository.Availability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if timeOfDay != "" {
		_, booked := s.byKey[key(person, date, timeOfDay)]
		return repository.Availability{Available: !booked}, nil
	}

	var open []string
	for _, slot := range defaultSlots {
		if _, booked := s.byKey[key(person, date, slot)]; !booked {
			open = append(open, slot)
		}
	}
	return repository.Availability{Available: len(open) > 0, OpenSlots: open}, nil
}
