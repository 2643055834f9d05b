package appointment

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"tutorly/models"
)

// InMemoryStore holds appointments in process memory. Cancel mutates the
// record's status optimistically in place, so a List immediately after a
// Cancel already reflects the transition. Used when the data source is
// local rather than remote, and throughout the tests.
type InMemoryStore struct {
	mu    sync.RWMutex
	appts map[string]models.Appointment
}

// NewInMemoryStore returns a store seeded with the given appointments.
// Records without an ID are assigned one.
func NewInMemoryStore(seed ...models.Appointment) *InMemoryStore {
	store := &InMemoryStore{appts: make(map[string]models.Appointment, len(seed))}
	for _, a := range seed {
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		store.appts[a.ID] = a
	}
	return store
}

// List returns the appointments matching the participant filter, ordered by
// start time for stable output.
func (s *InMemoryStore) List(_ context.Context, filter models.ParticipantFilter) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, a := range s.appts {
		if matchesFilter(a, filter) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (s *InMemoryStore) Create(_ context.Context, appt models.Appointment) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.Status == "" {
		appt.Status = models.StatusPending
	}
	s.appts[appt.ID] = appt
	return &appt, nil
}

// Cancel applies the optimistic status mutation.
func (s *InMemoryStore) Cancel(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, ok := s.appts[id]
	if !ok {
		return NewNotFoundError(id)
	}
	appt.Status = models.StatusCancelled
	s.appts[id] = appt
	return nil
}

// matchesFilter mirrors the remote where predicate: an appointment matches
// when, for every non-empty group, one of its participants is listed.
func matchesFilter(a models.Appointment, filter models.ParticipantFilter) bool {
	if filter.IsZero() {
		return true
	}
	if len(filter.StudentIDs) > 0 && !containsAny(a.Students.IDs(), filter.StudentIDs) {
		return false
	}
	if len(filter.TutorIDs) > 0 && !containsAny(a.Tutors.IDs(), filter.TutorIDs) {
		return false
	}
	if len(filter.ParentIDs) > 0 && !containsAny(a.Parents.IDs(), filter.ParentIDs) {
		return false
	}
	return true
}

func containsAny(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
