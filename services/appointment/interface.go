package appointment

import (
	"context"

	"tutorly/models"
)

// AppointmentStore abstracts where appointment state lives. RemoteStore is
// the primary, gateway-backed path: cancellation round-trips to the remote
// API and a full refetch follows. InMemoryStore is the secondary path that
// mutates status optimistically in place. Callers pick a strategy once
// instead of branching per call site.
type AppointmentStore interface {
	List(ctx context.Context, filter models.ParticipantFilter) ([]models.Appointment, error)
	Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	Cancel(ctx context.Context, id string) error
}

// CheckoutProvider mints a checkout redirect URL for a payment payload.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, payload models.CheckoutPayload) (string, error)
}
