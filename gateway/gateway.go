package gateway

import (
	"context"

	"tutorly/models"
)

// AppointmentGateway is the client for the remote appointments collection
// API, the system of record for all appointment state. This service only
// ever writes through Cancel, Create and CreateCheckoutSession; every other
// status transition is server-driven and observed on the next List.
type AppointmentGateway interface {
	// List fetches the flat appointment list for the given participant
	// filter, unwrapping the remote pagination envelope.
	List(ctx context.Context, filter models.ParticipantFilter) ([]models.Appointment, error)
	// Cancel transitions an appointment to cancelled.
	Cancel(ctx context.Context, id string) error
	// Create books a new appointment.
	Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	// CreateCheckoutSession requests a checkout redirect URL.
	CreateCheckoutSession(ctx context.Context, payload models.CheckoutPayload) (string, error)
}

// TokenStore holds the bearer credential sent with every gateway request.
// A 401 from the remote API clears it.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
