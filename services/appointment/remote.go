package appointment

import (
	"context"

	"tutorly/gateway"
	"tutorly/models"
)

// RemoteStore keeps all appointment state on the remote API. No local copy
// is held between calls; every List is a fresh fetch.
type RemoteStore struct {
	Gateway gateway.AppointmentGateway
}

// NewRemoteStore returns a store backed by the given gateway.
func NewRemoteStore(gw gateway.AppointmentGateway) *RemoteStore {
	return &RemoteStore{Gateway: gw}
}

func (s *RemoteStore) List(ctx context.Context, filter models.ParticipantFilter) ([]models.Appointment, error) {
	return s.Gateway.List(ctx, filter)
}

func (s *RemoteStore) Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	return s.Gateway.Create(ctx, appt)
}

func (s *RemoteStore) Cancel(ctx context.Context, id string) error {
	return s.Gateway.Cancel(ctx, id)
}
