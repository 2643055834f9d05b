package appointment

import (
	"context"

	"go.uber.org/zap"

	"tutorly/models"
	"tutorly/utils"
)

// ReminderScheduler queues an appointment reminder. Scheduling failures are
// logged, never surfaced; reminders are best-effort.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt models.Appointment) error
}

// AppointmentService drives the appointment screens: listing, creation,
// cancellation and payment checkout.
type AppointmentService interface {
	List(ctx context.Context, filter models.ParticipantFilter) ([]models.Appointment, error)
	Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	// Cancel checks the status precondition against the viewer's current
	// list, issues the transition and returns the refetched list.
	Cancel(ctx context.Context, filter models.ParticipantFilter, id string) ([]models.Appointment, error)
	// Checkout computes the payment payload for the appointment and
	// returns the redirect URL.
	Checkout(ctx context.Context, filter models.ParticipantFilter, id string) (string, error)
}

// DefaultAppointmentService implements AppointmentService over a store
// strategy and a checkout provider.
type DefaultAppointmentService struct {
	Store             AppointmentStore
	CheckoutProvider  CheckoutProvider
	Reminders         ReminderScheduler
	Logger            *zap.Logger
	DefaultHourlyRate float64
}

var _ AppointmentService = (*DefaultAppointmentService)(nil)

// List fetches the viewer's appointments with notes sanitized for render.
func (s *DefaultAppointmentService) List(ctx context.Context, filter models.ParticipantFilter) ([]models.Appointment, error) {
	appts, err := s.Store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range appts {
		appts[i].Notes = utils.SanitizeNotes(appts[i].Notes)
	}
	return appts, nil
}

// Create books a new appointment and queues its reminder.
func (s *DefaultAppointmentService) Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	created, err := s.Store.Create(ctx, appt)
	if err != nil {
		return nil, err
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, *created); err != nil {
			s.Logger.Warn("failed to schedule reminder",
				zap.String("appointmentID", created.ID), zap.Error(err))
		}
	}
	return created, nil
}

// Cancel rejects appointments that are already cancelled or completed
// before any network call reaches the store.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, filter models.ParticipantFilter, id string) ([]models.Appointment, error) {
	appts, err := s.Store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	target, ok := findByID(appts, id)
	if !ok {
		return nil, NewNotFoundError(id)
	}
	if !target.Status.Cancellable() {
		return nil, NewNotCancellableError(string(target.Status))
	}

	if err := s.Store.Cancel(ctx, id); err != nil {
		return nil, err
	}
	s.Logger.Info("appointment cancelled", zap.String("appointmentID", id))

	// Full refetch rather than local mutation; with the in-memory store the
	// optimistic mutation is already visible here.
	return s.List(ctx, filter)
}

// Checkout builds the payment payload and obtains a redirect URL. The
// caller performs the navigation; completion is observed on a later List
// once the payment webhook lands.
func (s *DefaultAppointmentService) Checkout(ctx context.Context, filter models.ParticipantFilter, id string) (string, error) {
	appts, err := s.Store.List(ctx, filter)
	if err != nil {
		return "", err
	}
	target, ok := findByID(appts, id)
	if !ok {
		return "", NewNotFoundError(id)
	}

	payload := models.CheckoutPayload{
		AppointmentID: target.ID,
		Title:         target.Title,
		Amount:        ChargeAmount(target, s.DefaultHourlyRate),
		StudentIDs:    target.Students.IDs(),
		TutorIDs:      target.Tutors.IDs(),
		ParentIDs:     target.Parents.IDs(),
	}

	url, err := s.CheckoutProvider.CreateSession(ctx, payload)
	if err != nil {
		return "", err
	}
	s.Logger.Info("checkout session created", zap.String("appointmentID", id))
	return url, nil
}

func findByID(appts []models.Appointment, id string) (models.Appointment, bool) {
	for _, a := range appts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}
