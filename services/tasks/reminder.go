package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"tutorly/models"
)

const TypeAppointmentReminder = "reminder:appointment"

// NewReminderTask builds the asynq task for an appointment reminder firing
// at the given instant.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler queues appointment reminders on the Redis-backed
// task queue, a configurable lead time ahead of the session start.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

// NewAsynqReminderScheduler returns a scheduler enqueueing on client.
func NewAsynqReminderScheduler(client *asynq.Client, lead time.Duration) *AsynqReminderScheduler {
	if lead <= 0 {
		lead = time.Hour
	}
	return &AsynqReminderScheduler{Client: client, Lead: lead}
}

// ScheduleReminder enqueues a reminder for the appointment. Appointments
// starting within the lead window get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, appt models.Appointment) error {
	fireAt := appt.StartTime.Add(-s.Lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		Title:         appt.Title,
		StartTime:     appt.StartTime,
		StudentIDs:    appt.Students.IDs(),
		TutorIDs:      appt.Tutors.IDs(),
		ParentIDs:     appt.Parents.IDs(),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.EnqueueContext(ctx, task, opts...)
	return err
}
