package models

import "time"

// ReminderPayload is the task body queued for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string    `json:"appointmentId"`
	Title         string    `json:"title"`
	StartTime     time.Time `json:"startTime"`
	StudentIDs    []string  `json:"studentIds,omitempty"`
	TutorIDs      []string  `json:"tutorIds,omitempty"`
	ParentIDs     []string  `json:"parentIds,omitempty"`
}
