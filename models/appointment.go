package models

import "time"

// Status is the lifecycle state of an appointment. Transitions are driven
// by the remote API except for the client-initiated cancel, which is only
// valid from pending or confirmed.
type Status string

const (
	StatusPending         Status = "pending"
	StatusConfirmed       Status = "confirmed"
	StatusCancelled       Status = "cancelled"
	StatusCompleted       Status = "completed"
	StatusAwaitingPayment Status = "awaiting_payment"
)

// Cancellable reports whether a client-initiated cancel is still allowed.
func (s Status) Cancellable() bool {
	return s != StatusCancelled && s != StatusCompleted
}

// Payment is the payment record attached to an appointment, if any.
type Payment struct {
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// Appointment is a scheduled tutoring session.
type Appointment struct {
	ID        string          `json:"id"`
	Title     string          `json:"title,omitempty"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	Status    Status          `json:"status"`
	Students  ParticipantList `json:"students,omitempty"`
	Tutors    ParticipantList `json:"tutors,omitempty"`
	Parents   ParticipantList `json:"parents,omitempty"`
	// Notes is raw HTML and must be sanitized before rendering.
	Notes   string   `json:"notes,omitempty"`
	Price   float64  `json:"price,omitempty"`
	Payment *Payment `json:"payment,omitempty"`
}

// Duration is the appointment length. StartTime < EndTime is an invariant
// of records served by the remote API.
func (a Appointment) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// ListEnvelope is the paginated wrapper the remote collection endpoint
// returns; Docs is the flat list this service consumes.
type ListEnvelope struct {
	Docs        []Appointment `json:"docs"`
	TotalDocs   int           `json:"totalDocs"`
	Limit       int           `json:"limit"`
	Page        int           `json:"page"`
	TotalPages  int           `json:"totalPages"`
	HasNextPage bool          `json:"hasNextPage"`
	HasPrevPage bool          `json:"hasPrevPage"`
}

// ParticipantFilter selects appointments by participant membership. Empty
// groups are omitted from the remote query.
type ParticipantFilter struct {
	StudentIDs []string
	TutorIDs   []string
	ParentIDs  []string
}

// IsZero reports whether no participant constraint is set.
func (f ParticipantFilter) IsZero() bool {
	return len(f.StudentIDs) == 0 && len(f.TutorIDs) == 0 && len(f.ParentIDs) == 0
}

// CheckoutPayload is the request body for checkout session creation.
type CheckoutPayload struct {
	AppointmentID string   `json:"appointmentId"`
	Title         string   `json:"title,omitempty"`
	Amount        float64  `json:"amount"`
	StudentIDs    []string `json:"studentIds,omitempty"`
	TutorIDs      []string `json:"tutorIds,omitempty"`
	ParentIDs     []string `json:"parentIds,omitempty"`
}

// AppointmentBuckets is the list-view partition of a flat appointment list.
// Upcoming, Past and Cancelled are mutually exclusive tab buckets;
// AwaitingPayment is an orthogonal status cut shown to student and parent
// viewers only.
type AppointmentBuckets struct {
	Upcoming        []Appointment `json:"upcoming"`
	Past            []Appointment `json:"past"`
	Cancelled       []Appointment `json:"cancelled"`
	AwaitingPayment []Appointment `json:"awaitingPayment,omitempty"`
}
