package scheduling

import (
	"time"

	"tutorly/models"
)

// IsUpcoming reports whether a belongs to the upcoming time cut: a future
// start and a status that is neither cancelled nor completed.
func IsUpcoming(a models.Appointment, now time.Time) bool {
	return a.Status != models.StatusCancelled &&
		a.Status != models.StatusCompleted &&
		a.StartTime.After(now)
}

// IsPast reports whether a belongs to the past time cut: completed, or a
// start at or before now. The start == now boundary lands here.
func IsPast(a models.Appointment, now time.Time) bool {
	return a.Status == models.StatusCompleted || !a.StartTime.After(now)
}

// Buckets partitions a flat appointment list into the list-view categories.
// Cancelled is the primary bucket for cancelled records (a cancelled future
// appointment never shows as upcoming); everything else splits between
// upcoming and past on the time axis. Awaiting-payment is an orthogonal
// status cut, visible to student and parent viewers only, and its members
// also keep their time-based tab. The partition is recomputed against the
// clock on every call.
func (s *DefaultSchedulingService) Buckets(appts []models.Appointment, viewerRole string) models.AppointmentBuckets {
	now := s.Clock.Now()
	showAwaiting := viewerRole == models.RoleStudent || viewerRole == models.RoleParent

	var buckets models.AppointmentBuckets
	for _, a := range appts {
		switch {
		case a.Status == models.StatusCancelled:
			buckets.Cancelled = append(buckets.Cancelled, a)
		case IsUpcoming(a, now):
			buckets.Upcoming = append(buckets.Upcoming, a)
		default:
			buckets.Past = append(buckets.Past, a)
		}

		if showAwaiting && a.Status == models.StatusAwaitingPayment {
			buckets.AwaitingPayment = append(buckets.AwaitingPayment, a)
		}
	}
	return buckets
}
