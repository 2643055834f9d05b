package scheduling

import (
	"time"

	"tutorly/models"
)

// slotCadence is the fixed step between slot start times. The cursor always
// advances by this much regardless of slot duration, so durations longer
// than 30 minutes produce overlapping slots. That keeps start-time
// granularity at its maximum and is intentional.
const slotCadence = 30 * time.Minute

// SchedulingService derives everything the scheduling screens need from a
// flat appointment list: candidate slots, list-view buckets and positioned
// calendar pages.
type SchedulingService interface {
	DaySlots(date time.Time, duration time.Duration) []models.TimeSlot
	Buckets(appts []models.Appointment, viewerRole string) models.AppointmentBuckets
	CalendarPage(appts []models.Appointment, view models.CalendarView, reference time.Time) models.CalendarPage
	Navigate(view models.CalendarView, reference time.Time, direction string) time.Time
}

// GridOptions are the layout constants of the 24-row calendar grid.
type GridOptions struct {
	// HourHeight is the pixel height of one hour row.
	HourHeight float64
	// MinBlockHeight keeps sub-granular appointments clickable.
	MinBlockHeight float64
}

// DayBounds are the bookable hours of a calendar day.
type DayBounds struct {
	StartHour int
	EndHour   int
}

// DefaultSchedulingService implements SchedulingService.
type DefaultSchedulingService struct {
	Clock  Clock
	Bounds DayBounds
	Grid   GridOptions
	// DefaultSlotDuration applies when a request passes no duration.
	DefaultSlotDuration time.Duration
}

// NewSchedulingService returns a service with the portal's reference
// behavior: 07:00-19:00 days, 30 minute slots, 64px hours, 16px floor.
func NewSchedulingService(clock Clock) *DefaultSchedulingService {
	return &DefaultSchedulingService{
		Clock:               clock,
		Bounds:              DayBounds{StartHour: 7, EndHour: 19},
		Grid:                GridOptions{HourHeight: 64, MinBlockHeight: 16},
		DefaultSlotDuration: 30 * time.Minute,
	}
}
