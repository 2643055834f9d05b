package scheduling

import (
	"fmt"
	"time"

	"tutorly/models"
)

// Navigation directions.
const (
	DirectionNext     = "next"
	DirectionPrevious = "previous"
	DirectionToday    = "today"
)

// CalendarPage renders one page of the calendar: the appointments whose
// start falls inside the view's date range, each positioned on the 24-hour
// grid, plus the page title and navigation targets.
func (s *DefaultSchedulingService) CalendarPage(appts []models.Appointment, view models.CalendarView, reference time.Time) models.CalendarPage {
	rangeStart, rangeEnd := s.visibleRange(view, reference)

	var visible []models.PositionedAppointment
	for _, a := range appts {
		if a.StartTime.Before(rangeStart) || !a.StartTime.Before(rangeEnd) {
			continue
		}
		top, height := s.Position(a)
		visible = append(visible, models.PositionedAppointment{
			Appointment: a,
			Top:         top,
			Height:      height,
		})
	}

	now := s.Clock.Now()
	page := models.CalendarPage{
		View:       view,
		Reference:  reference,
		RangeStart: rangeStart,
		// RangeEnd is reported inclusive: the last instant still on the page.
		RangeEnd: rangeEnd.Add(-time.Nanosecond),
		Title:    s.Title(view, reference),
		Visible:  visible,
		Previous: s.Navigate(view, reference, DirectionPrevious),
		Next:     s.Navigate(view, reference, DirectionNext),
		Today:    startOfDay(now),
	}

	// The current-time indicator is drawn only when the rendered day is the
	// current calendar day.
	if view == models.ViewDay && sameDay(reference, now) {
		offset := s.offsetFor(now)
		page.NowOffset = &offset
	}
	return page
}

// Position maps an appointment onto the grid: vertical offset proportional
// to minutes elapsed since midnight, height proportional to duration with a
// floor so sub-granular appointments stay visible and clickable.
func (s *DefaultSchedulingService) Position(a models.Appointment) (top, height float64) {
	top = s.offsetFor(a.StartTime)
	height = a.Duration().Minutes() / 60 * s.Grid.HourHeight
	if height < s.Grid.MinBlockHeight {
		height = s.Grid.MinBlockHeight
	}
	return top, height
}

func (s *DefaultSchedulingService) offsetFor(t time.Time) float64 {
	minutes := float64(t.Hour()*60 + t.Minute())
	return minutes / 60 * s.Grid.HourHeight
}

// Navigate shifts the reference date by one page in the given direction:
// a day, a week or a month depending on the view. DirectionToday resets to
// the clock's current day.
func (s *DefaultSchedulingService) Navigate(view models.CalendarView, reference time.Time, direction string) time.Time {
	if direction == DirectionToday {
		return startOfDay(s.Clock.Now())
	}

	step := 1
	if direction == DirectionPrevious {
		step = -1
	}
	switch view {
	case models.ViewWeek:
		return reference.AddDate(0, 0, 7*step)
	case models.ViewMonth:
		return reference.AddDate(0, step, 0)
	default:
		return reference.AddDate(0, 0, step)
	}
}

// Title formats the page heading for the view.
func (s *DefaultSchedulingService) Title(view models.CalendarView, reference time.Time) string {
	switch view {
	case models.ViewWeek:
		start, end := s.visibleRange(models.ViewWeek, reference)
		return weekTitle(start, end.Add(-time.Nanosecond))
	case models.ViewMonth:
		return reference.Format("January 2006")
	default:
		return reference.Format("Monday, January 2, 2006")
	}
}

// weekTitle renders a week range, collapsing the month and year when the
// week does not span them.
func weekTitle(start, end time.Time) string {
	switch {
	case start.Year() != end.Year():
		return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
	case start.Month() != end.Month():
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	default:
		return fmt.Sprintf("%s - %d, %d", start.Format("January 2"), end.Day(), end.Year())
	}
}

// visibleRange returns the half-open [start, end) window of the view: the
// single day, the Sunday-through-Saturday week, or the calendar month
// containing the reference date.
func (s *DefaultSchedulingService) visibleRange(view models.CalendarView, reference time.Time) (time.Time, time.Time) {
	day := startOfDay(reference)
	switch view {
	case models.ViewWeek:
		weekStart := day.AddDate(0, 0, -int(day.Weekday()))
		return weekStart, weekStart.AddDate(0, 0, 7)
	case models.ViewMonth:
		monthStart := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return monthStart, monthStart.AddDate(0, 1, 0)
	default:
		return day, day.AddDate(0, 0, 1)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
