package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorly/models"
)

func TestPosition_LinearOffset(t *testing.T) {
	svc := newTestService(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))

	a := appt("a1", models.StatusConfirmed, time.Date(2025, 4, 15, 7, 30, 0, 0, time.UTC))
	a.EndTime = a.StartTime.Add(time.Hour)

	top, height := svc.Position(a)
	assert.Equal(t, 7.5*64, top)
	assert.Equal(t, 64.0, height)

	// Doubling the duration doubles the height.
	a.EndTime = a.StartTime.Add(2 * time.Hour)
	_, height = svc.Position(a)
	assert.Equal(t, 128.0, height)
}

func TestPosition_MinimumHeightFloor(t *testing.T) {
	svc := newTestService(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))

	a := appt("a1", models.StatusConfirmed, time.Date(2025, 4, 15, 9, 0, 0, 0, time.UTC))
	a.EndTime = a.StartTime.Add(5 * time.Minute)

	_, height := svc.Position(a)
	assert.Equal(t, 16.0, height)
}

func TestCalendarPage_DayRangeMembership(t *testing.T) {
	now := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	inside := appt("in", models.StatusConfirmed, time.Date(2025, 4, 15, 13, 0, 0, 0, time.UTC))
	outside := appt("out", models.StatusConfirmed, time.Date(2025, 4, 16, 13, 0, 0, 0, time.UTC))

	page := svc.CalendarPage([]models.Appointment{inside, outside}, models.ViewDay, now)
	require.Len(t, page.Visible, 1)
	assert.Equal(t, "in", page.Visible[0].ID)

	// Rendered day is today, so the current-time indicator is drawn.
	require.NotNil(t, page.NowOffset)
	assert.Equal(t, 10.0*64, *page.NowOffset)
}

func TestCalendarPage_NoIndicatorOnOtherDays(t *testing.T) {
	now := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	page := svc.CalendarPage(nil, models.ViewDay, now.AddDate(0, 0, 1))
	assert.Nil(t, page.NowOffset)
}

func TestCalendarPage_WeekRange(t *testing.T) {
	now := time.Date(2025, 4, 16, 10, 0, 0, 0, time.UTC) // a Wednesday
	svc := newTestService(now)

	sunday := appt("sun", models.StatusConfirmed, time.Date(2025, 4, 13, 9, 0, 0, 0, time.UTC))
	saturday := appt("sat", models.StatusConfirmed, time.Date(2025, 4, 19, 21, 0, 0, 0, time.UTC))
	nextSunday := appt("next", models.StatusConfirmed, time.Date(2025, 4, 20, 9, 0, 0, 0, time.UTC))

	page := svc.CalendarPage([]models.Appointment{sunday, saturday, nextSunday}, models.ViewWeek, now)
	require.Len(t, page.Visible, 2)
	assert.Equal(t, time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC), page.RangeStart)
}

func TestCalendarPage_MonthRange(t *testing.T) {
	now := time.Date(2025, 4, 16, 10, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	first := appt("first", models.StatusConfirmed, time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC))
	last := appt("last", models.StatusConfirmed, time.Date(2025, 4, 30, 23, 0, 0, 0, time.UTC))
	may := appt("may", models.StatusConfirmed, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))

	page := svc.CalendarPage([]models.Appointment{first, last, may}, models.ViewMonth, now)
	assert.Len(t, page.Visible, 2)
}

func TestNavigate(t *testing.T) {
	now := time.Date(2025, 4, 16, 10, 30, 0, 0, time.UTC)
	svc := newTestService(now)
	ref := time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		view      models.CalendarView
		direction string
		want      time.Time
	}{
		{models.ViewDay, DirectionNext, ref.AddDate(0, 0, 1)},
		{models.ViewDay, DirectionPrevious, ref.AddDate(0, 0, -1)},
		{models.ViewWeek, DirectionNext, ref.AddDate(0, 0, 7)},
		{models.ViewWeek, DirectionPrevious, ref.AddDate(0, 0, -7)},
		{models.ViewMonth, DirectionNext, ref.AddDate(0, 1, 0)},
		{models.ViewMonth, DirectionPrevious, ref.AddDate(0, -1, 0)},
		{models.ViewWeek, DirectionToday, time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got := svc.Navigate(tt.view, ref, tt.direction)
		if !got.Equal(tt.want) {
			t.Errorf("Navigate(%s, %s) = %s, want %s", tt.view, tt.direction, got, tt.want)
		}
	}
}

func TestTitle(t *testing.T) {
	svc := newTestService(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		view models.CalendarView
		ref  time.Time
		want string
	}{
		{"day", models.ViewDay, time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC), "Wednesday, April 16, 2025"},
		{"month", models.ViewMonth, time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC), "April 2025"},
		{"week same month", models.ViewWeek, time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC), "April 13 - 19, 2025"},
		{"week spanning months", models.ViewWeek, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), "Apr 27 - May 3, 2025"},
		{"week spanning years", models.ViewWeek, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "Dec 28, 2025 - Jan 3, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Title(tt.view, tt.ref))
		})
	}
}
