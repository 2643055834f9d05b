package models

import "time"

// CalendarView is the rendering granularity of the calendar.
type CalendarView string

const (
	ViewDay   CalendarView = "day"
	ViewWeek  CalendarView = "week"
	ViewMonth CalendarView = "month"
)

// Valid reports whether v is a known granularity.
func (v CalendarView) Valid() bool {
	return v == ViewDay || v == ViewWeek || v == ViewMonth
}

// PositionedAppointment is an appointment mapped onto the 24-hour grid.
// Top and Height are pixel values derived from the hour height.
type PositionedAppointment struct {
	Appointment
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// CalendarPage is one rendered page of the calendar: the visible
// appointments positioned on the grid plus navigation targets.
type CalendarPage struct {
	View       CalendarView            `json:"view"`
	Reference  time.Time               `json:"reference"`
	RangeStart time.Time               `json:"rangeStart"`
	RangeEnd   time.Time               `json:"rangeEnd"`
	Title      string                  `json:"title"`
	Visible    []PositionedAppointment `json:"visible"`
	// NowOffset is the current-time indicator position; nil unless the
	// rendered day is the current calendar day.
	NowOffset *float64  `json:"nowOffset,omitempty"`
	Previous  time.Time `json:"previous"`
	Next      time.Time `json:"next"`
	Today     time.Time `json:"today"`
}
