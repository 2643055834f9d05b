package models

import "time"

// TimeSlot is a candidate bookable window generated for a single calendar
// day. Slots are derived values with no identity; they are recomputed on
// every request and never persisted.
type TimeSlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Formatted string    `json:"formatted"`
}
