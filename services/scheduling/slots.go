package scheduling

import (
	"time"

	"tutorly/models"
)

// DaySlots generates the candidate bookable windows for one calendar day.
// Starts run from the day's opening hour and step forward on the fixed
// 30-minute cadence until the closing hour; each slot's end is its start
// plus the requested duration, so slots longer than the cadence overlap
// their successors. The sequence is recomputed fresh on every call.
func (s *DefaultSchedulingService) DaySlots(date time.Time, duration time.Duration) []models.TimeSlot {
	if duration <= 0 {
		duration = s.DefaultSlotDuration
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), s.Bounds.StartHour, 0, 0, 0, date.Location())
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), s.Bounds.EndHour, 0, 0, 0, date.Location())

	var slots []models.TimeSlot
	for cursor := dayStart; cursor.Before(dayEnd); cursor = cursor.Add(slotCadence) {
		end := cursor.Add(duration)
		slots = append(slots, models.TimeSlot{
			StartTime: cursor,
			EndTime:   end,
			Formatted: formatSlotRange(cursor, end),
		})
	}
	return slots
}

func formatSlotRange(start, end time.Time) string {
	return start.Format("3:04 PM") + " - " + end.Format("3:04 PM")
}
