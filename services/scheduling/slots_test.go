package scheduling

import (
	"testing"
	"time"
)

func newTestService(now time.Time) *DefaultSchedulingService {
	return NewSchedulingService(FixedClock(now))
}

func TestDaySlots_Cadence(t *testing.T) {
	svc := newTestService(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
	day := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	slots := svc.DaySlots(day, 30*time.Minute)

	// 07:00 through 18:30 on a 30-minute cadence.
	if len(slots) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(slots))
	}

	first := time.Date(2025, 4, 15, 7, 0, 0, 0, time.UTC)
	if !slots[0].StartTime.Equal(first) {
		t.Fatalf("expected first slot at 07:00, got %s", slots[0].StartTime.Format(time.RFC3339))
	}

	bound := time.Date(2025, 4, 15, 19, 0, 0, 0, time.UTC)
	for i, slot := range slots {
		if !slot.StartTime.Before(bound) {
			t.Fatalf("slot %d starts at or past 19:00: %s", i, slot.StartTime.Format(time.RFC3339))
		}
		if i > 0 {
			gap := slot.StartTime.Sub(slots[i-1].StartTime)
			if gap != 30*time.Minute {
				t.Fatalf("slot %d is %s after its predecessor, want 30m", i, gap)
			}
		}
	}
}

func TestDaySlots_LongDurationsOverlap(t *testing.T) {
	svc := newTestService(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
	day := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	// The cursor advances 30 minutes per iteration regardless of duration,
	// so 60-minute slots overlap their successors.
	slots := svc.DaySlots(day, 60*time.Minute)

	if len(slots) != 24 {
		t.Fatalf("expected 24 slots regardless of duration, got %d", len(slots))
	}
	for i, slot := range slots {
		if got := slot.EndTime.Sub(slot.StartTime); got != 60*time.Minute {
			t.Fatalf("slot %d duration = %s, want 1h", i, got)
		}
		if i > 0 && !slots[i-1].EndTime.After(slot.StartTime) {
			t.Fatalf("slot %d does not overlap its predecessor", i)
		}
	}
}

func TestDaySlots_DefaultDurationAndFormat(t *testing.T) {
	svc := newTestService(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
	day := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	slots := svc.DaySlots(day, 0)
	if len(slots) == 0 {
		t.Fatal("expected slots with default duration")
	}
	if got := slots[0].EndTime.Sub(slots[0].StartTime); got != 30*time.Minute {
		t.Fatalf("default duration = %s, want 30m", got)
	}
	if slots[0].Formatted != "7:00 AM - 7:30 AM" {
		t.Fatalf("formatted = %q", slots[0].Formatted)
	}
}

func TestDaySlots_FreshPerCall(t *testing.T) {
	svc := newTestService(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
	day := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	a := svc.DaySlots(day, 30*time.Minute)
	b := svc.DaySlots(day, 30*time.Minute)
	if len(a) != len(b) {
		t.Fatalf("restarted sequence differs in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].StartTime.Equal(b[i].StartTime) || !a[i].EndTime.Equal(b[i].EndTime) {
			t.Fatalf("slot %d differs between calls", i)
		}
	}
}
