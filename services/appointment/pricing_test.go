package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tutorly/models"
)

func makeAppt(price float64, duration time.Duration, tutors models.ParticipantList) models.Appointment {
	start := time.Date(2025, 4, 15, 13, 0, 0, 0, time.UTC)
	return models.Appointment{
		ID:        "appt-1",
		StartTime: start,
		EndTime:   start.Add(duration),
		Price:     price,
		Tutors:    tutors,
	}
}

func TestChargeAmount(t *testing.T) {
	tests := []struct {
		name string
		appt models.Appointment
		want float64
	}{
		{
			name: "stored price wins",
			appt: makeAppt(75, time.Hour, models.Refs("t1")),
			want: 75,
		},
		{
			name: "zero price derives from tutor rate times duration",
			appt: makeAppt(0, 90*time.Minute, models.ParticipantList{
				models.ParticipantUser(models.User{ID: "t1", HourlyRate: 40}),
			}),
			want: 60,
		},
		{
			name: "bare tutor reference falls back to default rate",
			appt: makeAppt(0, 2*time.Hour, models.Refs("t1")),
			want: 100,
		},
		{
			name: "expanded tutor without a rate falls back to default",
			appt: makeAppt(0, time.Hour, models.ParticipantList{
				models.ParticipantUser(models.User{ID: "t1"}),
			}),
			want: 50,
		},
		{
			name: "rates sum across tutors",
			appt: makeAppt(0, time.Hour, models.ParticipantList{
				models.ParticipantUser(models.User{ID: "t1", HourlyRate: 40}),
				models.ParticipantUser(models.User{ID: "t2", HourlyRate: 60}),
			}),
			want: 100,
		},
		{
			name: "no tutors means nothing to charge",
			appt: makeAppt(0, time.Hour, nil),
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ChargeAmount(tt.appt, DefaultHourlyRate), 1e-9)
		})
	}
}
