package appointment

import "tutorly/models"

// DefaultHourlyRate applies when a tutor's rate is unspecified.
const DefaultHourlyRate = 50.0

// ChargeAmount returns what the appointment costs. A stored positive price
// wins; otherwise the price is derived from tutor hourly rates times the
// appointment duration. Bare tutor references carry no rate and fall back
// to the default, as do expanded tutors with a zero rate.
func ChargeAmount(a models.Appointment, defaultRate float64) float64 {
	if a.Price > 0 {
		return a.Price
	}
	if defaultRate <= 0 {
		defaultRate = DefaultHourlyRate
	}

	hours := a.Duration().Hours()
	if hours < 0 {
		hours = 0
	}

	var total float64
	for _, p := range a.Tutors {
		rate := defaultRate
		if u, ok := p.User(); ok && u.HourlyRate > 0 {
			rate = u.HourlyRate
		}
		total += rate * hours
	}
	return total
}
