package scheduling

import "time"

// Clock supplies the current instant. Bucketization, the current-time
// indicator and navigation all read time through it so boundary conditions
// are testable with a fixed clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns the wall clock.
func RealClock() Clock { return realClock{} }

// FixedClock returns a clock pinned to the given instant.
func FixedClock(at time.Time) Clock { return fixedClock{at} }

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }
