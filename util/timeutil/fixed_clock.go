package timeutil

import "time"

// FixedClock always reports the same instant. Rules that compare against the
// current date use it in tests.
type FixedClock struct {
	At time.Time
}

var _ Time = FixedClock{}

func (c FixedClock) Now() time.Time {
	return c.At
}
