package timeutil

import (
	"time"
)

type Time interface {
	// Now returns the current time.
	Now() time.Time
}

// RealTime reads the system clock.
type RealTime struct{}

func (RealTime) Now() time.Time {
	return time.Now()
}
