package service

import "time"

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// stamp normalizes a clock reading to the precision stored for timestamps.
func stamp(clock Clock) time.Time {
	return clock().UTC().Truncate(time.Millisecond)
}
