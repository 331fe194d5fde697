package kernel

import "time"

// Clock supplies the timestamps recorded on lifecycle transitions.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reports the wall clock in UTC truncated to microseconds, the precision PostgreSQL keeps.
var SystemClock Clock = ClockFunc(func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
})
