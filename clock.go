package memocache

import (
	"time"
)

// Clock is an interface for getting the current time.
// A timed store never reads the wall clock directly; it asks its injected
// Clock, so tests can control time deterministically.
type Clock interface {
	Now() time.Time
}

// ClockFunc is a function type that implements the Clock interface.
type ClockFunc func() time.Time

// Now calls the function.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock is the default clock backed by time.Now.
var SystemClock Clock = ClockFunc(time.Now)
