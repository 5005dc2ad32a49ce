package clock

import (
	"time"

	"cloud.google.com/go/civil"
)

// Clock is a small abstraction for obtaining the current time.
type Clock interface {
	Now() time.Time
}

// RealClock returns the real current time.
type RealClock struct{}

// Now returns the current time in UTC.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Today returns the calendar date of c in UTC.
func Today(c Clock) civil.Date {
	return civil.DateOf(c.Now().UTC())
}

// FakeClock is a controllable clock for tests.
type FakeClock struct {
	now time.Time
}

// NewFake creates a FakeClock set to t.
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

func (f *FakeClock) Now() time.Time {
	return f.now
}

func (f *FakeClock) Set(t time.Time) {
	f.now = t
}

// AdvanceDays moves the fake clock forward by n calendar days.
func (f *FakeClock) AdvanceDays(n int) {
	f.now = f.now.AddDate(0, 0, n)
}
