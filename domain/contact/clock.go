package contact

import "time"

// Timer is a pending callback scheduled on a Clock.
type Timer interface {
	Stop() bool
}

// Clock schedules the form's delayed transitions.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

// SystemClock is the wall clock; callbacks run on their own goroutine.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
