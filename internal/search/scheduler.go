package search

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Timer is a pending delayed call
type Timer interface {
	// Stop cancels the call. It reports false if the call already ran or
	// was already stopped.
	Stop() bool
}

// Scheduler schedules fire-once delayed calls
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ClockScheduler schedules calls on a clock.Clock
type ClockScheduler struct {
	clock clock.Clock
}

// NewClockScheduler returns a scheduler backed by c
func NewClockScheduler(c clock.Clock) *ClockScheduler {
	return &ClockScheduler{clock: c}
}

func (s *ClockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return s.clock.AfterFunc(d, f)
}
