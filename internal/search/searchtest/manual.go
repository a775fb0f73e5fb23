// Package searchtest provides test doubles for the search package.
package searchtest

import (
	"sort"
	"sync"
	"time"

	"faqdesk/internal/search"
)

// ManualScheduler is a search.Scheduler whose time only moves when Advance
// is called. Callbacks run synchronously inside Advance, in due order.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
	fired  int
}

type manualTimer struct {
	s       *ManualScheduler
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

// NewManualScheduler returns a scheduler positioned at time zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) search.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &manualTimer{s: s, at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves time forward by d and runs every timer that falls due
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d

	for {
		due := s.dueLocked(target)
		if due == nil {
			break
		}
		s.now = due.at
		due.fired = true
		s.fired++
		s.mu.Unlock()
		due.f()
		s.mu.Lock()
	}

	s.now = target
	s.pruneLocked()
	s.mu.Unlock()
}

// Now returns the elapsed virtual time
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of timers that are neither fired nor stopped
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

// Fired returns how many callbacks have run
func (s *ManualScheduler) Fired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}

func (s *ManualScheduler) dueLocked(target time.Duration) *manualTimer {
	live := make([]*manualTimer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.fired && !t.stopped && t.at <= target {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].at < live[j].at })
	return live[0]
}

func (s *ManualScheduler) pruneLocked() {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			kept = append(kept, t)
		}
	}
	s.timers = kept
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
