package touchplot

import (
	"sync"
	"time"
)

// DefaultDeselectTimeout is how long a selection stays without further
// interaction.
const DefaultDeselectTimeout = 10 * time.Second

// A Timer is a pending deferred call.
type Timer interface {
	// Stop cancels the call. It reports whether the call was stopped
	// before it ran.
	Stop() bool
}

// A Scheduler runs f once after d. Hosts with their own event loop
// provide a Scheduler that posts f to that loop so the chart is only
// touched from there.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// wallClock schedules with time.AfterFunc. Callbacks run on their own
// goroutine.
type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Selection holds the selected point of a chart. Selecting arms a timer
// which clears the selection after a timeout; any later change cancels
// it. At most one timer is pending.
type Selection struct {
	Scheduler Scheduler
	Timeout   time.Duration

	// OnExpire is called after the timeout cleared the selection.
	OnExpire func()

	mu     sync.Mutex
	index  int
	anchor Point
	gen    uint64
	timer  Timer
}

// NewSelection returns an empty selection using s, or the wall clock if
// s is nil.
func NewSelection(s Scheduler, timeout time.Duration) *Selection {
	if s == nil {
		s = wallClock{}
	}
	return &Selection{Scheduler: s, Timeout: timeout, index: -1}
}

// Selected returns the selected index and its anchor.
func (s *Selection) Selected() (int, Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index, s.anchor, s.index >= 0
}

// Select selects point i at anchor and rearms the timer.
func (s *Selection) Select(i int, anchor Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.index, s.anchor = i, anchor
	gen := s.gen
	s.timer = s.Scheduler.AfterFunc(s.Timeout, func() { s.expire(gen) })
}

// Clear removes the selection and cancels the timer.
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.index = -1
}

// stopLocked cancels the pending timer and invalidates its callback.
func (s *Selection) stopLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// expire clears the selection if the timer of generation gen is still
// the current one.
func (s *Selection) expire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.index < 0 {
		s.mu.Unlock()
		return
	}
	s.index = -1
	s.timer = nil
	s.gen++
	s.mu.Unlock()
	debugf("selection expired")
	if s.OnExpire != nil {
		s.OnExpire()
	}
}
