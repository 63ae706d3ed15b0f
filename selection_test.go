package touchplot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeScheduler records deferred calls which tests fire by hand.
type fakeScheduler struct {
	timers []*fakeTimer
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// fire runs the call even if it was stopped, like a timer which had
// already started before Stop.
func (t *fakeTimer) fire() { t.f() }

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (s *fakeScheduler) last() *fakeTimer { return s.timers[len(s.timers)-1] }

func TestSelectionExpires(t *testing.T) {
	sched := &fakeScheduler{}
	sel := NewSelection(sched, 3*time.Second)
	expired := 0
	sel.OnExpire = func() { expired++ }

	_, _, ok := sel.Selected()
	require.False(t, ok)

	sel.Select(2, Point{1, 2})
	i, anchor, ok := sel.Selected()
	require.True(t, ok)
	require.Equal(t, 2, i)
	require.Equal(t, Point{1, 2}, anchor)
	require.Equal(t, 1, sched.pending())
	require.Equal(t, 3*time.Second, sched.last().d)

	sched.last().fire()
	_, _, ok = sel.Selected()
	require.False(t, ok)
	require.Equal(t, 1, expired)
}

func TestSelectionRearm(t *testing.T) {
	sched := &fakeScheduler{}
	sel := NewSelection(sched, DefaultDeselectTimeout)
	expired := 0
	sel.OnExpire = func() { expired++ }

	sel.Select(0, Point{})
	first := sched.last()
	sel.Select(1, Point{})
	require.True(t, first.stopped)
	require.Equal(t, 1, sched.pending())

	// A stale timer firing late changes nothing.
	first.fire()
	i, _, ok := sel.Selected()
	require.True(t, ok)
	require.Equal(t, 1, i)
	require.Zero(t, expired)

	sched.last().fire()
	_, _, ok = sel.Selected()
	require.False(t, ok)
	require.Equal(t, 1, expired)
}

func TestSelectionClear(t *testing.T) {
	sched := &fakeScheduler{}
	sel := NewSelection(sched, DefaultDeselectTimeout)
	expired := 0
	sel.OnExpire = func() { expired++ }

	sel.Select(4, Point{})
	sel.Clear()
	require.Zero(t, sched.pending())
	_, _, ok := sel.Selected()
	require.False(t, ok)

	sched.last().fire()
	require.Zero(t, expired)

	sel.Clear() // no timer pending
	require.Zero(t, sched.pending())
}

func TestSelectionWallClock(t *testing.T) {
	sel := NewSelection(nil, 10*time.Millisecond)
	done := make(chan struct{})
	sel.OnExpire = func() { close(done) }
	sel.Select(0, Point{})
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("selection did not expire")
	}
	_, _, ok := sel.Selected()
	require.False(t, ok)
}
