// Package timer implements the rest-interval countdown as a small state
// machine. Remaining time is always recomputed from an absolute deadline,
// never decremented, so tick jitter or a suspended process cannot drift it.
package timer

import "time"

type State int

const (
	Idle State = iota
	Running
)

// Clock supplies the current time; tests inject a fake one.
type Clock func() time.Time

type Timer struct {
	now   Clock
	state State
	end   time.Time
}

func New(now Clock) *Timer {
	if now == nil {
		now = time.Now
	}
	return &Timer{now: now}
}

func (t *Timer) State() State { return t.state }

// Start begins a countdown of the given duration. Starting while Running
// cancels the previous countdown; there is no queueing.
func (t *Timer) Start(d time.Duration) {
	t.end = t.now().Add(d)
	t.state = Running
}

// Tick recomputes the remaining whole seconds. On the tick that crosses
// the deadline it transitions to Idle and reports expired=true exactly
// once; every later call is an Idle no-op.
func (t *Timer) Tick() (remaining int, expired bool) {
	if t.state != Running {
		return 0, false
	}

	remaining = t.Remaining()
	if remaining <= 0 {
		t.state = Idle
		return 0, true
	}
	return remaining, false
}

// Remaining returns the seconds left, rounded up.
func (t *Timer) Remaining() int {
	if t.state != Running {
		return 0
	}
	left := t.end.Sub(t.now())
	return int((left + time.Second - 1) / time.Second)
}

// Cancel is the user-initiated skip: straight to Idle, no expiry signal.
func (t *Timer) Cancel() {
	t.state = Idle
}
