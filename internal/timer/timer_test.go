package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock advances only when told to, so countdowns are deterministic.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeTimer() (*Timer, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)}
	return New(clock.now), clock
}

func TestStartAndExpiry(t *testing.T) {
	tm, clock := newFakeTimer()
	assert.Equal(t, Idle, tm.State())

	tm.Start(5 * time.Second)
	assert.Equal(t, Running, tm.State())
	assert.Equal(t, 5, tm.Remaining())

	// Simulate the 200ms tick cadence past the deadline: exactly one
	// expiry must fire, regardless of jitter.
	expiries := 0
	for i := 0; i < 26; i++ { // 26 * 200ms = 5.2s
		clock.advance(200 * time.Millisecond)
		if _, expired := tm.Tick(); expired {
			expiries++
		}
	}

	assert.Equal(t, 1, expiries)
	assert.Equal(t, Idle, tm.State())
}

func TestRemainingRoundsUp(t *testing.T) {
	tm, clock := newFakeTimer()
	tm.Start(5 * time.Second)

	clock.advance(200 * time.Millisecond)
	remaining, expired := tm.Tick()
	assert.False(t, expired)
	assert.Equal(t, 5, remaining, "4.8s left still displays as 5")

	clock.advance(1 * time.Second)
	remaining, _ = tm.Tick()
	assert.Equal(t, 4, remaining)
}

func TestCancelEmitsNoExpiry(t *testing.T) {
	tm, clock := newFakeTimer()
	tm.Start(5 * time.Second)
	tm.Cancel()

	assert.Equal(t, Idle, tm.State())

	clock.advance(10 * time.Second)
	_, expired := tm.Tick()
	assert.False(t, expired, "a cancelled timer never signals expiry")
}

func TestRestartCancelsPrevious(t *testing.T) {
	tm, clock := newFakeTimer()
	tm.Start(5 * time.Second)
	clock.advance(4 * time.Second)

	// Re-entrant start: fresh deadline, no queueing.
	tm.Start(30 * time.Second)
	assert.Equal(t, 30, tm.Remaining())

	clock.advance(2 * time.Second)
	_, expired := tm.Tick()
	assert.False(t, expired, "old 5s deadline must not fire")
	assert.Equal(t, 28, tm.Remaining())
}

func TestSuspendedProcessCatchesUp(t *testing.T) {
	tm, clock := newFakeTimer()
	tm.Start(5 * time.Second)

	// No ticks at all for a minute (host suspended), then one tick.
	clock.advance(time.Minute)
	remaining, expired := tm.Tick()
	assert.True(t, expired)
	assert.Equal(t, 0, remaining)

	_, expired = tm.Tick()
	assert.False(t, expired)
}

func TestIdleTickIsNoop(t *testing.T) {
	tm, _ := newFakeTimer()
	remaining, expired := tm.Tick()
	assert.Equal(t, 0, remaining)
	assert.False(t, expired)
	assert.Equal(t, 0, tm.Remaining())
}
