package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func TestLoopFiresInDueOrder(t *testing.T) {
	l := NewLoop(testStart)
	var order []string
	record := func(name string) func() {
		return func() { order = append(order, name) }
	}

	l.At("c", 300*time.Millisecond, record("c"))
	l.At("a", 100*time.Millisecond, record("a"))
	l.At("b1", 200*time.Millisecond, record("b1"))
	l.At("b2", 200*time.Millisecond, record("b2"))

	assert.Equal(t, 0, l.Advance(99*time.Millisecond))
	assert.Empty(t, order)

	assert.Equal(t, 4, l.Advance(time.Second))
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, order)
	assert.Equal(t, time.Second, l.Elapsed())
	assert.Equal(t, 0, l.Pending())
}

func TestLoopNowIsScheduledInstantDuringEffect(t *testing.T) {
	l := NewLoop(testStart)
	var seen time.Time
	l.At("beat", 1500*time.Millisecond, func() { seen = l.Now() })

	l.Advance(5 * time.Second)

	assert.Equal(t, testStart.Add(1500*time.Millisecond), seen)
	assert.Equal(t, testStart.Add(5*time.Second), l.Now())
}

func TestLoopEveryRepeatsUntilStopped(t *testing.T) {
	l := NewLoop(testStart)
	n := 0
	tm := l.Every("tick", 250*time.Millisecond, func() { n++ })

	l.Advance(time.Second)
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, tm.Fired())
	assert.True(t, tm.Active())

	due, ok := l.NextDue()
	require.True(t, ok)
	assert.Equal(t, 1250*time.Millisecond, due)

	tm.Stop()
	tm.Stop()
	l.Advance(2 * time.Second)
	assert.Equal(t, 4, n)
	assert.False(t, tm.Active())
}

func TestLoopStopFromInsideEffect(t *testing.T) {
	l := NewLoop(testStart)
	n := 0
	var tm *Timer
	tm = l.Every("self-stop", 100*time.Millisecond, func() {
		n++
		if n == 3 {
			tm.Stop()
		}
	})

	l.Advance(time.Second)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, l.Pending())
}

func TestLoopStopAllFromInsideEffect(t *testing.T) {
	l := NewLoop(testStart)
	ticks := 0
	l.Every("tick", 100*time.Millisecond, func() {
		ticks++
		if ticks == 2 {
			l.StopAll()
		}
	})
	beat := l.At("beat", 500*time.Millisecond, func() { t.Fatal("beat must not fire after StopAll") })

	l.Advance(time.Second)
	assert.Equal(t, 2, ticks)
	assert.False(t, beat.Active())
	_, ok := l.NextDue()
	assert.False(t, ok)
}

func TestLoopLateRegistrationFiresOnNextAdvance(t *testing.T) {
	l := NewLoop(testStart)
	l.Advance(3 * time.Second)

	fired := false
	l.At("late", time.Second, func() { fired = true })
	l.Advance(3 * time.Second)

	assert.True(t, fired)
	assert.Equal(t, 3*time.Second, l.Elapsed(), "offset never moves backwards")
}

func TestLoopIgnoresReentrantAdvance(t *testing.T) {
	l := NewLoop(testStart)
	inner := -1
	l.At("outer", 100*time.Millisecond, func() { inner = l.Advance(time.Hour) })
	l.At("later", time.Minute, func() {})

	l.Advance(time.Second)
	assert.Equal(t, 0, inner)
	assert.Equal(t, 1, l.Pending())
}

func TestLoopAfterIsRelativeToCurrentOffset(t *testing.T) {
	l := NewLoop(testStart)
	l.Advance(2 * time.Second)
	tm := l.After("relative", 500*time.Millisecond, func() {})
	assert.Equal(t, 2500*time.Millisecond, tm.Due())
	assert.Equal(t, "relative", tm.Name())
}
