package sim

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineFiresBeatsOnceInDelayOrder(t *testing.T) {
	delays := []time.Duration{6000, 2000, 4500, 1000, 3000, 2000}
	l := NewLoop(testStart)
	tl := NewTimeline(l)

	var fired []time.Duration
	counts := make(map[string]int)
	for i, d := range delays {
		d := d * time.Millisecond
		name := fmt.Sprintf("beat-%d", i)
		_, err := tl.Schedule(name, d, func() {
			fired = append(fired, d)
			counts[name]++
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 6, tl.Len())
	assert.Equal(t, 6, tl.Pending())

	// Drive the loop in uneven steps, as a real timer facility would.
	for _, step := range []time.Duration{500, 1999, 2000, 2001, 4499, 4500, 7000, 60000} {
		l.Advance(step * time.Millisecond)
	}

	require.Len(t, fired, 6)
	for i := 1; i < len(fired); i++ {
		assert.LessOrEqual(t, fired[i-1], fired[i], "firing order must be non-decreasing")
	}
	for name, n := range counts {
		assert.Equal(t, 1, n, "%s fired %d times", name, n)
	}
	assert.Equal(t, 6, tl.Fired())
	assert.True(t, tl.Done())
}

func TestTimelineRejectsInvalidBeats(t *testing.T) {
	tl := NewTimeline(NewLoop(testStart))

	_, err := tl.Schedule("negative", -time.Millisecond, func() {})
	assert.ErrorIs(t, err, ErrNegativeDelay)

	_, err = tl.Schedule("nil", time.Second, nil)
	assert.ErrorIs(t, err, ErrNilEffect)

	assert.Equal(t, 0, tl.Len())
}

func TestTimelineDelaysAreFromStartInstant(t *testing.T) {
	l := NewLoop(testStart)
	tl := NewTimeline(l)
	l.Advance(1500 * time.Millisecond)

	var at time.Time
	_, err := tl.Schedule("late", 2*time.Second, func() { at = l.Now() })
	require.NoError(t, err)

	l.Advance(1999 * time.Millisecond)
	assert.True(t, at.IsZero())
	l.Advance(2 * time.Second)
	assert.Equal(t, testStart.Add(2*time.Second), at)
}

func TestTimelineCancelAll(t *testing.T) {
	l := NewLoop(testStart)
	tl := NewTimeline(l)
	n := 0
	for _, d := range []time.Duration{time.Second, 2 * time.Second, 3 * time.Second} {
		_, err := tl.Schedule("beat", d, func() { n++ })
		require.NoError(t, err)
	}

	l.Advance(time.Second)
	tl.CancelAll()
	l.Advance(time.Minute)

	assert.Equal(t, 1, n)
	assert.Equal(t, 1, tl.Fired())
	assert.Equal(t, 0, tl.Pending())
}
