// Package sim implements the timed narration engine behind the demo: a
// cooperative timer loop, the beat timeline, periodic tickers, the bounded
// network feed, the categorized log sink and the surface mutations they drive.
//
// Nothing in this package starts goroutines. A driver (the TUI or the headless
// runner) owns wall-clock time and calls Loop.Advance; every effect runs to
// completion on the driver's goroutine before the next one is dispatched.
package sim

import (
	"container/heap"
	"time"
)

// Clock reports the current time of day.
type Clock interface {
	Now() time.Time
}

// Timer is the handle returned for every one-shot or periodic registration.
type Timer struct {
	loop     *Loop
	name     string
	due      time.Duration
	interval time.Duration // 0 = one-shot
	seq      uint64
	fn       func()
	index    int // position in the queue, -1 when not queued
	fired    int
	stopped  bool
}

// Name returns the label the timer was registered with.
func (t *Timer) Name() string { return t.name }

// Due returns the next offset from loop start at which the timer fires.
func (t *Timer) Due() time.Duration { return t.due }

// Fired returns how many times the effect has run.
func (t *Timer) Fired() int { return t.fired }

// Active reports whether the timer is still waiting to fire.
func (t *Timer) Active() bool { return t.index >= 0 }

// Stop cancels any future firing. Safe to call more than once, and from
// inside the timer's own effect.
func (t *Timer) Stop() {
	if t == nil || t.stopped {
		return
	}
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&t.loop.queue, t.index)
	}
}

// Loop is a single-threaded timer queue measured from one shared start instant.
type Loop struct {
	start  time.Time
	now    time.Duration
	seq    uint64
	queue  timerQueue
	firing bool

	current *Timer // timer whose effect is running
}

// NewLoop creates a loop whose offsets are measured from start.
func NewLoop(start time.Time) *Loop {
	return &Loop{start: start}
}

// Start returns the shared start instant.
func (l *Loop) Start() time.Time { return l.start }

// Elapsed returns the loop's current offset from start.
func (l *Loop) Elapsed() time.Duration { return l.now }

// Now returns start plus the current offset. While an effect runs this is
// the effect's scheduled instant.
func (l *Loop) Now() time.Time { return l.start.Add(l.now) }

// At registers fn to run once when the loop reaches offset. Offsets already
// in the past fire on the next Advance.
func (l *Loop) At(name string, offset time.Duration, fn func()) *Timer {
	return l.push(name, offset, 0, fn)
}

// After registers fn to run once d after the current offset.
func (l *Loop) After(name string, d time.Duration, fn func()) *Timer {
	return l.push(name, l.now+d, 0, fn)
}

// Every registers fn to run at each interval boundary after the current
// offset until the timer is stopped. interval must be positive.
func (l *Loop) Every(name string, interval time.Duration, fn func()) *Timer {
	return l.push(name, l.now+interval, interval, fn)
}

func (l *Loop) push(name string, due, interval time.Duration, fn func()) *Timer {
	l.seq++
	t := &Timer{
		loop:     l,
		name:     name,
		due:      due,
		interval: interval,
		seq:      l.seq,
		fn:       fn,
		index:    -1,
	}
	heap.Push(&l.queue, t)
	return t
}

// Advance moves the loop to elapsed and runs every timer due at or before
// it, in (offset, registration) order. It returns the number of firings.
// Calls made from inside an effect are ignored.
func (l *Loop) Advance(elapsed time.Duration) int {
	if l.firing {
		return 0
	}
	l.firing = true
	defer func() { l.firing = false }()

	fired := 0
	for len(l.queue) > 0 {
		t := l.queue[0]
		if t.due > elapsed {
			break
		}
		heap.Pop(&l.queue)
		if t.due > l.now {
			l.now = t.due
		}

		t.fired++
		fired++
		l.current = t
		t.fn()
		l.current = nil

		if t.interval > 0 && !t.stopped {
			t.due += t.interval
			l.seq++
			t.seq = l.seq
			heap.Push(&l.queue, t)
		}
	}
	if elapsed > l.now {
		l.now = elapsed
	}
	return fired
}

// NextDue returns the offset of the earliest pending timer.
func (l *Loop) NextDue() (time.Duration, bool) {
	if len(l.queue) == 0 {
		return 0, false
	}
	return l.queue[0].due, true
}

// Pending returns the number of queued timers.
func (l *Loop) Pending() int { return len(l.queue) }

// StopAll cancels every queued timer, including a periodic timer whose
// effect is running.
func (l *Loop) StopAll() {
	if l.current != nil {
		l.current.stopped = true
	}
	for _, t := range l.queue {
		t.stopped = true
		t.index = -1
	}
	l.queue = nil
}

// timerQueue is a min-heap ordered by due offset, then registration sequence.
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
