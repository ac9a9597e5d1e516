package sim

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// Timeline errors.
var (
	ErrNegativeDelay = errors.New("beat delay must not be negative")
	ErrNilEffect     = errors.New("beat effect is nil")
)

// Timeline holds the one-shot beats of a session. Every delay is measured
// from the loop's start instant, so late registrations keep their place.
type Timeline struct {
	loop  *Loop
	beats []*Timer
}

// NewTimeline creates a timeline on loop.
func NewTimeline(loop *Loop) *Timeline {
	return &Timeline{loop: loop}
}

// Schedule registers effect to fire once at delay from the start instant.
// Beats sharing a delay fire in registration order.
func (tl *Timeline) Schedule(name string, delay time.Duration, effect func()) (*Timer, error) {
	if delay < 0 {
		return nil, fmt.Errorf("%w: %q at %v", ErrNegativeDelay, name, delay)
	}
	if effect == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilEffect, name)
	}

	t := tl.loop.At(name, delay, func() {
		log.Printf("[timeline] beat %q fired at +%v", name, delay)
		effect()
	})
	tl.beats = append(tl.beats, t)
	return t, nil
}

// Len returns the number of scheduled beats.
func (tl *Timeline) Len() int { return len(tl.beats) }

// Fired returns how many beats have run.
func (tl *Timeline) Fired() int {
	n := 0
	for _, t := range tl.beats {
		if t.fired > 0 {
			n++
		}
	}
	return n
}

// Pending returns how many beats are still waiting to fire.
func (tl *Timeline) Pending() int {
	n := 0
	for _, t := range tl.beats {
		if t.Active() {
			n++
		}
	}
	return n
}

// Done reports whether no beat is left to fire.
func (tl *Timeline) Done() bool { return tl.Pending() == 0 }

// CancelAll stops every beat that has not fired yet.
func (tl *Timeline) CancelAll() {
	for _, t := range tl.beats {
		t.Stop()
	}
}
