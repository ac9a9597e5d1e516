package sim

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/t4skforce/threatsim/internal/models"
)

// Session wires a scenario into one loop: surfaces, log, feed, tickers and beats.
type Session struct {
	ID       string
	Scenario *models.Scenario
	Loop     *Loop
	Page     *Page
	Log      *LogSink
	Feed     *BoundedFeed
	Timeline *Timeline
	Actions  *Actions

	catalog *Catalog
	rng     *rand.Rand
	tickers []*Timer
	started bool
	stopped bool
}

type sessionOptions struct {
	start time.Time
	rng   *rand.Rand
	alert Alerter
}

// Option configures NewSession.
type Option func(*sessionOptions)

// WithStart sets the shared start instant. Defaults to time.Now().
func WithStart(t time.Time) Option {
	return func(o *sessionOptions) { o.start = t }
}

// WithRand sets the random source for feed sampling.
func WithRand(r *rand.Rand) Option {
	return func(o *sessionOptions) { o.rng = r }
}

// WithSeed makes feed sampling reproducible.
func WithSeed(seed uint64) Option {
	return func(o *sessionOptions) { o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithAlerter sets where demo callbacks report to.
func WithAlerter(a Alerter) Option {
	return func(o *sessionOptions) { o.alert = a }
}

// NewSession validates sc and builds a session ready to Start.
func NewSession(sc *models.Scenario, opts ...Option) (*Session, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	o := sessionOptions{start: time.Now()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	feed, err := NewBoundedFeed(sc.Feed.Capacity)
	if err != nil {
		return nil, err
	}
	catalog, err := NewCatalog(sc.Feed.Messages)
	if err != nil {
		return nil, err
	}

	loop := NewLoop(o.start)
	page := NewPage(sc.Surfaces...)
	actions := NewActions(page, DemoCallbacks(page, o.alert))

	s := &Session{
		ID:       uuid.NewString(),
		Scenario: sc,
		Loop:     loop,
		Page:     page,
		Log:      NewLogSink(loop, page),
		Feed:     feed,
		Timeline: NewTimeline(loop),
		Actions:  actions,
		catalog:  catalog,
		rng:      o.rng,
	}

	for _, spec := range sc.Surfaces {
		for _, frag := range spec.Content {
			actions.Insert(spec.ID, frag)
		}
	}
	return s, nil
}

// Start registers the tickers and every beat. Calling it twice is an error.
func (s *Session) Start() error {
	if s.started {
		return fmt.Errorf("session %s already started", s.ID)
	}
	s.started = true

	if s.Scenario.Clock.Interval > 0 {
		t, err := Every(s.Loop, "clock", s.Scenario.Clock.Interval, ClockTick(s.Loop, s.Page))
		if err != nil {
			return err
		}
		s.tickers = append(s.tickers, t)
	}

	t, err := Every(s.Loop, "feed", s.Scenario.Feed.Interval, FeedTick(s.Page, s.Feed, s.catalog, s.rng))
	if err != nil {
		return err
	}
	s.tickers = append(s.tickers, t)

	for _, b := range s.Scenario.SortedBeats() {
		if _, err := s.Timeline.Schedule(b.Name, b.At, s.beatEffect(b)); err != nil {
			s.Stop()
			return fmt.Errorf("failed to schedule beat: %w", err)
		}
	}

	log.Printf("[session] %s started: %d beats, scenario %q", s.ID, s.Timeline.Len(), s.Scenario.Name)
	return nil
}

func (s *Session) beatEffect(b models.Beat) func() {
	return func() {
		for _, a := range b.Actions {
			s.apply(a)
		}
	}
}

func (s *Session) apply(a models.Action) {
	if a.Requires != "" && !s.Page.Has(a.Requires) {
		return
	}
	switch a.Verb() {
	case models.VerbLog:
		s.Log.Append(a.Log, a.Category)
	case models.VerbHide:
		s.Actions.Hide(a.Hide)
	case models.VerbReveal:
		s.Actions.Reveal(a.Reveal)
	case models.VerbInsert:
		if a.Fragment != nil {
			s.Actions.Insert(a.Insert, *a.Fragment)
		}
	}
}

// Advance runs everything due at elapsed since the start instant.
func (s *Session) Advance(elapsed time.Duration) int {
	if s.stopped {
		return 0
	}
	return s.Loop.Advance(elapsed)
}

// Elapsed returns the session's current offset.
func (s *Session) Elapsed() time.Duration { return s.Loop.Elapsed() }

// NextDue returns the offset of the next pending firing.
func (s *Session) NextDue() (time.Duration, bool) {
	if s.stopped {
		return 0, false
	}
	return s.Loop.NextDue()
}

// Activate delivers a primary interaction to the i-th child of surface id.
// It reports false when there is no such bound child.
func (s *Session) Activate(id string, i int, ev *Event) bool {
	sf, ok := s.Page.Surface(id)
	if !ok || i < 0 || i >= len(sf.Children) {
		return false
	}
	return sf.Children[i].Activate(ev)
}

// Stop cancels every ticker and pending beat.
func (s *Session) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.Timeline.CancelAll()
	for _, t := range s.tickers {
		t.Stop()
	}
	s.Loop.StopAll()
	log.Printf("[session] %s stopped at +%v (%d/%d beats fired)", s.ID, s.Loop.Elapsed(), s.Timeline.Fired(), s.Timeline.Len())
}

// Stopped reports whether Stop was called.
func (s *Session) Stopped() bool { return s.stopped }
