package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t4skforce/threatsim/internal/models"
)

func newTestSession(t *testing.T, sc *models.Scenario, alerts *[]string) *Session {
	t.Helper()
	s, err := NewSession(sc,
		WithStart(testStart),
		WithSeed(7),
		WithAlerter(func(msg string) { *alerts = append(*alerts, msg) }),
	)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	t.Cleanup(s.Stop)
	return s
}

func TestSessionEndToEnd(t *testing.T) {
	var alerts []string
	s := newTestSession(t, models.NewScenario(), &alerts)
	ms := time.Millisecond

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 5, s.Timeline.Len())

	s.Advance(999 * ms)
	assert.Equal(t, 0, s.Log.Len())

	s.Advance(1000 * ms)
	entries := s.Log.Entries()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "Analyzing DOM structure")
	assert.Equal(t, models.CategoryInfo, entries[0].Category)
	assert.Equal(t, "09:26:54", entries[0].Timestamp())

	s.Advance(2000 * ms)
	entries = s.Log.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, models.CategoryDanger, entries[1].Category)
	assert.Equal(t, models.CategoryInfo, entries[2].Category)

	s.Advance(3000 * ms)
	assert.Equal(t, 5, s.Log.Len())

	zone, ok := s.Page.Surface(models.SurfaceDynamic)
	require.True(t, ok)
	require.Empty(t, zone.Children)
	assert.True(t, s.Page.Visible(models.SurfaceLoader))

	s.Advance(4500 * ms)
	assert.False(t, s.Page.Visible(models.SurfaceLoader))
	require.Len(t, zone.Children, 1)
	assert.Equal(t, "button", zone.Children[0].Fragment.Kind)
	last := s.Log.Entries()[s.Log.Len()-1]
	assert.Equal(t, models.CategoryWarn, last.Category)

	s.Advance(5999 * ms)
	assert.False(t, s.Page.Visible(models.SurfaceModal))

	s.Advance(6000 * ms)
	assert.True(t, s.Page.Visible(models.SurfaceModal))
	last = s.Log.Entries()[s.Log.Len()-1]
	assert.Equal(t, models.CategoryDanger, last.Category)
	assert.True(t, s.Timeline.Done())
	assert.Equal(t, 7, s.Log.Len())

	// Tickers kept running alongside the beats.
	clock, _ := s.Page.Surface(models.SurfaceClock)
	assert.Equal(t, "09:26:59", clock.Text)
	assert.Equal(t, 7, s.Feed.Len())

	s.Advance(time.Minute)
	assert.Equal(t, 8, s.Feed.Len())
	assert.Equal(t, 7, s.Log.Len(), "beats fire exactly once")
	assert.Empty(t, alerts)
}

func TestSessionDemoInteractions(t *testing.T) {
	var alerts []string
	s := newTestSession(t, models.NewScenario(), &alerts)

	assert.False(t, s.Activate(models.SurfaceDynamic, 0, nil), "nothing injected yet")

	s.Advance(6 * time.Second)

	assert.True(t, s.Activate(models.SurfaceDynamic, 0, nil))
	assert.Equal(t, []string{AlertClickjack}, alerts)

	ev := NewEvent(map[string]string{"username": "demo", "password": "demo"})
	assert.True(t, s.Activate(models.SurfaceModal, 0, ev))
	assert.True(t, ev.DefaultPrevented())
	assert.False(t, s.Page.Visible(models.SurfaceModal))
	assert.Equal(t, []string{AlertClickjack, AlertCredentialsStolen}, alerts)

	assert.False(t, s.Activate(models.SurfaceModal, 5, nil))
	assert.False(t, s.Activate("no-such-surface", 0, nil))
}

func TestSessionWithMissingSurfaces(t *testing.T) {
	sc := models.NewScenario()
	var kept []models.SurfaceSpec
	for _, sf := range sc.Surfaces {
		switch sf.ID {
		case models.SurfaceDynamic, models.SurfaceModal, models.SurfaceFeed:
		default:
			kept = append(kept, sf)
		}
	}
	sc.Surfaces = kept

	var alerts []string
	s := newTestSession(t, sc, &alerts)

	assert.NotPanics(t, func() { s.Advance(10 * time.Second) })

	// The warn and modal lines require surfaces that are not mounted.
	assert.Equal(t, 5, s.Log.Len())
	for _, e := range s.Log.Entries() {
		assert.NotEqual(t, models.CategoryWarn, e.Category)
	}
	assert.False(t, s.Page.Visible(models.SurfaceLoader))
	assert.Equal(t, 0, s.Feed.Len())
	assert.True(t, s.Timeline.Done())
}

func TestSessionStopCancelsEverything(t *testing.T) {
	var alerts []string
	s := newTestSession(t, models.NewScenario(), &alerts)

	s.Advance(2 * time.Second)
	s.Stop()
	s.Stop()

	assert.True(t, s.Stopped())
	assert.Equal(t, 0, s.Advance(time.Minute))
	_, ok := s.NextDue()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Loop.Pending())
	assert.Equal(t, 2, s.Timeline.Fired())
}

func TestSessionStartTwice(t *testing.T) {
	var alerts []string
	s := newTestSession(t, models.NewScenario(), &alerts)
	assert.Error(t, s.Start())
}

func TestNewSessionRejectsInvalidScenario(t *testing.T) {
	sc := models.NewScenario()
	sc.Feed.Capacity = 0
	_, err := NewSession(sc)
	assert.ErrorIs(t, err, models.ErrInvalidScenario)
}

func TestSessionSeedIsReproducible(t *testing.T) {
	run := func() []FeedEntry {
		var alerts []string
		s := newTestSession(t, models.NewScenario(), &alerts)
		s.Advance(10 * time.Second)
		return s.Feed.Entries()
	}
	assert.Equal(t, run(), run())
}
