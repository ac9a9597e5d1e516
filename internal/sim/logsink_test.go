package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t4skforce/threatsim/internal/models"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestLogSinkAppendEachCategory(t *testing.T) {
	now := time.Date(2026, 3, 14, 21, 7, 9, 987654321, time.UTC)
	page := NewPage(models.SurfaceSpec{ID: models.SurfaceLog})
	sink := NewLogSink(fixedClock{now}, page)

	sink.Append("warm-up", models.CategoryInfo)

	for _, cat := range models.Categories {
		t.Run(string(cat), func(t *testing.T) {
			before := sink.Len()
			sink.Append("payload for "+string(cat), cat)

			require.Equal(t, before+1, sink.Len())
			last := sink.Entries()[sink.Len()-1]
			assert.Equal(t, cat, last.Category)
			assert.Equal(t, "21:07:09", last.Timestamp())
			assert.Equal(t, 0, last.Time.Nanosecond(), "timestamps have second resolution")
			assert.Equal(t, "[21:07:09] payload for "+string(cat), last.String())
		})
	}
}

func TestLogSinkUnknownCategoryFallsBackToInfo(t *testing.T) {
	page := NewPage(models.SurfaceSpec{ID: models.SurfaceLog})
	sink := NewLogSink(fixedClock{testStart}, page)

	sink.Append("no category", "")
	sink.Append("bogus", models.Category("critical"))
	sink.Info("helper")

	for _, e := range sink.Entries() {
		assert.Equal(t, models.CategoryInfo, e.Category)
	}
}

func TestLogSinkKeepsArrivalOrderAndTouchesSurface(t *testing.T) {
	page := NewPage(models.SurfaceSpec{ID: models.SurfaceLog})
	sink := NewLogSink(fixedClock{testStart}, page)

	var seen []string
	sink.Subscribe(func(e LogEntry) { seen = append(seen, e.Message) })

	sink.Append("one", models.CategoryDanger)
	sink.Append("two", models.CategoryWarn)
	sink.Append("three", models.CategorySuccess)

	assert.Equal(t, []string{"one", "two", "three"}, seen)
	s, _ := page.Surface(models.SurfaceLog)
	assert.Equal(t, 3, s.Revision)
}

func TestLogSinkWithoutSurfaceIsNoop(t *testing.T) {
	page := NewPage(models.SurfaceSpec{ID: models.SurfaceFeed})
	sink := NewLogSink(fixedClock{testStart}, page)
	called := false
	sink.Subscribe(func(LogEntry) { called = true })
	before := page.Snapshot()

	assert.NotPanics(t, func() { sink.Append("dropped", models.CategoryDanger) })

	assert.Equal(t, 0, sink.Len())
	assert.False(t, called)
	assert.Equal(t, before, page.Snapshot())
}
