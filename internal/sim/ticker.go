package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/t4skforce/threatsim/internal/models"
)

// Ticker errors.
var (
	ErrInvalidInterval = errors.New("ticker interval must be positive")
	ErrEmptyCatalog    = errors.New("feed catalog is empty")
)

// TimeLayout is the 24-hour, locale-independent time-of-day format used for
// log stamps and the clock surface.
const TimeLayout = "15:04:05"

// Every starts a periodic ticker on loop. The first firing happens one
// interval after the current offset; the returned timer stops it.
func Every(loop *Loop, name string, interval time.Duration, effect func()) (*Timer, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %s got %v", ErrInvalidInterval, name, interval)
	}
	if effect == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilEffect, name)
	}
	return loop.Every(name, interval, effect), nil
}

// ClockTick renders the time of day into the clock surface.
func ClockTick(clock Clock, page *Page) func() {
	return func() {
		page.SetText(models.SurfaceClock, clock.Now().Format(TimeLayout))
	}
}

// Catalog is the fixed set of messages the feed ticker samples from.
type Catalog struct {
	messages []models.FeedMessage
}

// NewCatalog copies msgs into a catalog. At least one message is required.
func NewCatalog(msgs []models.FeedMessage) (*Catalog, error) {
	if len(msgs) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{messages: make([]models.FeedMessage, len(msgs))}
	copy(c.messages, msgs)
	return c, nil
}

// Len returns the catalog size.
func (c *Catalog) Len() int { return len(c.messages) }

// Index returns the message at i.
func (c *Catalog) Index(i int) models.FeedMessage { return c.messages[i] }

// Pick selects a message uniformly at random.
func (c *Catalog) Pick(rng *rand.Rand) (int, models.FeedMessage) {
	i := rng.IntN(len(c.messages))
	return i, c.messages[i]
}

// FeedTick pushes one random catalog message into feed per firing and marks
// the feed surface for re-render. Nothing is picked while the surface is absent.
func FeedTick(page *Page, feed *BoundedFeed, catalog *Catalog, rng *rand.Rand) func() {
	return func() {
		if !page.Has(models.SurfaceFeed) {
			return
		}
		_, msg := catalog.Pick(rng)
		feed.Push(FeedEntry{Text: msg.Text, Flagged: msg.Flagged})
		page.Touch(models.SurfaceFeed)
	}
}
