package sim

import "errors"

// ErrInvalidCapacity is returned for a feed capacity below one.
var ErrInvalidCapacity = errors.New("feed capacity must be positive")

// FeedEntry is one line of the rolling network feed.
type FeedEntry struct {
	Text    string
	Flagged bool
}

// BoundedFeed is a fixed-capacity rolling window. Pushing into a full feed
// evicts the oldest entry before Push returns, so Len never exceeds Cap.
type BoundedFeed struct {
	buf  []FeedEntry
	head int // index of the oldest entry
	size int
}

// NewBoundedFeed creates an empty feed holding at most capacity entries.
func NewBoundedFeed(capacity int) (*BoundedFeed, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &BoundedFeed{buf: make([]FeedEntry, capacity)}, nil
}

// Push appends e as the newest entry. When the feed was full the evicted
// oldest entry is returned with ok set.
func (f *BoundedFeed) Push(e FeedEntry) (evicted FeedEntry, ok bool) {
	if f.size == len(f.buf) {
		evicted = f.buf[f.head]
		f.buf[f.head] = e
		f.head = (f.head + 1) % len(f.buf)
		return evicted, true
	}
	f.buf[(f.head+f.size)%len(f.buf)] = e
	f.size++
	return FeedEntry{}, false
}

// Entries returns the current window, oldest first.
func (f *BoundedFeed) Entries() []FeedEntry {
	out := make([]FeedEntry, f.size)
	for i := 0; i < f.size; i++ {
		out[i] = f.buf[(f.head+i)%len(f.buf)]
	}
	return out
}

// Len returns the number of entries in the window.
func (f *BoundedFeed) Len() int { return f.size }

// Cap returns the window capacity.
func (f *BoundedFeed) Cap() int { return len(f.buf) }
