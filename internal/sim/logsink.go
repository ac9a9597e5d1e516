package sim

import (
	"fmt"
	"time"

	"github.com/t4skforce/threatsim/internal/models"
)

// LogEntry is one narrated line. Entries are never modified after Append.
type LogEntry struct {
	Time     time.Time
	Message  string
	Category models.Category
}

// Timestamp returns the entry time formatted with TimeLayout.
func (e LogEntry) Timestamp() string {
	return e.Time.Format(TimeLayout)
}

// String formats the entry as "[15:04:05] message".
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] %s", e.Timestamp(), e.Message)
}

// LogSink appends categorized, timestamped lines to the log surface.
type LogSink struct {
	clock       Clock
	page        *Page
	entries     []LogEntry
	subscribers []func(LogEntry)
}

// NewLogSink creates a sink that stamps entries with clock and renders into
// the log surface of page.
func NewLogSink(clock Clock, page *Page) *LogSink {
	return &LogSink{clock: clock, page: page}
}

// Subscribe registers fn to receive every appended entry.
func (s *LogSink) Subscribe(fn func(LogEntry)) {
	s.subscribers = append(s.subscribers, fn)
}

// Append records msg. An empty or unknown category is treated as info.
// Nothing is recorded while the log surface is not mounted.
func (s *LogSink) Append(msg string, cat models.Category) {
	if !s.page.Has(models.SurfaceLog) {
		return
	}
	if !cat.Valid() {
		cat = models.CategoryInfo
	}

	e := LogEntry{
		Time:     s.clock.Now().Truncate(time.Second),
		Message:  msg,
		Category: cat,
	}
	s.entries = append(s.entries, e)
	s.page.Touch(models.SurfaceLog)

	for _, fn := range s.subscribers {
		fn(e)
	}
}

// Info appends msg with the info category.
func (s *LogSink) Info(msg string) { s.Append(msg, models.CategoryInfo) }

// Entries returns a copy of the log history in arrival order.
func (s *LogSink) Entries() []LogEntry {
	out := make([]LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *LogSink) Len() int { return len(s.entries) }
