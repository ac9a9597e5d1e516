package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoundedFeedRejectsNonPositiveCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		_, err := NewBoundedFeed(c)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	}
}

func TestBoundedFeedNeverExceedsCapacity(t *testing.T) {
	for _, capacity := range []int{1, 2, 8} {
		t.Run(fmt.Sprintf("cap=%d", capacity), func(t *testing.T) {
			f, err := NewBoundedFeed(capacity)
			require.NoError(t, err)
			for i := 0; i < capacity*3+1; i++ {
				f.Push(FeedEntry{Text: fmt.Sprint(i)})
				assert.LessOrEqual(t, f.Len(), capacity)
				assert.Len(t, f.Entries(), f.Len())
			}
			assert.Equal(t, capacity, f.Len())
			assert.Equal(t, capacity, f.Cap())
		})
	}
}

func TestBoundedFeedEvictsOldestFirst(t *testing.T) {
	f, err := NewBoundedFeed(8)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		_, evicted := f.Push(FeedEntry{Text: fmt.Sprintf("line-%d", i)})
		assert.False(t, evicted)
	}
	assert.Equal(t, "line-0", f.Entries()[0].Text)

	old, evicted := f.Push(FeedEntry{Text: "line-8", Flagged: true})
	require.True(t, evicted)
	assert.Equal(t, "line-0", old.Text)

	entries := f.Entries()
	require.Len(t, entries, 8)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("line-%d", i+1), e.Text)
	}
	assert.True(t, entries[7].Flagged)
}

func TestBoundedFeedEntriesIsACopy(t *testing.T) {
	f, err := NewBoundedFeed(2)
	require.NoError(t, err)
	f.Push(FeedEntry{Text: "a"})

	entries := f.Entries()
	entries[0].Text = "mutated"

	assert.Equal(t, "a", f.Entries()[0].Text)
}
