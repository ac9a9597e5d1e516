package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWritesToTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(target, []byte("version: 1\n"), 0644))

	w, err := New(target)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(target, []byte("version: 2\n"), 0644))

	select {
	case ev := <-w.Events():
		assert.Equal(t, w.Path(), ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for write to watched file")
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "scenario.yaml"))
	require.NoError(t, err)
	require.NoError(t, w.Start())

	w.Stop()
	assert.NotPanics(t, w.Stop)
}
