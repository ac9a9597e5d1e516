// Package watcher reports changes to a scenario file so a running demo can reload it.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a burst of writes must settle before an event is emitted.
const DefaultDebounce = 100 * time.Millisecond

// Event reports that the watched file changed.
type Event struct {
	Path string
	Op   fsnotify.Op
}

// Watcher watches a single file through its parent directory, so atomic
// writes (write tmp, rename over target) are seen.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan Event
	done       chan struct{}
	stopOnce   sync.Once
	path       string
	debounce   time.Duration
	timer      *time.Timer
	timerMu    sync.Mutex
}

// New creates a watcher for path.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan Event, 1),
		done:       make(chan struct{}),
		path:       abs,
		debounce:   DefaultDebounce,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Events returns the channel for receiving events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	log.Printf("[watcher] Watching %s", w.path)

	go w.processEvents()
	return nil
}

// Stop stops the watcher. The events channel is not closed.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.fsWatcher.Close()

		w.timerMu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.timerMu.Unlock()
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("[watcher] error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Rename covers editors that save by renaming a temp file over the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		log.Printf("[watcher] debounce fired: %s (op=%s)", event.Name, event.Op)
		w.emit(Event{Path: w.path, Op: event.Op})
	})
}

// emit delivers ev, replacing an undelivered event so a slow reader only sees the latest change.
func (w *Watcher) emit(ev Event) {
	select {
	case <-w.done:
		return
	default:
	}
	for {
		select {
		case w.eventsChan <- ev:
			return
		default:
		}
		select {
		case <-w.eventsChan:
		default:
		}
	}
}
