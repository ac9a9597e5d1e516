// Package tui implements the interactive terminal presentation of the demo.
package tui

import (
	"fmt"
	"log"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/t4skforce/threatsim/internal/config"
	"github.com/t4skforce/threatsim/internal/models"
	"github.com/t4skforce/threatsim/internal/watcher"
)

// Options configures a TUI run.
type Options struct {
	Scenario *models.Scenario
	Source   string  // scenario file path, or config.BuiltinScenario
	Watch    bool    // reload the session when Source changes
	Seed     *uint64 // fixed feed seed, nil for random
}

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the TUI and blocks until the user quits.
func Run(opts Options) error {
	ref := &programRef{}
	model, err := NewModel(opts, ref)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	ref.Set(p)

	done := make(chan struct{})
	if opts.Watch && opts.Source != "" && opts.Source != config.BuiltinScenario {
		w, err := watcher.New(opts.Source)
		if err != nil {
			return fmt.Errorf("failed to watch scenario: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("failed to watch scenario: %w", err)
		}
		defer w.Stop()
		go forwardReloads(w, ref, done)
	}

	_, err = p.Run()
	close(done)
	ref.Clear()
	return err
}

// forwardReloads turns scenario file changes into ScenarioReloadedMsg.
func forwardReloads(w *watcher.Watcher, ref *programRef, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case ev := <-w.Events():
			sc, err := config.LoadScenario(ev.Path)
			if err != nil {
				log.Printf("[tui] reload of %s failed: %v", ev.Path, err)
			}
			ref.Send(ScenarioReloadedMsg{Scenario: sc, Err: err})
		}
	}
}
