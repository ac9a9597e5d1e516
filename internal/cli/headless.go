package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/t4skforce/threatsim/internal/models"
	"github.com/t4skforce/threatsim/internal/sim"
)

type headlessOptions struct {
	Scenario *models.Scenario
	Source   string
	Duration time.Duration
	Seed     *uint64
}

// runHeadless plays the scenario in real time for opts.Duration, printing
// each log entry as it is appended, then the final feed window.
func runHeadless(ctx context.Context, w io.Writer, opts headlessOptions) error {
	if opts.Duration <= 0 {
		return fmt.Errorf("invalid duration %v", opts.Duration)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signalContext(ctx)
	defer stop()

	simOpts := []sim.Option{
		sim.WithAlerter(func(msg string) {
			fmt.Fprintln(w, styleAlert.Render("ALERT: "+msg))
		}),
	}
	if opts.Seed != nil {
		simOpts = append(simOpts, sim.WithSeed(*opts.Seed))
	}
	s, err := sim.NewSession(opts.Scenario, simOpts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s %s\n\n", styleBrand.Render("▶"), styleCommand.Render(opts.Scenario.Name), scenarioSourceLabel(opts.Source))
	s.Log.Subscribe(func(e sim.LogEntry) {
		fmt.Fprintln(w, categoryStyles[e.Category].Render(e.String()))
	})

	if err := s.Start(); err != nil {
		return err
	}
	defer s.Stop()

	drive(ctx, s, opts.Duration)

	fmt.Fprintf(w, "\n%s\n", styleLabel.Render(fmt.Sprintf("Network (%d/%d)", s.Feed.Len(), s.Feed.Cap())))
	for _, e := range s.Feed.Entries() {
		if e.Flagged {
			fmt.Fprintln(w, styleFeedFlagged.Render(e.Text))
		} else {
			fmt.Fprintln(w, styleFeed.Render(e.Text))
		}
	}
	fmt.Fprintf(w, "\n%s %d/%d beats in %s\n", styleSuccess.Render("✓"),
		s.Timeline.Fired(), s.Timeline.Len(), s.Elapsed().Round(time.Millisecond))
	return nil
}

// drive advances s in real time until d has elapsed or ctx is done, sleeping
// until each next deadline.
func drive(ctx context.Context, s *sim.Session, d time.Duration) {
	start := s.Loop.Start()
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		next, ok := s.NextDue()
		if !ok || next > d {
			next = d
		}
		timer.Reset(max(time.Until(start.Add(next)), 0))

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		elapsed := min(time.Since(start), d)
		s.Advance(elapsed)
		if elapsed >= d {
			return
		}
	}
}
