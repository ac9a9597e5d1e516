package models

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrInvalidScenario is returned by Validate for any malformed scenario.
var ErrInvalidScenario = errors.New("invalid scenario")

// Category is the severity/style tag of a narrated log line.
type Category string

// Log categories.
const (
	CategoryInfo    Category = "info"
	CategoryDanger  Category = "danger"
	CategorySuccess Category = "success"
	CategoryWarn    Category = "warn"
)

// Categories lists every known category in display order.
var Categories = []Category{CategoryInfo, CategoryDanger, CategorySuccess, CategoryWarn}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryInfo, CategoryDanger, CategorySuccess, CategoryWarn:
		return true
	}
	return false
}

// Handler names a demo callback that an inserted fragment can be bound to.
const (
	HandlerCaptureCredentials = "captureCredentials"
	HandlerTriggerClickjack   = "triggerClickjack"
)

// Surface identifiers used by the built-in scenario.
const (
	SurfaceClock   = "clock"
	SurfaceLog     = "terminal-log"
	SurfaceFeed    = "network-logs"
	SurfaceLoader  = "loader"
	SurfaceDynamic = "dynamic-zone"
	SurfaceModal   = "phishing-modal"
)

// FeedMessage is one entry of the fake network traffic catalog.
// Flagged is decided when the catalog is written, never inferred from Text.
type FeedMessage struct {
	Text    string `yaml:"text"`
	Flagged bool   `yaml:"flagged,omitempty"`
}

// Fragment is a declarative description of an inserted interactive element.
type Fragment struct {
	Kind     string `yaml:"kind"`               // "button" | "form" | "link"
	Label    string `yaml:"label,omitempty"`
	Handler  string `yaml:"handler,omitempty"`  // callback bound to the primary interaction
	Children int    `yaml:"children,omitempty"` // number of child elements the fragment carries
}

// SurfaceSpec describes a surface mounted when a session starts.
type SurfaceSpec struct {
	ID      string     `yaml:"id"`
	Hidden  bool       `yaml:"hidden,omitempty"`
	Content []Fragment `yaml:"content,omitempty"`
}

// Action is a single mutation performed by a beat. Exactly one of Log, Hide,
// Reveal or Insert must be set.
type Action struct {
	Log      string    `yaml:"log,omitempty"`
	Category Category  `yaml:"category,omitempty"`
	Hide     string    `yaml:"hide,omitempty"`
	Reveal   string    `yaml:"reveal,omitempty"`
	Insert   string    `yaml:"insert,omitempty"`
	Fragment *Fragment `yaml:"fragment,omitempty"`

	// Requires skips the action when the named surface is not mounted.
	Requires string `yaml:"requires,omitempty"`
}

// Verb values returned by Action.Verb.
const (
	VerbLog    = "log"
	VerbHide   = "hide"
	VerbReveal = "reveal"
	VerbInsert = "insert"
)

// Verb returns the action kind, or "" when zero or several kinds are set.
func (a Action) Verb() string {
	verb := ""
	n := 0
	if a.Log != "" {
		verb, n = VerbLog, n+1
	}
	if a.Hide != "" {
		verb, n = VerbHide, n+1
	}
	if a.Reveal != "" {
		verb, n = VerbReveal, n+1
	}
	if a.Insert != "" {
		verb, n = VerbInsert, n+1
	}
	if n != 1 {
		return ""
	}
	return verb
}

// Beat is one scheduled, one-shot step of the demo.
type Beat struct {
	Name    string        `yaml:"name"`
	At      time.Duration `yaml:"at"` // offset from session start
	Actions []Action      `yaml:"actions"`
}

// ClockConfig configures the clock ticker.
type ClockConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// FeedConfig configures the network feed ticker and its bounded window.
type FeedConfig struct {
	Capacity int           `yaml:"capacity"`
	Interval time.Duration `yaml:"interval"`
	Messages []FeedMessage `yaml:"messages"`
}

// Scenario is the full description of a demo session.
// This corresponds to ~/.threatsim/scenario.yaml.
type Scenario struct {
	Version  int           `yaml:"version"`
	Name     string        `yaml:"name"`
	Surfaces []SurfaceSpec `yaml:"surfaces"`
	Clock    ClockConfig   `yaml:"clock"`
	Feed     FeedConfig    `yaml:"feed"`
	Beats    []Beat        `yaml:"beats"`
}

// NewScenario returns the built-in attack demonstration.
func NewScenario() *Scenario {
	return &Scenario{
		Version: 1,
		Name:    "browser-session-takeover",
		Surfaces: []SurfaceSpec{
			{ID: SurfaceClock},
			{ID: SurfaceLog},
			{ID: SurfaceFeed},
			{ID: SurfaceLoader},
			{ID: SurfaceDynamic},
			{
				ID:     SurfaceModal,
				Hidden: true,
				Content: []Fragment{{
					Kind:     "form",
					Label:    "Session expired. Sign in to continue.",
					Handler:  HandlerCaptureCredentials,
					Children: 2,
				}},
			},
		},
		Clock: ClockConfig{Interval: time.Second},
		Feed: FeedConfig{
			Capacity: 8,
			Interval: 800 * time.Millisecond,
			Messages: []FeedMessage{
				{Text: "> SRC: 192.168.0.44"},
				{Text: "> TARGET: /admin/login"},
				{Text: "> FIREWALL: BLOCKING...", Flagged: true},
				{Text: "> LATENCY: 432ms"},
				{Text: "> HASH: 8f4a2c9e..."},
				{Text: "> PORT: 443 OPEN"},
			},
		},
		Beats: []Beat{
			{
				Name: "recon",
				At:   1000 * time.Millisecond,
				Actions: []Action{
					{Log: "Analyzing DOM structure...", Category: CategoryInfo},
				},
			},
			{
				Name: "hidden-css",
				At:   2000 * time.Millisecond,
				Actions: []Action{
					{Log: "⚠ DETECTED: Hidden CSS Text found (Attack #1)", Category: CategoryDanger},
					{Log: `--> Rule: "ROOT_OVERRIDE" identified`, Category: CategoryInfo},
				},
			},
			{
				Name: "prompt-injection",
				At:   3000 * time.Millisecond,
				Actions: []Action{
					{Log: "⚠ DETECTED: Visible Prompt Injection (Attack #2)", Category: CategoryDanger},
					{Log: "--> Loc: Debug Console / Sidebar", Category: CategoryInfo},
				},
			},
			{
				Name: "button-injection",
				At:   4500 * time.Millisecond,
				Actions: []Action{
					{Hide: SurfaceLoader},
					{Insert: SurfaceDynamic, Fragment: &Fragment{
						Kind:     "button",
						Label:    "Authorize All (3)",
						Handler:  HandlerTriggerClickjack,
						Children: 2,
					}},
					{Log: "⚡ JS Injection: Fake Button inserted", Category: CategoryWarn, Requires: SurfaceDynamic},
				},
			},
			{
				Name: "phishing-modal",
				At:   6000 * time.Millisecond,
				Actions: []Action{
					{Reveal: SurfaceModal},
					{Log: "☠ Phishing Modal Deployed", Category: CategoryDanger, Requires: SurfaceModal},
				},
			},
		},
	}
}

// Validate checks the scenario for structural errors.
func (s *Scenario) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: empty scenario", ErrInvalidScenario)
	}
	if s.Feed.Capacity <= 0 {
		return fmt.Errorf("%w: feed capacity must be positive, got %d", ErrInvalidScenario, s.Feed.Capacity)
	}
	if s.Feed.Interval <= 0 {
		return fmt.Errorf("%w: feed interval must be positive", ErrInvalidScenario)
	}
	if len(s.Feed.Messages) == 0 {
		return fmt.Errorf("%w: feed catalog is empty", ErrInvalidScenario)
	}
	if s.Clock.Interval < 0 {
		return fmt.Errorf("%w: clock interval must not be negative", ErrInvalidScenario)
	}

	seen := make(map[string]bool, len(s.Surfaces))
	for _, sf := range s.Surfaces {
		if sf.ID == "" {
			return fmt.Errorf("%w: surface without id", ErrInvalidScenario)
		}
		if seen[sf.ID] {
			return fmt.Errorf("%w: duplicate surface %q", ErrInvalidScenario, sf.ID)
		}
		seen[sf.ID] = true
	}

	for _, b := range s.Beats {
		if b.At < 0 {
			return fmt.Errorf("%w: beat %q has negative offset %v", ErrInvalidScenario, b.Name, b.At)
		}
		for i, a := range b.Actions {
			switch a.Verb() {
			case "":
				return fmt.Errorf("%w: beat %q action %d must set exactly one of log, hide, reveal, insert", ErrInvalidScenario, b.Name, i)
			case VerbLog:
				if a.Category != "" && !a.Category.Valid() {
					return fmt.Errorf("%w: beat %q action %d has unknown category %q", ErrInvalidScenario, b.Name, i, a.Category)
				}
			case VerbInsert:
				if a.Fragment == nil {
					return fmt.Errorf("%w: beat %q action %d inserts without a fragment", ErrInvalidScenario, b.Name, i)
				}
			}
		}
	}
	return nil
}

// SortedBeats returns the beats ordered by offset. Beats sharing an offset
// keep their declaration order.
func (s *Scenario) SortedBeats() []Beat {
	beats := make([]Beat, len(s.Beats))
	copy(beats, s.Beats)
	sort.SliceStable(beats, func(i, j int) bool {
		return beats[i].At < beats[j].At
	})
	return beats
}
