package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewScenarioIsValid(t *testing.T) {
	sc := NewScenario()
	require.NoError(t, sc.Validate())

	var offsets []time.Duration
	for _, b := range sc.SortedBeats() {
		offsets = append(offsets, b.At)
	}
	assert.Equal(t, []time.Duration{
		1000 * time.Millisecond,
		2000 * time.Millisecond,
		3000 * time.Millisecond,
		4500 * time.Millisecond,
		6000 * time.Millisecond,
	}, offsets)

	flagged := 0
	for _, m := range sc.Feed.Messages {
		if m.Flagged {
			flagged++
		}
	}
	assert.Equal(t, 1, flagged)
}

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"zero capacity", func(s *Scenario) { s.Feed.Capacity = 0 }},
		{"zero feed interval", func(s *Scenario) { s.Feed.Interval = 0 }},
		{"empty catalog", func(s *Scenario) { s.Feed.Messages = nil }},
		{"negative clock", func(s *Scenario) { s.Clock.Interval = -time.Second }},
		{"surface without id", func(s *Scenario) { s.Surfaces = append(s.Surfaces, SurfaceSpec{}) }},
		{"duplicate surface", func(s *Scenario) { s.Surfaces = append(s.Surfaces, SurfaceSpec{ID: SurfaceLog}) }},
		{"negative beat", func(s *Scenario) { s.Beats[0].At = -time.Millisecond }},
		{"action without verb", func(s *Scenario) { s.Beats[0].Actions = []Action{{Category: CategoryInfo}} }},
		{"action with two verbs", func(s *Scenario) { s.Beats[0].Actions = []Action{{Log: "x", Hide: SurfaceLoader}} }},
		{"unknown category", func(s *Scenario) { s.Beats[0].Actions[0].Category = "critical" }},
		{"insert without fragment", func(s *Scenario) { s.Beats[0].Actions = []Action{{Insert: SurfaceDynamic}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewScenario()
			tt.mutate(sc)
			assert.ErrorIs(t, sc.Validate(), ErrInvalidScenario)
		})
	}

	var nilScenario *Scenario
	assert.ErrorIs(t, nilScenario.Validate(), ErrInvalidScenario)
}

func TestScenarioYAMLDurations(t *testing.T) {
	doc := `
version: 1
name: short
surfaces:
  - id: terminal-log
  - id: network-logs
clock:
  interval: 1s
feed:
  capacity: 3
  interval: 800ms
  messages:
    - text: "> PING"
    - text: "> BLOCKED"
      flagged: true
beats:
  - name: only
    at: 4500ms
    actions:
      - log: hello
        category: warn
      - insert: dynamic-zone
        requires: dynamic-zone
        fragment:
          kind: button
          handler: triggerClickjack
          children: 2
`
	var sc Scenario
	require.NoError(t, yaml.Unmarshal([]byte(doc), &sc))
	require.NoError(t, sc.Validate())

	assert.Equal(t, 800*time.Millisecond, sc.Feed.Interval)
	assert.Equal(t, 4500*time.Millisecond, sc.Beats[0].At)
	assert.True(t, sc.Feed.Messages[1].Flagged)
	assert.Equal(t, VerbInsert, sc.Beats[0].Actions[1].Verb())
	assert.Equal(t, HandlerTriggerClickjack, sc.Beats[0].Actions[1].Fragment.Handler)
}

func TestActionVerb(t *testing.T) {
	assert.Equal(t, VerbLog, Action{Log: "x"}.Verb())
	assert.Equal(t, VerbHide, Action{Hide: "x"}.Verb())
	assert.Equal(t, VerbReveal, Action{Reveal: "x"}.Verb())
	assert.Equal(t, VerbInsert, Action{Insert: "x"}.Verb())
	assert.Equal(t, "", Action{}.Verb())
}
