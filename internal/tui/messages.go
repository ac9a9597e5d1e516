package tui

import "github.com/t4skforce/threatsim/internal/models"

// loopTickMsg wakes the model when the session's next timer is due.
// gen identifies the session it was scheduled for; ticks for a replaced
// session are dropped.
type loopTickMsg struct {
	gen int
}

// ScenarioReloadedMsg carries a scenario re-read after its file changed.
type ScenarioReloadedMsg struct {
	Scenario *models.Scenario
	Err      error
}

// ErrorMsg carries an error to display.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearNoticeMsg clears the status bar notice.
type ClearNoticeMsg struct{}
