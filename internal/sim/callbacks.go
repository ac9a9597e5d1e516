package sim

import "github.com/t4skforce/threatsim/internal/models"

// Event is the interaction that triggered a bound handler.
type Event struct {
	Fields map[string]string

	defaultPrevented bool
}

// NewEvent creates an event carrying the submitted field values, if any.
func NewEvent(fields map[string]string) *Event {
	return &Event{Fields: fields}
}

// PreventDefault suppresses the interaction's default effect.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Handler is a callback bound to an element's primary interaction.
type Handler func(ev *Event)

// Callbacks maps handler names to handlers. It is handed to NewActions so
// inserted fragments resolve their handler by name.
type Callbacks map[string]Handler

// Alerter reports a message to the operator.
type Alerter func(msg string)

// Demo alert messages.
const (
	AlertCredentialsStolen = "[DEMO] CREDENTIALS STOLEN!"
	AlertClickjack         = "[DEMO] CLICKJACKING SUCCESSFUL!"
)

// DemoCallbacks returns the credential-capture and clickjack handlers.
// Submitted credentials are discarded.
func DemoCallbacks(page *Page, alert Alerter) Callbacks {
	if alert == nil {
		alert = func(string) {}
	}
	return Callbacks{
		models.HandlerCaptureCredentials: func(ev *Event) {
			if ev != nil {
				ev.PreventDefault()
			}
			alert(AlertCredentialsStolen)
			page.SetVisible(models.SurfaceModal, false)
		},
		models.HandlerTriggerClickjack: func(*Event) {
			alert(AlertClickjack)
		},
	}
}
