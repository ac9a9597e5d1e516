package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active unless a text input has focus.
type GlobalKeys struct {
	Quit    key.Binding
	Help    key.Binding
	Restart key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
}

// PageKeys act on the target page and the threat console.
type PageKeys struct {
	Activate key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
}

var pageKeys = PageKeys{
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "click injected button"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "scroll log"),
	),
	ScrollDn: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "scroll log"),
	),
}

// FormKeys are active while the phishing modal is shown.
type FormKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
}

var formKeys = FormKeys{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("Tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("Shift+Tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "sign in"),
	),
}

// OverlayKeys close the help screen and alerts.
type OverlayKeys struct {
	Dismiss key.Binding
}

var overlayKeys = OverlayKeys{
	Dismiss: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("Esc", "close"),
	),
}
