package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CredentialForm is the fake sign-in form shown inside the phishing modal.
type CredentialForm struct {
	username textinput.Model
	password textinput.Model

	focusIndex int // 0=username, 1=password
	width      int
}

// NewCredentialForm creates an empty form.
func NewCredentialForm(width int) *CredentialForm {
	u := textinput.New()
	u.Placeholder = "username or email"
	u.CharLimit = 120
	u.Width = width - 14

	p := textinput.New()
	p.Placeholder = "password"
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'
	p.CharLimit = 120
	p.Width = width - 14

	f := &CredentialForm{username: u, password: p, width: width}
	f.username.Focus()
	return f
}

// FocusNext moves to the next field.
func (f *CredentialForm) FocusNext() {
	f.focusIndex = (f.focusIndex + 1) % 2
	f.applyFocus()
}

// FocusPrev moves to the previous field.
func (f *CredentialForm) FocusPrev() {
	f.focusIndex = (f.focusIndex + 1) % 2 // two fields, so prev == next
	f.applyFocus()
}

func (f *CredentialForm) applyFocus() {
	if f.focusIndex == 0 {
		f.password.Blur()
		f.username.Focus()
	} else {
		f.username.Blur()
		f.password.Focus()
	}
}

// FocusIndex returns the focused field.
func (f *CredentialForm) FocusIndex() int { return f.focusIndex }

// Update forwards a key to the focused input.
func (f *CredentialForm) Update(msg tea.KeyMsg) {
	if f.focusIndex == 0 {
		f.username, _ = f.username.Update(msg)
	} else {
		f.password, _ = f.password.Update(msg)
	}
}

// Fields returns the submitted values keyed by field name.
func (f *CredentialForm) Fields() map[string]string {
	return map[string]string{
		"username": f.username.Value(),
		"password": f.password.Value(),
	}
}

// Reset clears both inputs and focuses the first one.
func (f *CredentialForm) Reset() {
	f.username.Reset()
	f.password.Reset()
	f.focusIndex = 0
	f.applyFocus()
}

// View renders the modal with title as its heading.
func (f *CredentialForm) View(title string) string {
	label := func(i int, s string) string {
		if i == f.focusIndex {
			return formFocusedLabelStyle.Render(s)
		}
		return formLabelStyle.Render(s)
	}

	rows := []string{
		overlayTitleStyle.Foreground(colorOrange).Render("⚠ " + title),
		label(0, "Username") + f.username.View(),
		label(1, "Password") + f.password.View(),
		"",
		lipgloss.NewStyle().Foreground(colorDim).Render("Enter sign in · Tab next field"),
	}
	return modalStyle.Width(f.width).Render(strings.Join(rows, "\n"))
}
