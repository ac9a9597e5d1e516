package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/t4skforce/threatsim/internal/models"
	"github.com/t4skforce/threatsim/internal/sim"
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	opts Options

	// Session state
	scenario  *models.Scenario
	session  *sim.Session
	gen      int // bumped per session so stale loop ticks are dropped

	// UI state
	splitRatio float64 // Default 0.45
	width      int
	height     int
	showHelp   bool

	// Status display
	err    error
	notice string

	// Child components
	console *Console
	form    *CredentialForm
	spinner spinner.Model
	alerts  *alertQueue

	// Program reference for goroutine Send()
	program *programRef
}

// NewModel creates the initial TUI model and builds its first session.
func NewModel(opts Options, program *programRef) (Model, error) {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loaderStyle

	m := Model{
		opts:       opts,
		scenario:   opts.Scenario,
		splitRatio: 0.45,
		console:    NewConsole(),
		form:       NewCredentialForm(44),
		spinner:    sp,
		alerts:     newAlertQueue(),
		program:    program,
	}
	if m.scenario == nil {
		m.scenario = models.NewScenario()
	}
	if err := m.startSession(); err != nil {
		return m, err
	}
	return m, nil
}

// startSession replaces the running session with a fresh, started one.
// The previous session keeps running if the new one cannot be built.
func (m *Model) startSession() error {
	var opts []sim.Option
	opts = append(opts, sim.WithAlerter(m.alerts.Push))
	if m.opts.Seed != nil {
		opts = append(opts, sim.WithSeed(*m.opts.Seed))
	}
	s, err := sim.NewSession(m.scenario, opts...)
	if err != nil {
		return err
	}
	if err := s.Start(); err != nil {
		return err
	}
	if m.session != nil {
		m.session.Stop()
	}
	m.session = s
	m.gen++
	m.alerts.Clear()
	m.form.Reset()
	m.console.Reset(s.Log)
	return nil
}

// restart discards the session and runs the scenario again from zero.
func (m *Model) restart() tea.Cmd {
	if err := m.startSession(); err != nil {
		m.err = err
		return clearErrorAfter(5 * time.Second)
	}
	return m.nextLoopTick()
}

// nextLoopTick schedules a wakeup for the session's next due timer.
func (m *Model) nextLoopTick() tea.Cmd {
	due, ok := m.session.NextDue()
	if !ok {
		return nil
	}
	return loopTick(m.gen, due-m.session.Elapsed())
}

// Init schedules the first loop tick and starts the loader spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.nextLoopTick(),
		m.spinner.Tick,
	)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	// ── Mouse events ───────────────────────────────────────────────
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	// ── Session loop ───────────────────────────────────────────────
	case loopTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.session.Advance(time.Since(m.session.Loop.Start()))
		m.console.Sync()
		return m, m.nextLoopTick()

	case ScenarioReloadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, clearErrorAfter(5 * time.Second)
		}
		prev := m.scenario
		m.scenario = msg.Scenario
		if err := m.startSession(); err != nil {
			m.scenario = prev
			m.err = err
			return m, clearErrorAfter(5 * time.Second)
		}
		m.notice = fmt.Sprintf("Reloaded %q", m.scenario.Name)
		log.Printf("[tui] scenario reloaded: %s", m.scenario.Name)
		return m, tea.Batch(m.nextLoopTick(), clearNoticeAfter(3*time.Second))

	// ── Spinner ────────────────────────────────────────────────────
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// ── Status bar ─────────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case ClearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.session.Stop()
		return tea.Quit
	}

	// Alerts block everything else until dismissed
	if m.alerts.Len() > 0 {
		if key.Matches(msg, overlayKeys.Dismiss) {
			m.alerts.Dismiss()
		}
		return nil
	}

	if m.showHelp {
		if key.Matches(msg, overlayKeys.Dismiss) || key.Matches(msg, globalKeys.Help) {
			m.showHelp = false
		}
		return nil
	}

	if m.modalVisible() {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		m.session.Stop()
		return tea.Quit
	case key.Matches(msg, globalKeys.Help):
		m.showHelp = true
	case key.Matches(msg, globalKeys.Restart):
		log.Printf("[tui] restart requested")
		return m.restart()
	case key.Matches(msg, pageKeys.Activate):
		m.clickInjected()
	case key.Matches(msg, pageKeys.ScrollUp):
		m.console.ScrollUp()
	case key.Matches(msg, pageKeys.ScrollDn):
		m.console.ScrollDown()
	}
	return nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, formKeys.Submit):
		m.submitForm()
	case key.Matches(msg, formKeys.Next):
		m.form.FocusNext()
	case key.Matches(msg, formKeys.Prev):
		m.form.FocusPrev()
	default:
		m.form.Update(msg)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if m.alerts.Len() > 0 || m.showHelp || m.modalVisible() {
		return
	}
	layout := computeLayout(m.width, m.height, m.splitRatio)
	// Row 0 is the header, the last row the status bar
	if msg.Y < 1 || msg.Y > layout.contentHeight {
		return
	}
	if msg.X < layout.dividerCol {
		m.clickInjected()
	}
}

// clickInjected delivers a click to the first bound element in the dynamic
// zone, the way a click on the page lands on the invisible overlay link.
func (m *Model) clickInjected() bool {
	return activateFirstBound(m.session, models.SurfaceDynamic, sim.NewEvent(nil))
}

// submitForm hands the form values to the modal's bound form handler.
func (m *Model) submitForm() {
	ev := sim.NewEvent(m.form.Fields())
	if activateFirstBound(m.session, models.SurfaceModal, ev) {
		log.Printf("[tui] form submitted (default prevented: %v)", ev.DefaultPrevented())
	}
	m.form.Reset()
}

func activateFirstBound(s *sim.Session, id string, ev *sim.Event) bool {
	sf, ok := s.Page.Surface(id)
	if !ok || !sf.Visible {
		return false
	}
	for i, n := range sf.Children {
		if n.Bound() {
			return s.Activate(id, i, ev)
		}
	}
	return false
}

func (m *Model) modalVisible() bool {
	return m.session != nil && m.session.Page.Visible(models.SurfaceModal)
}

// consoleHeight is the log viewport height once the feed window and the two
// section titles are taken out of the right panel.
func (m *Model) consoleHeight(innerHeight int) int {
	return max(innerHeight-m.scenario.Feed.Capacity-3, 3)
}

func (m *Model) updateDimensions() {
	layout := computeLayout(m.width, m.height, m.splitRatio)
	_, rightInner, innerHeight := layout.inner()
	m.console.SetSize(rightInner, m.consoleHeight(innerHeight))
}

// View renders the full TUI.
func (m Model) View() string {
	// Minimum size check
	if m.width < 80 || m.height < 24 {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					"Need 80x24, have "+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	layout := computeLayout(m.width, m.height, m.splitRatio)
	leftInner, rightInner, _ := layout.inner()

	header := renderHeader(m.scenario.Name, m.session.ID, m.session.Page, m.width)
	left := renderTargetPage(m.session.Page, m.spinner, leftInner)
	right := m.renderRightPanel(rightInner)
	panels := renderPanels(left, right, layout)
	statusBar := renderStatusBar(&m, m.width)

	view := lipgloss.JoinVertical(lipgloss.Left, header, panels, statusBar)

	switch {
	case m.showHelp:
		view = renderOverlay(view, renderHelp(m.width), m.width, m.height, true)
	case m.modalVisible():
		view = renderOverlay(view, m.form.View("Session expired. Sign in to continue"), m.width, m.height, true)
	}
	if msg, ok := m.alerts.Front(); ok {
		view = renderOverlay(view, renderAlert(msg), m.width, m.height, false)
	}
	return view
}

func (m *Model) renderRightPanel(width int) string {
	title := panelTitleStyle.Render("Threat Console")
	feedTitle := panelTitleStyle.Render("Network")
	var feed string
	if m.session.Page.Has(models.SurfaceFeed) {
		feed = renderFeed(m.session.Feed.Entries(), m.session.Feed.Cap())
	} else {
		feed = hintStyle.Render("(no network panel)")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.console.View(),
		"",
		feedTitle,
		lipgloss.NewStyle().MaxWidth(width).Render(feed),
	)
}
