package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ormasoftchile/taskview/pkg/backend"
	"github.com/ormasoftchile/taskview/pkg/mermaid"
	"github.com/ormasoftchile/taskview/pkg/render"
	"github.com/ormasoftchile/taskview/pkg/session"
)

// --- Tea messages ---

// taskDoneMsg delivers the completion of one submitted task.
type taskDoneMsg struct {
	completion session.Completion
}

// renderDoneMsg delivers one completed diagram render.
type renderDoneMsg struct {
	outcome render.Outcome
}

// --- Model ---

// Model is the top-level Bubble Tea model. All session and renderer
// mutations happen inside Update — the update loop is the event loop
// that serializes them; tea.Cmd goroutines only carry the blocking
// work and report back as messages.
type Model struct {
	input     textinput.Model
	spinner   spinner.Model
	reasoning reasoningPanel
	diagram   diagramPanel
	env       envBar

	session  *session.Session
	renderer *render.Renderer

	showHelp bool
	width    int
	height   int
}

// Config holds the parameters needed to launch the TUI.
type Config struct {
	Backend backend.Config
}

// NewModel builds a model. The executor and engine are interfaces so
// tests can drive the update loop without a network or a parser.
func NewModel(exec session.Executor, engine render.Engine, liveURL string) Model {
	ti := textinput.New()
	ti.Placeholder = "describe a browser task and press enter"
	ti.Prompt = promptStyle.Render("❯ ")
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := Model{
		input:     ti,
		spinner:   sp,
		reasoning: newReasoningPanel(),
		diagram:   newDiagramPanel(),
		session:   session.New(exec),
		renderer:  render.New(engine),
	}
	m.env.SetURL(liveURL)
	return m
}

// Run starts the TUI against a real backend.
func Run(cfg Config) error {
	client := backend.NewClient(cfg.Backend)
	m := NewModel(client, mermaid.Engine{}, cfg.Backend.LiveViewURL)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case taskDoneMsg:
		m.session.Finish(msg.completion)
		if result := m.session.Result(); msg.completion.Err == nil && result != nil {
			// Trace and diagram come from the same snapshot — the
			// session replaced them together.
			m.reasoning.SetSteps(result.Steps)
			req := m.renderer.Request(result.Diagram)
			cmds = append(cmds, runRender(req))
		}

	case renderDoneMsg:
		if m.renderer.Apply(msg.outcome) {
			m.diagram.SetOutcome(msg.outcome)
		}
	}

	return m, tea.Batch(cmds...)
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case matchKey(msg, keys.Quit):
		return m, tea.Quit

	case matchKey(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case matchKey(msg, keys.PgUp):
		m.diagram.PageUp()
		return m, nil

	case matchKey(msg, keys.PgDown):
		m.diagram.PageDown()
		return m, nil

	case matchKey(msg, keys.Clear):
		m.input.SetValue("")
		return m, nil

	case matchKey(msg, keys.Submit):
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands the instruction to the session. The session enforces
// single-flight and blank rejection itself; a rejected submit is a
// no-op with no command.
func (m *Model) submit() tea.Cmd {
	att, ok := m.session.Begin(m.input.Value())
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return taskDoneMsg{completion: att.Run(context.Background())}
	}
}

// runRender executes one epoch-tagged render off the update loop. The
// outcome comes back as a message and is applied (or discarded as
// stale) on the loop.
func runRender(req render.Request) tea.Cmd {
	return func() tea.Msg {
		return renderDoneMsg{outcome: req.Run(context.Background())}
	}
}

// layoutPanels splits the available area between the two panels.
func (m *Model) layoutPanels() {
	if m.width <= 0 {
		return
	}
	// borders and padding eat a few columns per panel
	panelWidth := (m.width - 6) / 2
	panelHeight := m.height - 8
	if panelHeight < 4 {
		panelHeight = 4
	}
	m.reasoning.SetSize(panelWidth, panelHeight)
	m.diagram.SetSize(panelWidth, panelHeight)
	m.input.Width = m.width - 6
}

// View implements tea.Model.
func (m Model) View() string {
	header := headerStyle.Render("taskview — browser task runner")

	prompt := "  " + m.input.View()

	status := ""
	switch m.session.State() {
	case session.StateSubmitting:
		status = "  " + m.spinner.View() + statusRunningStyle.Render(" running task…")
	case session.StateFailed:
		status = "  " + errorStyle.Render("✗ "+m.session.Reason())
	default:
		status = "  " + statusIdleStyle.Render("Ready")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.reasoning.View(), " ", m.diagram.View())
	if m.showHelp {
		body = renderMarkdown(helpText, max(40, m.width-4))
	}

	return header + "\n\n" +
		prompt + "\n" +
		status + "\n\n" +
		body + "\n" +
		m.env.View() + "\n" +
		"  " + keyBarText(m.session.State() == session.StateSubmitting) + "\n"
}
