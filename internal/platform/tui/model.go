package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/crawlcore/internal/core"
)

// Model is the Bubble Tea model running one session. Terminal input is
// turned into raw events for the engine; ticks run the engine at the
// configured rate.
type Model struct {
	session  *Session
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     PlayKeyMap
	help     help.Model
	showHelp bool
	quitting bool
	back     bool
	err      error
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(s *Session, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	return Model{
		session: s,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultPlayKeyMap(),
		help:    help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.session.ID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.session.Send(TranslateMouse(msg, m.config)...)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Session != m.session.ID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.finish()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.back = true
		m.finish()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if ev, ok := TranslateKey(msg); ok {
		m.session.Send(ev)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}
	if err := m.session.Tick(); err != nil {
		m.err = err
		m.quitting = true
		m.finish()
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate, m.session.ID)
}

func (m *Model) finish() {
	if _, err := m.session.Finish(); err != nil && m.err == nil {
		m.err = err
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	DrawFrame(m.screen, m.config, m.session.Engine, m.session.Presenter, m.session.Scenario.Title)
	out := RenderScreen(m.screen)
	if m.showHelp {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error { return m.err }

// IsQuitting returns true if the user asked to leave entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if the user asked to go back to the menu.
func (m Model) BackToMenu() bool { return m.back }

// Run plays a session in the local terminal and records it when the
// program exits. It reports whether the user asked to go back to the menu.
func Run(s *Session, cfg core.RuntimeConfig) (goBack bool, err error) {
	p := tea.NewProgram(
		NewModel(s, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if _, ferr := s.Finish(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return fm.BackToMenu(), fm.Err()
}
