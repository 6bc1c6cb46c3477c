package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/hittest"
	"github.com/vovakirdan/crawlcore/internal/logging"
	"github.com/vovakirdan/crawlcore/internal/registry"
	"github.com/vovakirdan/crawlcore/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2323").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.crawl/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the engine rate of every session.
	TickRate int

	// JournalDir receives one journal per session. Empty disables journals.
	JournalDir string

	// MovementKeys replaces the default movement bindings when set.
	MovementKeys hittest.KeyTable
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":2323",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultConfig().TickRate,
	}
}

// SSHServer wraps a Wish SSH server running one crawl per connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. The store may be nil, in which
// case sessions are not recorded; the server does not close it.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logging.OrDiscard(logger),
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".crawl", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height
	cfg.TickRate = s.config.TickRate

	model := NewSessionModel(SessionModelOptions{
		Store:        s.store,
		Config:       cfg,
		Player:       sshSession.User(),
		JournalDir:   s.config.JournalDir,
		MovementKeys: s.config.MovementKeys,
		Logger:       s.logger.With("user", sshSession.User()),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("connection opened",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("connection closed",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModelOptions configures a SessionModel.
type SessionModelOptions struct {
	Store        *storage.Store
	Config       core.RuntimeConfig
	Player       string
	JournalDir   string
	MovementKeys hittest.KeyTable
	Logger       *log.Logger
}

// stage is the screen a connection is on.
type stage int

const (
	stageMenu stage = iota
	stagePlay
	stageHistory
)

// SessionModel manages the flow of one SSH connection: menu -> play or
// history -> menu.
type SessionModel struct {
	opts     SessionModelOptions
	config   core.RuntimeConfig
	stage    stage
	menu     MenuModel
	history  HistoryModel
	play     *Model
	lastErr  error
	quitting bool
}

// NewSessionModel creates a new session model showing the menu.
func NewSessionModel(opts SessionModelOptions) SessionModel {
	opts.Logger = logging.OrDiscard(opts.Logger)
	return SessionModel{
		opts:   opts,
		config: opts.Config,
		menu:   NewMenuModel(opts.Config),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case stagePlay:
		return m.updatePlay(msg)
	case stageHistory:
		return m.updateHistory(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		m.stage = stageHistory
		m.history = NewHistoryModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		return m, m.history.Init()
	}

	// The menu's own quit command is dropped: it ends a standalone menu
	// program, not the connection.
	if selected := m.menu.Selected(); selected != nil {
		return m.startPlay(selected.ID)
	}
	return m, cmd
}

func (m SessionModel) startPlay(id string) (tea.Model, tea.Cmd) {
	sc, err := registry.Create(id)
	if err == nil {
		var s *Session
		s, err = NewSession(SessionOptions{
			Scenario:     sc,
			MovementKeys: m.opts.MovementKeys,
			Store:        m.opts.Store,
			JournalDir:   m.opts.JournalDir,
			Origin:       "ssh",
			Player:       m.opts.Player,
			Logger:       m.opts.Logger,
		})
		if err == nil {
			// TODO: finish the session when the client drops mid-play so the
			// journal gets its end record and the history row is written.
			play := NewModel(s, m.config)
			m.play = &play
			m.stage = stagePlay
			return m, m.play.Init()
		}
	}
	m.opts.Logger.Error("cannot start scenario", "scenario", id, "error", err)
	m.lastErr = err
	return m.backToMenu()
}

// updatePlay handles updates while a scenario runs.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(Model); ok {
		m.play = &playModel
	}

	if m.play.IsQuitting() {
		if err := m.play.Err(); err != nil {
			m.opts.Logger.Error("session failed", "error", err)
		}
		m.quitting = true
		return m, tea.Quit
	}
	if m.play.BackToMenu() {
		if err := m.play.Err(); err != nil {
			m.opts.Logger.Error("session failed", "error", err)
			m.lastErr = err
		}
		m.play = nil
		return m.backToMenu()
	}
	return m, cmd
}

// updateHistory handles updates on the history screen.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.stage = stageMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stagePlay:
		return m.play.View()
	case stageHistory:
		return m.history.View()
	}
	out := m.menu.View()
	if m.lastErr != nil {
		errStyle := colorStyles[core.ColorRed]
		out += "\n" + centerText(errStyle.Render(m.lastErr.Error()), m.config.ScreenW)
	}
	return out
}

// Err returns the last error shown to the user, if any.
func (m SessionModel) Err() error {
	return m.lastErr
}
