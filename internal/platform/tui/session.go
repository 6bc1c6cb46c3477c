package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/engine"
	"github.com/vovakirdan/crawlcore/internal/hittest"
	"github.com/vovakirdan/crawlcore/internal/input"
	"github.com/vovakirdan/crawlcore/internal/journal"
	"github.com/vovakirdan/crawlcore/internal/logging"
	"github.com/vovakirdan/crawlcore/internal/scenario"
	"github.com/vovakirdan/crawlcore/internal/storage"
)

// inputBuffer is how many raw events a session buffers between ticks.
const inputBuffer = 256

// SessionOptions configures one play session.
type SessionOptions struct {
	Scenario     *scenario.Scenario
	Seed         int64 // 0 picks one from the clock
	MovementKeys hittest.KeyTable

	// Store records the session when it finishes. Nil disables history.
	Store *storage.Store
	// JournalDir receives the input journal. Empty disables journaling.
	JournalDir string

	Origin string // "local" or "ssh"
	Player string
	Logger *log.Logger
}

// Session is one running scenario: the engine, its input source and the
// recording of what happened.
type Session struct {
	ID        string
	Seed      int64
	Scenario  *scenario.Scenario
	Engine    *engine.Engine
	Presenter *Presenter

	opts     SessionOptions
	source   *input.ChannelSource
	recorder *journal.Recorder
	journal  string
	started  time.Time
	commands int
	finished bool
	logger   *log.Logger
}

// NewSession starts a scenario.
func NewSession(opts SessionOptions) (*Session, error) {
	if opts.Scenario == nil {
		return nil, errors.New("tui: session needs a scenario")
	}
	s := &Session{
		ID:        storage.NewSessionID(),
		Seed:      opts.Seed,
		Scenario:  opts.Scenario,
		Presenter: NewPresenter(),
		opts:      opts,
		source:    input.NewChannelSource(inputBuffer),
		started:   time.Now(),
		logger:    logging.OrDiscard(opts.Logger),
	}
	if s.Seed == 0 {
		s.Seed = s.started.UnixNano()
	}

	e, err := opts.Scenario.NewEngine(engine.Options{
		Source:       s.source,
		UI:           s.Presenter,
		MovementKeys: opts.MovementKeys,
		Seed:         s.Seed,
		Logger:       s.logger,
	})
	if err != nil {
		return nil, err
	}
	s.Engine = e
	e.Dispatched = func(int64, command.Command) { s.commands++ }

	if opts.JournalDir != "" {
		s.journal = journal.Path(opts.JournalDir, s.ID)
		w, err := journal.Create(s.journal, journal.Header{
			Session:  s.ID,
			Scenario: opts.Scenario.ID,
			Seed:     s.Seed,
			Started:  s.started.UTC(),
		})
		if err != nil {
			return nil, err
		}
		s.recorder = journal.NewRecorder(w)
		s.recorder.Attach(e)
	}

	s.logger.Info("session started", "session", s.ID, "scenario", opts.Scenario.ID, "seed", s.Seed, "player", opts.Player)
	return s, nil
}

// Send queues raw events for the next tick. Events that overflow the
// buffer are dropped.
func (s *Session) Send(events ...core.RawEvent) {
	for _, ev := range events {
		if !s.source.Send(ev) {
			s.logger.Warn("input dropped", "event", ev)
		}
	}
}

// Tick advances the engine one tick, journaling it when enabled.
func (s *Session) Tick() error {
	if s.finished {
		return nil
	}
	if s.recorder != nil {
		return s.recorder.Tick(s.Engine)
	}
	s.Engine.Tick()
	return nil
}

// Commands returns how many commands the session dispatched.
func (s *Session) Commands() int { return s.commands }

// Finish closes the journal and records the session. Later calls do
// nothing and return the zero Session.
func (s *Session) Finish() (storage.Session, error) {
	if s.finished {
		return storage.Session{}, nil
	}
	s.finished = true

	var errs []error
	if s.recorder != nil {
		if err := s.recorder.Finish(s.Engine); err != nil {
			errs = append(errs, err)
		}
	}

	snap := s.Engine.Snapshot()
	rec := storage.Session{
		ID:        s.ID,
		Scenario:  s.Scenario.ID,
		Origin:    s.opts.Origin,
		Player:    s.opts.Player,
		Seed:      s.Seed,
		Ticks:     snap.Tick,
		Commands:  s.commands,
		Champions: snap.Champions,
		FinalX:    snap.X,
		FinalY:    snap.Y,
		FinalDir:  snap.Dir,
		Journal:   s.journal,
		StartedAt: s.started,
		EndedAt:   time.Now(),
	}
	if s.opts.Store != nil {
		if _, err := s.opts.Store.SaveSession(rec); err != nil {
			errs = append(errs, err)
		}
	}

	s.logger.Info("session ended", "session", s.ID, "ticks", snap.Tick, "commands", s.commands)
	if err := errors.Join(errs...); err != nil {
		return rec, fmt.Errorf("tui: finish session: %w", err)
	}
	return rec, nil
}
