package journal

import (
	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/engine"
)

// Recorder captures what an engine polls and dispatches each tick.
type Recorder struct {
	w        *Writer
	events   []core.RawEvent
	cmd      *command.Command
	commands int
}

// NewRecorder creates a recorder writing to w.
func NewRecorder(w *Writer) *Recorder {
	return &Recorder{w: w}
}

// Attach hooks the recorder into e. Existing hooks keep running.
func (r *Recorder) Attach(e *engine.Engine) {
	router := e.Router()
	prevObserve := router.Observe
	router.Observe = func(ev core.RawEvent) {
		r.events = append(r.events, ev)
		if prevObserve != nil {
			prevObserve(ev)
		}
	}
	prevDispatched := e.Dispatched
	e.Dispatched = func(tick int64, c command.Command) {
		r.cmd = &c
		r.commands++
		if prevDispatched != nil {
			prevDispatched(tick, c)
		}
	}
}

// Tick runs one engine tick and journals it.
func (r *Recorder) Tick(e *engine.Engine) error {
	tick := e.GameTime()
	e.Tick()
	return r.flush(tick)
}

func (r *Recorder) flush(tick int64) error {
	if len(r.events) == 0 && r.cmd == nil {
		return nil
	}
	entry := TickEntry{Tick: tick, Events: r.events, Command: r.cmd}
	r.events, r.cmd = nil, nil
	return r.w.WriteTick(entry)
}

// Commands returns how many commands were dispatched while attached.
func (r *Recorder) Commands() int {
	return r.commands
}

// Finish writes the final snapshot of e and closes the journal.
func (r *Recorder) Finish(e *engine.Engine) error {
	if err := r.w.End(e.Snapshot()); err != nil {
		_ = r.w.Close()
		return err
	}
	return r.w.Close()
}
