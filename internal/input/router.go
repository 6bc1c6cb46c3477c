package input

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/hittest"
	"github.com/vovakirdan/crawlcore/internal/logging"
)

type pendingClick struct {
	present bool
	pos     core.Point
	button  core.MouseButton
}

// Router drains a Source into a command queue through the active hit-test
// tables. Button presses wait in a single pending-click slot and are resolved
// when flushed, so a click is always queued before any key pressed after it
// and before the dispatcher acts on the next command.
type Router struct {
	src    Source
	queue  command.Queue
	tables hittest.Set
	cursor core.Point
	click  pendingClick
	locked bool
	logger *log.Logger

	// Observe, when set, sees every polled event before it is routed.
	Observe func(core.RawEvent)
}

// NewRouter creates a router reading from src with the given tables.
func NewRouter(src Source, tables hittest.Set, logger *log.Logger) *Router {
	return &Router{
		src:    src,
		tables: tables,
		cursor: core.NoPoint,
		logger: logging.OrDiscard(logger),
	}
}

// SetTables switches the active hit-test tables.
func (r *Router) SetTables(s hittest.Set) {
	r.tables = s
}

// Tables returns the active hit-test tables.
func (r *Router) Tables() hittest.Set {
	return r.tables
}

// Cursor returns the last tracked mouse position.
func (r *Router) Cursor() core.Point {
	return r.cursor
}

// Locked reports whether a dispatch is between lock and pop.
func (r *Router) Locked() bool {
	return r.locked
}

// Queue exposes the pending commands.
func (r *Router) Queue() *command.Queue {
	return &r.queue
}

// ProcessInput drains every waiting event and returns how many were polled.
func (r *Router) ProcessInput() int {
	n := 0
	for {
		ev, ok := r.src.Poll()
		if !ok {
			return n
		}
		n++
		if r.Observe != nil {
			r.Observe(ev)
		}
		r.route(ev)
	}
}

func (r *Router) route(ev core.RawEvent) {
	if ev.Synthetic {
		return
	}
	switch ev.Kind {
	case core.EventKeyDown:
		for _, cmd := range r.tables.Keys(ev.Key, ev.Mods) {
			r.FlushPendingClick()
			r.queue.Push(command.Command{Pos: core.NoPoint, Type: cmd})
			r.logger.Debug("key command", "key", ev.Key, "mods", ev.Mods, "cmd", cmd)
		}
	case core.EventMouseMove:
		r.cursor = ev.Pos
	case core.EventButtonDown:
		if ev.Button != core.ButtonLeft && ev.Button != core.ButtonRight {
			return
		}
		if r.click.present {
			r.logger.Debug("pending click overwritten", "button", r.click.button, "x", r.click.pos.X, "y", r.click.pos.Y)
		}
		r.click = pendingClick{present: true, pos: r.cursor, button: ev.Button}
	}
}

// FlushPendingClick resolves the pending click, if any, and queues its
// command, then clears the lock. A click waiting while the lock is held is
// not converted and stays pending for the next flush.
func (r *Router) FlushPendingClick() {
	if !r.locked && r.click.present {
		c := r.click
		r.click = pendingClick{}
		if cmd := r.tables.Mouse(c.pos, c.button); cmd != command.None {
			r.queue.Push(command.Command{Pos: c.pos, Type: cmd})
			r.logger.Debug("click command", "button", c.button, "x", c.pos.X, "y", c.pos.Y, "cmd", cmd)
		}
	}
	r.locked = false
}

// Next pops one command for dispatch. Whatever the queue holds, the pending
// click is flushed after the pop and before the caller acts on the result.
func (r *Router) Next() (command.Command, bool) {
	r.locked = true
	c, ok := r.queue.Pop()
	r.locked = false
	r.FlushPendingClick()
	return c, ok
}

// HasPendingClick reports whether a click is waiting. The position is
// reported only when the waiting click used button b.
func (r *Router) HasPendingClick(b core.MouseButton) (bool, core.Point) {
	if r.click.present && r.click.button == b {
		return true, r.click.pos
	}
	return r.click.present, core.NoPoint
}

// DiscardAllInput drops every waiting raw event and queued command. A
// pending click survives and resolves against whatever tables are active
// when it is flushed.
func (r *Router) DiscardAllInput() {
	dropped := 0
	for {
		if _, ok := r.src.Poll(); !ok {
			break
		}
		dropped++
	}
	cleared := r.queue.Len()
	r.queue.Clear()
	if dropped > 0 || cleared > 0 {
		r.logger.Debug("input discarded", "events", dropped, "commands", cleared)
	}
}
