package journal

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/engine"
	"github.com/vovakirdan/crawlcore/internal/input"
)

// ErrDiverged is returned when a replay dispatches a different command or
// ends in a different state than the recorded session.
var ErrDiverged = errors.New("journal: replay diverged")

// Replay feeds the journal's events through src into e, a fresh engine
// built from the same scenario and seed, and checks every dispatched
// command against the recording. With an end snapshot the replay runs to
// the recorded tick count and compares the final state.
func Replay(j *Journal, e *engine.Engine, src *input.ScriptSource) (engine.Snapshot, error) {
	var got *command.Command
	prev := e.Dispatched
	e.Dispatched = func(tick int64, c command.Command) {
		got = &c
		if prev != nil {
			prev(tick, c)
		}
	}
	defer func() { e.Dispatched = prev }()

	end := int64(0)
	if n := len(j.Ticks); n > 0 {
		end = j.Ticks[n-1].Tick + 1
	}
	if j.End != nil {
		end = j.End.Tick
	}

	next := 0
	for e.GameTime() < end {
		tick := e.GameTime()
		var want *command.Command
		if next < len(j.Ticks) && j.Ticks[next].Tick == tick {
			src.Push(j.Ticks[next].Events...)
			want = j.Ticks[next].Command
			next++
		}
		got = nil
		e.Tick()
		if !sameCommand(got, want) {
			return e.Snapshot(), fmt.Errorf("%w: tick %d dispatched %s, recorded %s", ErrDiverged, tick, describe(got), describe(want))
		}
	}

	snap := e.Snapshot()
	if j.End != nil && snap != *j.End {
		return snap, fmt.Errorf("%w: final state %+v, recorded %+v", ErrDiverged, snap, *j.End)
	}
	return snap, nil
}

func sameCommand(a, b *command.Command) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func describe(c *command.Command) string {
	if c == nil {
		return "nothing"
	}
	return c.String()
}
