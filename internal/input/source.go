// Package input turns raw device events into queued commands.
package input

import (
	"sync"

	"github.com/vovakirdan/crawlcore/internal/core"
)

// Source delivers raw device events. Poll never blocks; it reports false
// once no event is waiting.
type Source interface {
	Poll() (core.RawEvent, bool)
}

// ChannelSource is a Source fed from another goroutine, such as a terminal
// reader. Events that do not fit the buffer are dropped.
type ChannelSource struct {
	ch chan core.RawEvent
}

// NewChannelSource creates a source buffering up to size events.
func NewChannelSource(size int) *ChannelSource {
	return &ChannelSource{ch: make(chan core.RawEvent, size)}
}

// Send offers ev without blocking and reports whether it was buffered.
func (s *ChannelSource) Send(ev core.RawEvent) bool {
	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

// Poll implements Source.
func (s *ChannelSource) Poll() (core.RawEvent, bool) {
	select {
	case ev := <-s.ch:
		return ev, true
	default:
		return core.RawEvent{}, false
	}
}

// ScriptSource replays a fixed list of events, for tests and journal replay.
// Push may be called from another goroutine.
type ScriptSource struct {
	mu     sync.Mutex
	events []core.RawEvent
}

// NewScriptSource creates a source that yields events in order.
func NewScriptSource(events ...core.RawEvent) *ScriptSource {
	return &ScriptSource{events: events}
}

// Push appends events to the script.
func (s *ScriptSource) Push(events ...core.RawEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
}

// Len returns the number of events not yet polled.
func (s *ScriptSource) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// Poll implements Source.
func (s *ScriptSource) Poll() (core.RawEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return core.RawEvent{}, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}
