// Package timeline schedules world events by absolute game time.
package timeline

import (
	"container/heap"
	"fmt"

	"github.com/vovakirdan/crawlcore/internal/dungeon"
)

// EventType identifies what a timed event does when it comes due.
type EventType int

const (
	EventDoor           EventType = 10
	EventViAltarRebirth EventType = 13
)

func (t EventType) String() string {
	switch t {
	case EventDoor:
		return "door"
	case EventViAltarRebirth:
		return "vi-altar-rebirth"
	default:
		return fmt.Sprintf("event(%d)", int(t))
	}
}

// Event is one scheduled world change.
type Event struct {
	MapIndex int            `json:"map"`
	X        int            `json:"x"`
	Y        int            `json:"y"`
	Type     EventType      `json:"type"`
	Cell     int            `json:"cell"`
	Effect   dungeon.Effect `json:"effect"`
	Time     int64          `json:"time"`
	Priority int            `json:"priority"`
}

// Scheduler accepts timed events.
type Scheduler interface {
	Add(ev Event)
}

// Timeline is the default Scheduler: a min-heap ordered by time, then
// priority, then insertion order.
type Timeline struct {
	h   eventHeap
	seq uint64
}

// New creates an empty timeline.
func New() *Timeline {
	return &Timeline{}
}

// Add implements Scheduler.
func (t *Timeline) Add(ev Event) {
	heap.Push(&t.h, entry{Event: ev, seq: t.seq})
	t.seq++
}

// Len returns the number of scheduled events.
func (t *Timeline) Len() int {
	return t.h.Len()
}

// Peek returns the next event without removing it.
func (t *Timeline) Peek() (Event, bool) {
	if t.h.Len() == 0 {
		return Event{}, false
	}
	return t.h[0].Event, true
}

// Due removes and returns, in order, every event scheduled at or before now.
func (t *Timeline) Due(now int64) []Event {
	var out []Event
	for t.h.Len() > 0 && t.h[0].Time <= now {
		out = append(out, heap.Pop(&t.h).(entry).Event)
	}
	return out
}

// Pending returns a snapshot of scheduled events in firing order.
func (t *Timeline) Pending() []Event {
	cp := make(eventHeap, len(t.h))
	copy(cp, t.h)
	out := make([]Event, 0, len(cp))
	for cp.Len() > 0 {
		out = append(out, heap.Pop(&cp).(entry).Event)
	}
	return out
}

type entry struct {
	Event
	seq uint64
}

type eventHeap []entry

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	if h[i].Priority != h[j].Priority {
		return h[i].Priority > h[j].Priority
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
