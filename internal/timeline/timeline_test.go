package timeline

import (
	"testing"

	"github.com/vovakirdan/crawlcore/internal/dungeon"
	"pgregory.net/rapid"
)

func TestDueOrder(t *testing.T) {
	tl := New()
	tl.Add(Event{Type: EventDoor, X: 1, Time: 5})
	tl.Add(Event{Type: EventDoor, X: 2, Time: 3})
	tl.Add(Event{Type: EventViAltarRebirth, X: 3, Time: 3, Priority: 2})
	tl.Add(Event{Type: EventDoor, X: 4, Time: 3})

	if ev, _ := tl.Peek(); ev.X != 3 {
		t.Errorf("Peek() = %+v, expected higher priority first", ev)
	}

	due := tl.Due(3)
	want := []int{3, 2, 4}
	if len(due) != len(want) {
		t.Fatalf("Due(3) = %+v, expected %d events", due, len(want))
	}
	for i, x := range want {
		if due[i].X != x {
			t.Errorf("Due(3)[%d].X = %d, expected %d", i, due[i].X, x)
		}
	}
	if tl.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", tl.Len())
	}
	if len(tl.Due(4)) != 0 {
		t.Error("nothing should be due at 4")
	}
	if got := tl.Due(10); len(got) != 1 || got[0].Effect != dungeon.EffectSet {
		t.Errorf("Due(10) = %+v", got)
	}
}

func TestPendingDoesNotConsume(t *testing.T) {
	tl := New()
	tl.Add(Event{Time: 2})
	tl.Add(Event{Time: 1})
	p := tl.Pending()
	if len(p) != 2 || p[0].Time != 1 {
		t.Errorf("Pending() = %+v", p)
	}
	if tl.Len() != 2 {
		t.Error("Pending() should not remove events")
	}
}

func TestDueIsSortedProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tl := New()
		times := rapid.SliceOf(rapid.Int64Range(0, 50)).Draw(t, "times")
		for _, tm := range times {
			tl.Add(Event{Time: tm})
		}
		due := tl.Due(50)
		if len(due) != len(times) {
			t.Fatalf("Due() returned %d of %d events", len(due), len(times))
		}
		for i := 1; i < len(due); i++ {
			if due[i].Time < due[i-1].Time {
				t.Fatalf("events out of order at %d: %d after %d", i, due[i].Time, due[i-1].Time)
			}
		}
	})
}
