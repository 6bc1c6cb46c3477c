package command

import (
	"testing"

	"github.com/vovakirdan/crawlcore/internal/core"
	"pgregory.net/rapid"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop() on empty queue should fail")
	}

	q.Push(Command{Pos: core.NoPoint, Type: MoveForward})
	q.Push(Command{Pos: core.Pt(10, 40), Type: ClickInDungeonView})
	q.Push(Command{Pos: core.NoPoint, Type: TurnLeft})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}
	if c, _ := q.Peek(); c.Type != MoveForward {
		t.Errorf("Peek() = %v, expected move-forward", c)
	}

	want := []Type{MoveForward, ClickInDungeonView, TurnLeft}
	for i, w := range want {
		c, ok := q.Pop()
		if !ok || c.Type != w {
			t.Errorf("Pop() #%d = %v, %v; expected %v", i, c, ok, w)
		}
	}
	if !q.Empty() {
		t.Error("queue should be empty after draining")
	}
}

func TestQueueClear(t *testing.T) {
	var q Queue
	q.Push(Command{Type: TurnRight})
	q.Push(Command{Type: TurnLeft})
	q.Pop()
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", q.Len())
	}
	q.Push(Command{Type: MoveLeft})
	if c, _ := q.Pop(); c.Type != MoveLeft {
		t.Errorf("Pop() after Clear = %v", c)
	}
}

func TestQueueOrderProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var q Queue
		var model []Type
		ops := rapid.SliceOfN(rapid.IntRange(0, 6), 0, 60).Draw(t, "ops")
		for _, op := range ops {
			if op == 0 {
				c, ok := q.Pop()
				if len(model) == 0 {
					if ok {
						t.Fatalf("Pop() returned %v from empty queue", c)
					}
					continue
				}
				if !ok || c.Type != model[0] {
					t.Fatalf("Pop() = %v, %v; expected %v", c, ok, model[0])
				}
				model = model[1:]
				continue
			}
			q.Push(Command{Pos: core.NoPoint, Type: Type(op)})
			model = append(model, Type(op))
		}
		if q.Len() != len(model) {
			t.Fatalf("Len() = %d, expected %d", q.Len(), len(model))
		}
	})
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{MoveForward, "move-forward"},
		{ClickInDungeonView, "click-dungeon-view"},
		{ClickOnSlotBoxChest1, "slot-30"},
		{ClickOnDialogChoice3, "dialog-choice-3"},
		{Type(999), "cmd(999)"},
	}
	for _, tc := range tests {
		if got := tc.t.String(); got != tc.want {
			t.Errorf("Type(%d).String() = %q, expected %q", int(tc.t), got, tc.want)
		}
	}
	if got, ok := ParseType("turn-left"); !ok || got != TurnLeft {
		t.Errorf("ParseType(turn-left) = %v, %v", got, ok)
	}
}
