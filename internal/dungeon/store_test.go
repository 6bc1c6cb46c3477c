package dungeon

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func newCorridor(t *testing.T) *Store {
	t.Helper()
	s, err := ParseLayout([]string{
		"#####",
		"#...#",
		"#...#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseLayout() error: %v", err)
	}
	return s
}

func TestLinkAppendsAtEnd(t *testing.T) {
	s := newCorridor(t)

	a, _ := s.Add(1, 1, Thing{Payload: &Junk{Type: 0}})
	b, _ := s.Add(1, 1, Thing{Payload: &Potion{Type: 3}})
	c, _ := s.Add(1, 1, Thing{Cell: 2, Payload: &Weapon{Type: 1}})

	got := s.Things(1, 1)
	want := []Handle{a, b, c}
	if len(got) != len(want) {
		t.Fatalf("Things() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Things()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if s.NextThing(c) != EndOfList {
		t.Error("last thing should be followed by EndOfList")
	}
	if s.FirstThing(2, 2) != EndOfList {
		t.Error("empty square should start with EndOfList")
	}
}

func TestUnlinkMiddle(t *testing.T) {
	s := newCorridor(t)
	a, _ := s.Add(1, 1, Thing{Payload: &Junk{}})
	b, _ := s.Add(1, 1, Thing{Payload: &Junk{}})
	c, _ := s.Add(1, 1, Thing{Payload: &Junk{}})

	if err := s.Unlink(b, 1, 1); err != nil {
		t.Fatalf("Unlink() error: %v", err)
	}
	got := s.Things(1, 1)
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("Things() after unlink = %v", got)
	}
	if _, _, on, _ := s.Location(b); on {
		t.Error("unlinked thing should be held")
	}
	if err := s.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants() error: %v", err)
	}
}

func TestContractViolations(t *testing.T) {
	s := newCorridor(t)
	h, _ := s.Add(1, 1, Thing{Payload: &Junk{}})

	tests := []struct {
		name string
		op   func() error
	}{
		{"unlink from wrong square", func() error { return s.Unlink(h, 2, 1) }},
		{"double link", func() error { return s.Link(h, 2, 1, 0) }},
		{"link out of bounds", func() error {
			held := s.New(Thing{Payload: &Junk{}})
			return s.Link(held, 9, 9, 0)
		}},
		{"move from wrong square", func() error { return s.Move(h, 3, 2, 2, 2, 0) }},
		{"move out of bounds", func() error { return s.Move(h, 1, 1, -1, 1, 0) }},
		{"unlink none", func() error { return s.Unlink(None, 1, 1) }},
		{"destroy linked", func() error { return s.Destroy(h) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.op()
			if !errors.Is(err, ErrContract) {
				t.Fatalf("error = %v, expected ErrContract", err)
			}
			if x, y, on, _ := s.Location(h); !on || x != 1 || y != 1 {
				t.Errorf("thing moved to (%d,%d) on=%v after failed op", x, y, on)
			}
		})
	}
}

func TestStaleHandle(t *testing.T) {
	s := newCorridor(t)
	h := s.New(Thing{Payload: &Junk{}})
	if err := s.Destroy(h); err != nil {
		t.Fatalf("Destroy() error: %v", err)
	}
	reused := s.New(Thing{Payload: &Potion{}})
	if reused == h {
		t.Fatal("reused slot should carry a new generation")
	}
	if s.Thing(h) != nil {
		t.Error("stale handle should not resolve")
	}
	if err := s.Link(h, 1, 1, 0); !errors.Is(err, ErrContract) {
		t.Errorf("Link(stale) error = %v, expected ErrContract", err)
	}
}

func TestMove(t *testing.T) {
	s := newCorridor(t)
	h, _ := s.Add(1, 1, Thing{Payload: &Junk{}})

	if err := s.Move(h, 1, 1, 3, 2, 6); err != nil {
		t.Fatalf("Move() error: %v", err)
	}
	if s.FirstThing(1, 1) != EndOfList {
		t.Error("source chain should be empty")
	}
	if s.FirstThing(3, 2) != h {
		t.Error("destination chain should hold the thing")
	}
	if c := s.Thing(h).Cell; c != 2 {
		t.Errorf("Cell = %d, expected normalized 2", c)
	}
}

func TestTakeAndPlace(t *testing.T) {
	s := newCorridor(t)
	h, _ := s.Add(1, 1, Thing{Payload: &Potion{}})

	if err := s.Take(h, 1, 1); err != nil {
		t.Fatalf("Take() error: %v", err)
	}
	if _, _, on, _ := s.Location(h); on {
		t.Error("taken thing should be held")
	}
	if err := s.Take(h, 1, 1); !errors.Is(err, ErrContract) {
		t.Errorf("Take() of a held thing = %v, expected ErrContract", err)
	}
	if err := s.Place(h, 2, 2, 3); err != nil {
		t.Fatalf("Place() error: %v", err)
	}
	if x, y, on, _ := s.Location(h); !on || x != 2 || y != 2 {
		t.Errorf("Location() = (%d,%d,%v), expected (2,2,true)", x, y, on)
	}
}

func TestPileTop(t *testing.T) {
	s := newCorridor(t)
	s.Add(1, 1, Thing{Cell: 0, Payload: &Junk{}})
	top, _ := s.Add(1, 1, Thing{Cell: 0, Payload: &Potion{}})
	s.Add(1, 1, Thing{Cell: 1, Payload: &Weapon{}})
	s.Add(1, 1, Thing{Cell: 0, Payload: &Sensor{Type: SensorWallClick}})

	if got := s.PileTop(1, 1, 0); got != top {
		t.Errorf("PileTop(cell 0) = %v, expected %v", got, top)
	}
	if got := s.PileTop(1, 1, 3); got != EndOfList {
		t.Errorf("PileTop(empty cell) = %v, expected EndOfList", got)
	}
}

// Random link/unlink/move sequences never leave a thing in two chains or in
// none.
func TestSingleLocationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := NewStore(4, 4)
		for i := range s.squares {
			s.squares[i].Element = ElementCorridor
		}
		var handles []Handle
		n := rapid.IntRange(1, 8).Draw(t, "things")
		for i := 0; i < n; i++ {
			h, err := s.Add(rapid.IntRange(0, 3).Draw(t, "x"), rapid.IntRange(0, 3).Draw(t, "y"), Thing{Payload: &Junk{Type: i}})
			if err != nil {
				t.Fatalf("Add() error: %v", err)
			}
			handles = append(handles, h)
		}

		steps := rapid.IntRange(0, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			h := rapid.SampledFrom(handles).Draw(t, "h")
			x, y, on, err := s.Location(h)
			if err != nil {
				t.Fatalf("Location() error: %v", err)
			}
			tx, ty := rapid.IntRange(0, 3).Draw(t, "tx"), rapid.IntRange(0, 3).Draw(t, "ty")
			switch {
			case !on:
				err = s.Link(h, tx, ty, 0)
			case rapid.Bool().Draw(t, "unlink"):
				err = s.Unlink(h, x, y)
			default:
				err = s.Move(h, x, y, tx, ty, rapid.IntRange(0, 3).Draw(t, "cell"))
			}
			if err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
			if err := s.CheckInvariants(); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
		}
	})
}
