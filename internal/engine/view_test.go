package engine_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/dungeon"
	"github.com/vovakirdan/crawlcore/internal/engine"
	"github.com/vovakirdan/crawlcore/internal/engine/mocks"
	"github.com/vovakirdan/crawlcore/internal/timeline"
)

// Screen points inside the default view boxes.
var (
	frontLeftPile  = core.Pt(50, 150)
	frontRightPile = core.Pt(150, 160)
	backRightPile  = core.Pt(150, 130)
	frontWall      = core.Pt(100, 70)
	alcoveNiche    = core.Pt(100, 90)
	leftThrowZone  = core.Pt(80, 60)
)

func clickView(e *engine.Engine, pos core.Point) {
	e.Router().Queue().Push(command.Command{Pos: pos, Type: command.ClickInDungeonView})
	e.DispatchOne()
}

// give puts an object on the front-left cell of the party square and has
// the leader pick it up.
func give(t *testing.T, e *engine.Engine, payload dungeon.Payload) dungeon.Handle {
	t.Helper()
	p := e.Party()
	h, err := e.Store().Add(p.X, p.Y, dungeon.Thing{Cell: int(p.Dir), Payload: payload})
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	clickView(e, frontLeftPile)
	if p.LeaderHand != h {
		t.Fatalf("LeaderHand = %v, expected %v", p.LeaderHand, h)
	}
	return h
}

func TestGrabTakesPileTopOnce(t *testing.T) {
	e, src := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
	idx := addLeader(e, "HALK")
	s := e.Store()
	bottom, _ := s.Add(3, 3, dungeon.Thing{Cell: 0, Payload: &dungeon.Potion{Type: 3}})
	top, _ := s.Add(3, 3, dungeon.Thing{Cell: 0, Payload: &dungeon.Potion{Type: 4}})

	src.Push(
		core.MouseMove(frontLeftPile.X, frontLeftPile.Y),
		core.ButtonDown(core.ButtonLeft, frontLeftPile.X, frontLeftPile.Y),
		core.ButtonDown(core.ButtonLeft, frontLeftPile.X, frontLeftPile.Y),
	)
	e.Router().ProcessInput()
	if _, ok := e.DispatchOne(); ok {
		t.Fatal("first DispatchOne() should only flush the click")
	}
	c, ok := e.DispatchOne()
	if !ok || c.Type != command.ClickInDungeonView {
		t.Fatalf("DispatchOne() = %v, %v, expected a dungeon view click", c, ok)
	}
	if _, ok := e.DispatchOne(); ok {
		t.Error("the second click should have replaced the first")
	}

	p := e.Party()
	if p.LeaderHand != top {
		t.Errorf("LeaderHand = %v, expected pile top %v", p.LeaderHand, top)
	}
	if _, _, on, _ := s.Location(bottom); !on {
		t.Error("object under the pile top should stay on the floor")
	}
	if got := p.Champions[idx].Load; got != 3 {
		t.Errorf("Load = %d, expected 3", got)
	}
	if err := s.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestGrabNeedsLeader(t *testing.T) {
	e, _ := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
	h, _ := e.Store().Add(3, 3, dungeon.Thing{Cell: 0, Payload: &dungeon.Scroll{}})
	clickView(e, frontLeftPile)
	if e.Party().LeaderHand != dungeon.None {
		t.Error("a leaderless party cannot grab")
	}
	if _, _, on, _ := e.Store().Location(h); !on {
		t.Error("scroll should stay on the floor")
	}
}

func TestGrabBlockedByCreature(t *testing.T) {
	tests := []struct {
		name       string
		levitating bool
		wantHeld   bool
	}{
		{"walking creature guards the cell", false, false},
		{"levitating creature does not", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
			addLeader(e, "HALK")
			s := e.Store()
			h, _ := s.Add(3, 2, dungeon.Thing{Cell: 2, Payload: &dungeon.Weapon{Type: 1}})
			s.Add(3, 2, dungeon.Thing{Payload: &dungeon.Group{Cells: 1 << 2, Levitating: tt.levitating}})

			clickView(e, backRightPile)
			if held := e.Party().LeaderHand == h; held != tt.wantHeld {
				t.Errorf("held = %v, expected %v", held, tt.wantHeld)
			}
		})
	}
}

func TestDropOnFloor(t *testing.T) {
	e, _ := newTestEngine(t, openRoom, 3, 3, dungeon.East, engine.Options{})
	idx := addLeader(e, "HALK")
	h := give(t, e, &dungeon.Armour{Type: 2})

	clickView(e, frontRightPile)
	p := e.Party()
	if p.LeaderHand != dungeon.None {
		t.Fatal("object should have been dropped")
	}
	x, y, on, err := e.Store().Location(h)
	if err != nil || !on || x != 3 || y != 3 {
		t.Errorf("Location() = (%d,%d,%v,%v), expected on (3,3)", x, y, on, err)
	}
	if cell := e.Store().Thing(h).Cell; cell != 2 {
		t.Errorf("cell = %d, expected 2", cell)
	}
	if p.Champions[idx].Load != 0 {
		t.Errorf("Load = %d, expected 0", p.Champions[idx].Load)
	}
}

func TestDoorButton(t *testing.T) {
	rows := []string{
		"###",
		"#B#",
		"#.#",
		"###",
	}
	t.Run("schedules a toggle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sched := mocks.NewMockScheduler(ctrl)
		sched.EXPECT().Add(timeline.Event{X: 1, Y: 1, Type: timeline.EventDoor, Effect: dungeon.EffectToggle, Time: 1}).Times(1)

		e, _ := newTestEngine(t, rows, 1, 2, dungeon.North, engine.Options{Scheduler: sched})
		addLeader(e, "HALK")
		clickView(e, frontWall)
		if !e.StopWaiting() {
			t.Error("pressing the button should end the wait for input")
		}
	})

	t.Run("needs a leader", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sched := mocks.NewMockScheduler(ctrl)
		e, _ := newTestEngine(t, rows, 1, 2, dungeon.North, engine.Options{Scheduler: sched})
		clickView(e, frontWall)
	})

	t.Run("opens the door on time", func(t *testing.T) {
		e, _ := newTestEngine(t, rows, 1, 2, dungeon.North, engine.Options{})
		addLeader(e, "HALK")
		clickView(e, frontWall)
		if n := e.Timeline().Len(); n != 1 {
			t.Fatalf("Timeline().Len() = %d, expected 1", n)
		}
		e.Tick()
		e.Tick()
		if st := e.Store().Square(1, 1).Door; st != dungeon.DoorOpen {
			t.Errorf("door = %v, expected open", st)
		}
	})
}

func TestFountainRefill(t *testing.T) {
	rows := []string{
		"###",
		"#F#",
		"#.#",
		"###",
	}
	tests := []struct {
		name       string
		payload    dungeon.Payload
		wantWeight int
	}{
		{"empty waterskin", &dungeon.Junk{Type: dungeon.JunkWaterskin}, 9},
		{"half water", &dungeon.Junk{Type: dungeon.JunkWater, ChargeCount: 1}, 9},
		{"empty flask", &dungeon.Potion{Type: dungeon.PotionEmptyFlask}, 3},
		{"sword", &dungeon.Weapon{Type: 4}, 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sensors := mocks.NewMockSensorHook(ctrl)
			e, _ := newTestEngine(t, rows, 1, 2, dungeon.North, engine.Options{Sensors: sensors})
			idx := addLeader(e, "HALK")
			h := give(t, e, tt.payload)

			sensors.EXPECT().WallClicked(1, 1, dungeon.South, h, int64(0)).Return(false).Times(1)
			clickView(e, frontWall)

			if got := dungeon.Weight(e.Store().Thing(h).Payload); got != tt.wantWeight {
				t.Errorf("Weight() = %d, expected %d", got, tt.wantWeight)
			}
			if got := e.Party().Champions[idx].Load; got != tt.wantWeight {
				t.Errorf("Load = %d, expected %d", got, tt.wantWeight)
			}
		})
	}
}

func TestTouchFrontWall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sensors := mocks.NewMockSensorHook(ctrl)
	sensors.EXPECT().WallClicked(3, 0, dungeon.South, dungeon.None, int64(0)).Return(true).Times(1)

	e, _ := newTestEngine(t, openRoom, 3, 1, dungeon.North, engine.Options{Sensors: sensors})
	addLeader(e, "HALK")
	clickView(e, frontWall)
	if !e.StopWaiting() {
		t.Error("a fired wall sensor should end the wait for input")
	}
}

func TestWallSensorOpensDoor(t *testing.T) {
	rows := []string{
		"#####",
		"##D.#",
		"#...#",
		"#####",
	}
	e, _ := newTestEngine(t, rows, 1, 2, dungeon.North, engine.Options{})
	addLeader(e, "HALK")
	e.Store().Add(1, 1, dungeon.Thing{Cell: int(dungeon.South), Payload: &dungeon.Sensor{
		Type: dungeon.SensorWallClick, Effect: dungeon.EffectSet, TargetX: 2, TargetY: 1,
	}})

	clickView(e, frontWall)
	e.Tick()
	e.Tick()
	if st := e.Store().Square(2, 1).Door; st != dungeon.DoorOpen {
		t.Errorf("door = %v, expected open", st)
	}
}

func TestViAltarRebirth(t *testing.T) {
	rows := []string{
		"###",
		"#V#",
		"#.#",
		"###",
	}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ui := mocks.NewMockUI(ctrl)
	ui.EXPECT().SetPointer(gomock.Any()).AnyTimes()
	ui.EXPECT().AltarRebirth(timeline.Event{
		X: 1, Y: 1, Type: timeline.EventViAltarRebirth, Cell: 2,
		Effect: dungeon.EffectToggle, Time: 1, Priority: 2,
	}).Times(1)

	e, _ := newTestEngine(t, rows, 1, 2, dungeon.North, engine.Options{UI: ui})
	addLeader(e, "HALK")
	bones := give(t, e, &dungeon.Junk{Type: dungeon.JunkChampionBones, ChargeCount: 2})

	clickView(e, alcoveNiche)
	x, y, on, _ := e.Store().Location(bones)
	if !on || x != 1 || y != 1 {
		t.Fatalf("bones at (%d,%d,%v), expected in the altar at (1,1)", x, y, on)
	}
	e.Tick()
	e.Tick()
}

func TestAlcoveDropWithoutAltar(t *testing.T) {
	rows := []string{
		"###",
		"#A#",
		"#.#",
		"###",
	}
	e, _ := newTestEngine(t, rows, 1, 2, dungeon.North, engine.Options{})
	addLeader(e, "HALK")
	bones := give(t, e, &dungeon.Junk{Type: dungeon.JunkChampionBones})

	clickView(e, alcoveNiche)
	if _, _, on, _ := e.Store().Location(bones); !on {
		t.Error("bones should lie in the alcove")
	}
	if e.Timeline().Len() != 0 {
		t.Error("a plain alcove schedules nothing")
	}
}

func TestThrow(t *testing.T) {
	rows := []string{
		"###",
		"#.#",
		"#.#",
		"###",
	}
	t.Run("lands where the thrower says", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		thrower := mocks.NewMockThrower(ctrl)
		e, _ := newTestEngine(t, rows, 1, 2, dungeon.North, engine.Options{Thrower: thrower})
		idx := addLeader(e, "HALK")
		h := give(t, e, &dungeon.Potion{Type: 3})

		thrower.EXPECT().Throw(engine.SideLeft, h, 1, 2, dungeon.North).Return(1, 1, 3, true).Times(1)
		clickView(e, leftThrowZone)

		x, y, on, _ := e.Store().Location(h)
		if !on || x != 1 || y != 1 || e.Store().Thing(h).Cell != 3 {
			t.Errorf("potion at (%d,%d,%v), expected on (1,1) cell 3", x, y, on)
		}
		if e.Party().Champions[idx].Load != 0 {
			t.Error("thrown object should leave the leader's load")
		}
		if !e.StopWaiting() {
			t.Error("throwing should end the wait for input")
		}
	})

	t.Run("refused throw keeps the object", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		thrower := mocks.NewMockThrower(ctrl)
		e, _ := newTestEngine(t, rows, 1, 2, dungeon.North, engine.Options{Thrower: thrower})
		addLeader(e, "HALK")
		h := give(t, e, &dungeon.Potion{Type: 3})

		thrower.EXPECT().Throw(engine.SideRight, h, 1, 2, dungeon.North).Return(0, 0, 0, false).Times(1)
		clickView(e, core.Pt(150, 60))
		if e.Party().LeaderHand != h {
			t.Error("leader should still hold the potion")
		}
	})

	t.Run("default thrower", func(t *testing.T) {
		e, _ := newTestEngine(t, rows, 1, 2, dungeon.North, engine.Options{})
		addLeader(e, "HALK")
		h := give(t, e, &dungeon.Potion{Type: 3})
		clickView(e, core.Pt(150, 60))
		if x, y, _, _ := e.Store().Location(h); x != 1 || y != 1 {
			t.Errorf("potion at (%d,%d), expected (1,1)", x, y)
		}
		if cell := e.Store().Thing(h).Cell; cell != 2 {
			t.Errorf("cell = %d, expected 2", cell)
		}
	})
}

func TestThrowZoneOutsideDropsNothing(t *testing.T) {
	e, _ := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
	addLeader(e, "HALK")
	h := give(t, e, &dungeon.Scroll{})
	clickView(e, core.Pt(10, 60))
	if e.Party().LeaderHand != h {
		t.Error("click outside throw zones and piles should keep the object")
	}
}
