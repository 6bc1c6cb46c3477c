package engine_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/dungeon"
	"github.com/vovakirdan/crawlcore/internal/engine"
	"github.com/vovakirdan/crawlcore/internal/hittest"
	"github.com/vovakirdan/crawlcore/internal/input"
	"github.com/vovakirdan/crawlcore/internal/party"
)

type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

var openRoom = []string{
	"#######",
	"#.....#",
	"#.....#",
	"#.....#",
	"#.....#",
	"#.....#",
	"#######",
}

func newTestEngine(t tb, rows []string, x, y int, d dungeon.Direction, opts engine.Options) (*engine.Engine, *input.ScriptSource) {
	t.Helper()
	store, err := dungeon.ParseLayout(rows)
	if err != nil {
		t.Fatalf("ParseLayout() error: %v", err)
	}
	src := input.NewScriptSource()
	opts.Store = store
	opts.Party = party.New(x, y, d)
	opts.Source = src
	e, err := engine.New(opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return e, src
}

// addLeader adds a living champion and makes it the leader.
func addLeader(e *engine.Engine, name string) int {
	idx := e.Party().Add(party.Champion{Name: name, Health: 50, MaxHealth: 50})
	e.SetLeader(idx)
	return idx
}

func TestNewRejectsBadStart(t *testing.T) {
	store, _ := dungeon.ParseLayout(openRoom)
	tests := []struct {
		name string
		opts engine.Options
	}{
		{"missing store", engine.Options{Party: party.New(1, 1, dungeon.North), Source: input.NewScriptSource()}},
		{"missing source", engine.Options{Store: store, Party: party.New(1, 1, dungeon.North)}},
		{"start in wall", engine.Options{Store: store, Party: party.New(0, 0, dungeon.North), Source: input.NewScriptSource()}},
		{"start off map", engine.Options{Store: store, Party: party.New(40, 2, dungeon.North), Source: input.NewScriptSource()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := engine.New(tt.opts); err == nil {
				t.Error("New() should fail")
			}
		})
	}
}

func TestMoveForwardUsesFacing(t *testing.T) {
	e, src := newTestEngine(t, openRoom, 5, 5, dungeon.North, engine.Options{})
	src.Push(core.KeyDown(core.KeyRune('w'), core.ModNone))
	e.Tick()

	p := e.Party()
	if p.X != 5 || p.Y != 4 {
		t.Errorf("position = (%d,%d), expected (5,4)", p.X, p.Y)
	}
	if p.LastMovementTime != 0 {
		t.Errorf("LastMovementTime = %d, expected 0", p.LastMovementTime)
	}
	if !e.StopWaiting() {
		t.Error("moving should end the wait for input")
	}
	if e.GameTime() != 1 {
		t.Errorf("GameTime() = %d, expected 1", e.GameTime())
	}
}

func TestMoveCommands(t *testing.T) {
	tests := []struct {
		name  string
		dir   dungeon.Direction
		cmd   command.Type
		wantX int
		wantY int
	}{
		{"forward north", dungeon.North, command.MoveForward, 3, 2},
		{"backward north", dungeon.North, command.MoveBackward, 3, 4},
		{"right north", dungeon.North, command.MoveRight, 4, 3},
		{"left north", dungeon.North, command.MoveLeft, 2, 3},
		{"forward east", dungeon.East, command.MoveForward, 4, 3},
		{"right east", dungeon.East, command.MoveRight, 3, 4},
		{"forward south", dungeon.South, command.MoveForward, 3, 4},
		{"left west", dungeon.West, command.MoveLeft, 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t, openRoom, 3, 3, tt.dir, engine.Options{})
			e.Router().Queue().Push(command.Command{Pos: core.NoPoint, Type: tt.cmd})
			if _, ok := e.DispatchOne(); !ok {
				t.Fatal("DispatchOne() should pop the command")
			}
			p := e.Party()
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("position = (%d,%d), expected (%d,%d)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMoveIntoWallIsBlocked(t *testing.T) {
	e, _ := newTestEngine(t, openRoom, 1, 1, dungeon.North, engine.Options{})
	e.Router().Queue().Push(command.Command{Pos: core.NoPoint, Type: command.MoveForward})
	e.DispatchOne()
	if p := e.Party(); p.X != 1 || p.Y != 1 {
		t.Errorf("position = (%d,%d), expected to stay at (1,1)", p.X, p.Y)
	}
}

func TestMoveThroughDoors(t *testing.T) {
	rows := []string{
		"#####",
		"#.D.#",
		"#.d.#",
		"#####",
	}
	e, _ := newTestEngine(t, rows, 1, 1, dungeon.East, engine.Options{})
	q := e.Router().Queue()

	q.Push(command.Command{Type: command.MoveForward})
	e.DispatchOne()
	if e.Party().X != 1 {
		t.Error("closed door should block")
	}

	q.Push(command.Command{Type: command.MoveRight})
	q.Push(command.Command{Type: command.MoveForward})
	e.DispatchOne()
	e.DispatchOne()
	if p := e.Party(); p.X != 2 || p.Y != 2 {
		t.Errorf("position = (%d,%d), expected to enter the open door at (2,2)", p.X, p.Y)
	}
}

func TestTurnRotatesChampions(t *testing.T) {
	e, _ := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
	addLeader(e, "HALK")
	e.Party().Add(party.Champion{Name: "ELIJA", Health: 10})

	e.Router().Queue().Push(command.Command{Type: command.TurnRight})
	e.DispatchOne()

	p := e.Party()
	if p.Dir != dungeon.East {
		t.Fatalf("Dir = %v, expected east", p.Dir)
	}
	for i, want := range []int{1, 2} {
		if p.Champions[i].Cell != want {
			t.Errorf("champion %d cell = %d, expected %d", i, p.Champions[i].Cell, want)
		}
		if p.Champions[i].Dir != dungeon.East {
			t.Errorf("champion %d dir = %v, expected east", i, p.Champions[i].Dir)
		}
	}

	e.Router().Queue().Push(command.Command{Type: command.TurnLeft})
	e.Router().Queue().Push(command.Command{Type: command.TurnLeft})
	e.DispatchOne()
	e.DispatchOne()
	if p.Dir != dungeon.West || p.Champions[0].Cell != 3 {
		t.Errorf("after two left turns Dir = %v cell = %d, expected west and 3", p.Dir, p.Champions[0].Cell)
	}
}

func TestDispatchOneEmptyQueue(t *testing.T) {
	e, _ := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
	before := e.Snapshot()
	for i := 0; i < 5; i++ {
		if c, ok := e.DispatchOne(); ok {
			t.Fatalf("DispatchOne() = %v on an empty queue", c)
		}
	}
	if e.Snapshot() != before {
		t.Error("dispatching an empty queue should change nothing")
	}
	if e.Router().Locked() {
		t.Error("queue should be unlocked after dispatch")
	}
}

func TestDispatchOneThrottles(t *testing.T) {
	e, src := newTestEngine(t, openRoom, 3, 5, dungeon.North, engine.Options{})
	for i := 0; i < 3; i++ {
		src.Push(core.KeyDown(core.KeyRune('w'), core.ModNone))
	}
	e.Tick()
	if y := e.Party().Y; y != 4 {
		t.Errorf("Y after one tick = %d, expected 4", y)
	}
	if n := e.Router().Queue().Len(); n != 2 {
		t.Errorf("queue length = %d, expected 2 waiting moves", n)
	}
	e.Tick()
	e.Tick()
	if y := e.Party().Y; y != 2 {
		t.Errorf("Y after three ticks = %d, expected 2", y)
	}
}

func TestDispatchedObserver(t *testing.T) {
	e, src := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
	var seen []command.Type
	var ticks []int64
	e.Dispatched = func(tick int64, c command.Command) {
		seen = append(seen, c.Type)
		ticks = append(ticks, tick)
	}
	src.Push(core.KeyDown(core.KeyRune('e'), core.ModNone))
	e.Tick()
	e.Tick()
	src.Push(core.KeyDown(core.KeyRune('q'), core.ModNone))
	e.Tick()

	if len(seen) != 2 || seen[0] != command.TurnRight || seen[1] != command.TurnLeft {
		t.Errorf("seen = %v, expected [turn-right turn-left]", seen)
	}
	if len(ticks) != 2 || ticks[0] != 0 || ticks[1] != 2 {
		t.Errorf("ticks = %v, expected [0 2]", ticks)
	}
}

func TestFreezeDiscardsQueuedInput(t *testing.T) {
	e, src := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
	src.Push(
		core.KeyDown(core.KeyEscape, core.ModNone),
		core.KeyDown(core.KeyRune('w'), core.ModNone),
	)
	e.Tick()

	if e.Context() != hittest.ContextFrozenGame {
		t.Fatalf("Context() = %v, expected frozen", e.Context())
	}
	if e.Router().Queue().Len() != 0 {
		t.Error("freezing should discard queued commands")
	}

	src.Push(core.KeyDown(core.KeyRune('w'), core.ModNone))
	e.Tick()
	if e.Party().Y != 3 {
		t.Error("movement keys should do nothing while frozen")
	}

	src.Push(core.KeyDown(core.KeyEscape, core.ModNone))
	e.Tick()
	if e.Context() != hittest.ContextInterface {
		t.Errorf("Context() = %v, expected interface after unfreeze", e.Context())
	}
}

func TestFrozenClickUnfreezes(t *testing.T) {
	e, src := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
	src.Push(core.KeyDown(core.KeyEscape, core.ModNone))
	e.Tick()

	src.Push(core.MouseMove(160, 100), core.ButtonDown(core.ButtonRight, 160, 100))
	e.Tick()
	e.Tick()
	if e.Context() != hittest.ContextInterface {
		t.Errorf("Context() = %v, expected interface", e.Context())
	}
}

func TestSleepAndWake(t *testing.T) {
	e, _ := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
	q := e.Router().Queue()

	q.Push(command.Command{Type: command.Sleep})
	e.DispatchOne()
	if e.Context() != hittest.ContextInterface {
		t.Error("an empty party cannot sleep")
	}

	addLeader(e, "HALK")
	q.Push(command.Command{Type: command.ToggleInventoryChampion0})
	e.DispatchOne()
	q.Push(command.Command{Type: command.Sleep})
	e.DispatchOne()
	if e.Context() != hittest.ContextPartySleeping {
		t.Fatalf("Context() = %v, expected sleeping", e.Context())
	}
	if e.Inventory() != party.NoChampion {
		t.Error("sleeping should close the inventory")
	}

	q.Push(command.Command{Type: command.WakeUp})
	e.DispatchOne()
	if e.Context() != hittest.ContextInterface {
		t.Errorf("Context() = %v, expected interface", e.Context())
	}
}

func TestToggleInventory(t *testing.T) {
	e, src := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
	addLeader(e, "HALK")
	e.Party().Add(party.Champion{Name: "DEAD"})

	tests := []struct {
		name    string
		key     core.Keycode
		wantInv int
		wantCtx hittest.Context
	}{
		{"open first", core.KeyF1, 0, hittest.ContextChampionInventory},
		{"close again", core.KeyF1, party.NoChampion, hittest.ContextInterface},
		{"dead champion stays closed", core.KeyF2, party.NoChampion, hittest.ContextInterface},
		{"missing champion", core.KeyF4, party.NoChampion, hittest.ContextInterface},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src.Push(core.KeyDown(tt.key, core.ModNone))
			e.Tick()
			if e.Inventory() != tt.wantInv {
				t.Errorf("Inventory() = %d, expected %d", e.Inventory(), tt.wantInv)
			}
			if e.Context() != tt.wantCtx {
				t.Errorf("Context() = %v, expected %v", e.Context(), tt.wantCtx)
			}
		})
	}
}

func TestInventoryShowsChest(t *testing.T) {
	e, _ := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{})
	idx := addLeader(e, "HALK")
	chest := e.Store().New(dungeon.Thing{Payload: &dungeon.Container{}})
	e.Party().Champions[idx].Slots[party.SlotActionHand] = chest

	e.Router().Queue().Push(command.Command{Type: command.ToggleInventoryLeader})
	e.DispatchOne()
	if e.Panel() != engine.PanelChest {
		t.Errorf("Panel() = %v, expected chest", e.Panel())
	}
}

func TestMovementKeyOverride(t *testing.T) {
	keys := hittest.KeyTable{
		{Command: command.MoveForward, Key: core.KeyUp, Mods: core.ModNone},
	}
	e, src := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{MovementKeys: keys})
	src.Push(core.KeyDown(core.KeyRune('w'), core.ModNone))
	e.Tick()
	if e.Party().Y != 3 {
		t.Error("default bindings should be replaced")
	}
	src.Push(core.KeyDown(core.KeyUp, core.ModNone))
	e.Tick()
	if e.Party().Y != 2 {
		t.Errorf("Y = %d, expected 2 after the configured key", e.Party().Y)
	}
}

func TestDoorEventFromTimeline(t *testing.T) {
	rows := []string{
		"#####",
		"#.D.#",
		"#####",
	}
	e, _ := newTestEngine(t, rows, 1, 1, dungeon.East, engine.Options{})
	sensors := &engine.DungeonSensors{Store: e.Store(), Scheduler: e.Timeline()}
	if _, err := e.Store().Add(1, 1, dungeon.Thing{Payload: &dungeon.Sensor{
		Type: dungeon.SensorFloorTurn, Effect: dungeon.EffectSet, TargetX: 2, TargetY: 1,
	}}); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	if !sensors.PartyTurned(1, 1, dungeon.East, e.GameTime()) {
		t.Fatal("floor-turn sensor should fire")
	}
	e.Tick()
	if e.Store().Square(2, 1).Door != dungeon.DoorClosed {
		t.Error("door event is due one tick later")
	}
	e.Tick()
	if e.Store().Square(2, 1).Door != dungeon.DoorOpen {
		t.Error("door should open when its event is due")
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := []core.RawEvent{
		core.KeyDown(core.KeyRune('w'), core.ModNone),
		core.KeyDown(core.KeyRune('e'), core.ModNone),
		core.KeyDown(core.KeyRune('w'), core.ModNone),
		core.KeyDown(core.KeyRune('d'), core.ModShift),
		core.MouseMove(20, 10),
		core.ButtonDown(core.ButtonLeft, 20, 10),
	}
	run := func() engine.Snapshot {
		e, src := newTestEngine(t, openRoom, 3, 3, dungeon.North, engine.Options{Seed: 7})
		addLeader(e, "HALK")
		src.Push(script...)
		for i := 0; i < 10; i++ {
			e.Tick()
		}
		return e.Snapshot()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

// Any sequence of commands keeps every thing in exactly one place and the
// party on an open square.
func TestCommandsKeepWorldConsistent(t *testing.T) {
	rows := []string{
		"#######",
		"#..A..#",
		"#.....#",
		"#F.d..#",
		"#..B.V#",
		"#######",
	}
	types := []command.Type{
		command.TurnLeft, command.TurnRight, command.MoveForward, command.MoveBackward,
		command.MoveLeft, command.MoveRight, command.ClickInDungeonView, command.ClickInPanel,
		command.ToggleInventoryChampion0, command.CloseInventory, command.SetLeaderChampion0,
		command.SetLeaderChampion1, command.ClickOnSlotBoxChampion0StatusBoxReadyHand,
		command.ClickOnSlotBoxInventoryActionHand, command.ClickOnChampionIconTopLeft,
		command.ClickOnChampionIconLowerRight, command.FreezeGame, command.UnfreezeGame,
	}
	rapid.Check(t, func(t *rapid.T) {
		e, _ := newTestEngine(t, rows, 2, 2, dungeon.North, engine.Options{Seed: 1})
		addLeader(e, "HALK")
		e.Party().Add(party.Champion{Name: "ELIJA", Health: 5})
		s := e.Store()
		for i := 0; i < 6; i++ {
			x := rapid.IntRange(1, 5).Draw(t, "x")
			y := rapid.IntRange(1, 4).Draw(t, "y")
			s.Add(x, y, dungeon.Thing{Cell: rapid.IntRange(0, 3).Draw(t, "cell"), Payload: &dungeon.Potion{Type: 3}})
		}

		n := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < n; i++ {
			c := command.Command{
				Type: rapid.SampledFrom(types).Draw(t, "cmd"),
				Pos:  core.Pt(rapid.IntRange(0, 319).Draw(t, "px"), rapid.IntRange(0, 199).Draw(t, "py")),
			}
			e.Router().Queue().Push(c)
			e.Tick()

			if err := s.CheckInvariants(); err != nil {
				t.Fatalf("after %v: %v", c, err)
			}
			p := e.Party()
			if sq := s.Square(p.X, p.Y); sq == nil || sq.Blocked() {
				t.Fatalf("after %v: party on blocked square (%d,%d)", c, p.X, p.Y)
			}
			if h := p.LeaderHand; h != dungeon.None {
				if _, _, on, err := s.Location(h); err != nil || on {
					t.Fatalf("after %v: leader hand %v is not held (on=%v err=%v)", c, h, on, err)
				}
			}
		}
	})
}
