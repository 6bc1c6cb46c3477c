package engine

import (
	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/dungeon"
	"github.com/vovakirdan/crawlcore/internal/party"
	"github.com/vovakirdan/crawlcore/internal/timeline"
)

//go:generate go tool mockgen -destination=./mocks/ui_mock.go -package=mocks . UI
//go:generate go tool mockgen -destination=./mocks/sensor_mock.go -package=mocks . SensorHook
//go:generate go tool mockgen -destination=./mocks/thrower_mock.go -package=mocks . Thrower
//go:generate go tool mockgen -destination=./mocks/scheduler_mock.go -package=mocks github.com/vovakirdan/crawlcore/internal/timeline Scheduler

// UI is the presentation side the dispatcher drives. Calls are
// notifications; the engine state is already updated when they happen.
type UI interface {
	// SetPointer swaps the cursor bitmap. Called only when it changes.
	SetPointer(p Pointer)
	// Message prints a line in the message area.
	Message(c core.Color, text string)
	// ShowInventory opens the inventory of a champion, or closes it when
	// champion is party.NoChampion.
	ShowInventory(champion int, panel PanelContent)
	// DrawMenus redraws the action and spell areas.
	DrawMenus()
	// DrawSpellArea redraws the spell area for the magic caster.
	DrawSpellArea(caster int)
	// ClearChampion blanks the status box and icon of a dismissed champion.
	ClearChampion(champion int)
	// ClickChestSlot handles a click on one of the eight open chest slots.
	ClickChestSlot(slot int)
	// AskName returns the new name of a reincarnated champion.
	AskName(current string) string
	// AltarRebirth reports a due rebirth at a VI altar.
	AltarRebirth(ev timeline.Event)
}

// SensorHook checks the sensors a party action may trigger. Each method
// reports whether a sensor fired, which ends the wait for player input.
type SensorHook interface {
	PartyTurned(x, y int, d dungeon.Direction, now int64) bool
	PartyMoved(x, y int, d dungeon.Direction, now int64) bool
	WallClicked(x, y int, side dungeon.Direction, held dungeon.Handle, now int64) bool
}

// Side is the half of the dungeon view an object is thrown from.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Thrower decides where a thrown object lands. It reports false when the
// leader cannot throw from the given side.
type Thrower interface {
	Throw(side Side, held dungeon.Handle, x, y int, d dungeon.Direction) (landX, landY, cell int, ok bool)
}

// NopUI ignores every notification.
type NopUI struct{}

func (NopUI) SetPointer(Pointer) {}
func (NopUI) Message(core.Color, string) {}
func (NopUI) ShowInventory(int, PanelContent) {}
func (NopUI) DrawMenus() {}
func (NopUI) DrawSpellArea(int) {}
func (NopUI) ClearChampion(int) {}
func (NopUI) ClickChestSlot(int) {}
func (NopUI) AskName(current string) string { return current }
func (NopUI) AltarRebirth(timeline.Event) {}

// DungeonSensors fires the sensors stored in the level. A triggered sensor
// schedules a door event on its target square.
type DungeonSensors struct {
	Store     *dungeon.Store
	Scheduler timeline.Scheduler
	MapIndex  int
}

// PartyTurned fires floor-turn sensors on the party square.
func (s *DungeonSensors) PartyTurned(x, y int, d dungeon.Direction, now int64) bool {
	return s.fire(x, y, now, func(sn *dungeon.Sensor, _ int) bool {
		return sn.Type == dungeon.SensorFloorTurn
	})
}

// PartyMoved fires floor sensors on the square the party entered.
func (s *DungeonSensors) PartyMoved(x, y int, d dungeon.Direction, now int64) bool {
	return s.fire(x, y, now, func(sn *dungeon.Sensor, _ int) bool {
		return sn.Type == dungeon.SensorFloorParty
	})
}

// WallClicked fires wall sensors on the side of (x, y) facing the party.
// Sensors that need an object fire only when the leader holds one with the
// matching icon.
func (s *DungeonSensors) WallClicked(x, y int, side dungeon.Direction, held dungeon.Handle, now int64) bool {
	icon := dungeon.NoIcon
	if t := s.Store.Thing(held); t != nil {
		icon = dungeon.IconIndex(t.Payload)
	}
	return s.fire(x, y, now, func(sn *dungeon.Sensor, cell int) bool {
		if cell != int(side) {
			return false
		}
		switch sn.Type {
		case dungeon.SensorWallClick:
			return true
		case dungeon.SensorWallClickWithObject:
			return icon != dungeon.NoIcon && icon == sn.Data
		}
		return false
	})
}

func (s *DungeonSensors) fire(x, y int, now int64, match func(*dungeon.Sensor, int) bool) bool {
	fired := false
	for h := s.Store.FirstThing(x, y); h != dungeon.EndOfList; h = s.Store.NextThing(h) {
		t := s.Store.Thing(h)
		sn, ok := t.Payload.(*dungeon.Sensor)
		if !ok || sn.Disabled() || !match(sn, t.Cell) {
			continue
		}
		s.Scheduler.Add(timeline.Event{
			MapIndex: s.MapIndex,
			X:        sn.TargetX,
			Y:        sn.TargetY,
			Type:     timeline.EventDoor,
			Effect:   sn.Effect,
			Time:     now + 1,
		})
		fired = true
	}
	return fired
}

// LandingThrower drops a thrown object on the near cells of the square
// ahead, or on the front cells of the party square when the way is blocked.
type LandingThrower struct {
	Store *dungeon.Store
}

// Throw implements Thrower.
func (l LandingThrower) Throw(side Side, held dungeon.Handle, x, y int, d dungeon.Direction) (int, int, int, bool) {
	if !held.Valid() {
		return 0, 0, 0, false
	}
	ax, ay := dungeon.Ahead(x, y, d)
	if sq := l.Store.Square(ax, ay); sq != nil && !sq.Blocked() {
		near := 3
		if side == SideRight {
			near = 2
		}
		return ax, ay, dungeon.NormalizeModulo4(int(d) + near), true
	}
	return x, y, dungeon.NormalizeModulo4(int(d) + int(side)), true
}

// championColors are the message colors of the four party slots.
var championColors = [party.MaxChampions]core.Color{core.ColorGreen, core.ColorYellow, core.ColorRed, core.ColorBlue}

// chestSlot maps a chest slot command to 0..7.
func chestSlot(cmd command.Type) (int, bool) {
	if cmd < command.ClickOnSlotBoxChest1 || cmd > command.ClickOnSlotBoxChest8 {
		return 0, false
	}
	return int(cmd - command.ClickOnSlotBoxChest1), true
}
