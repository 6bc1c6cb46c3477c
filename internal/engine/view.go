package engine

import (
	"github.com/vovakirdan/crawlcore/internal/core"
	"github.com/vovakirdan/crawlcore/internal/dungeon"
	"github.com/vovakirdan/crawlcore/internal/hittest"
	"github.com/vovakirdan/crawlcore/internal/party"
	"github.com/vovakirdan/crawlcore/internal/timeline"
)

// Throw zones of the dungeon view, in screen coordinates. A door frame
// ahead narrows both sides.
const (
	throwMinY          = 47
	throwMaxY          = 102
	throwSplitX        = 111
	throwLeftMinX      = 32
	throwLeftDoorMinX  = 64
	throwRightMaxX     = 191
	throwRightDoorMaxX = 163
)

func (e *Engine) clickInDungeonView(pos core.Point) {
	p := e.party
	view := e.store.ViewFrom(p.X, p.Y, p.Dir)
	boxes := e.clickableBoxes(view)

	if view.SquareAhead == dungeon.ElementDoorFront {
		if !p.HasLeader() {
			return
		}
		if p.LeaderEmptyHanded() {
			if door := e.doorAhead(view); door != nil && door.HasButton() && boxes.Hit(hittest.ViewCellDoorButtonOrWallOrnament, pos) {
				e.stopWaiting = true
				e.sched.Add(timeline.Event{
					MapIndex: e.mapIndex,
					X:        view.AheadX,
					Y:        view.AheadY,
					Type:     timeline.EventDoor,
					Effect:   dungeon.EffectToggle,
					Time:     e.gameTime + 1,
				})
				return
			}
		} else if e.leaderHandThrown(pos, view) {
			return
		}
	}

	if p.LeaderEmptyHanded() {
		for v := hittest.ViewCellFrontLeft; v <= hittest.ViewCellDoorButtonOrWallOrnament; v++ {
			if !boxes.Hit(v, pos) {
				continue
			}
			if v == hittest.ViewCellDoorButtonOrWallOrnament {
				if !view.FacingAlcove {
					e.touchFrontWall()
				}
			} else {
				e.grab(v, view)
			}
			return
		}
		return
	}

	if view.SquareAhead == dungeon.ElementWall {
		for v := hittest.ViewCellFrontLeft; v <= hittest.ViewCellFrontRight; v++ {
			if hittest.BoxObjectPiles[v].Contains(pos) {
				e.drop(v, view)
				return
			}
		}
		if boxes.Hit(hittest.ViewCellDoorButtonOrWallOrnament, pos) {
			if view.FacingAlcove {
				e.drop(hittest.ViewCellAlcove, view)
				return
			}
			if view.FacingFountain {
				e.refillAtFountain(p.LeaderHand)
			}
			e.touchFrontWall()
		}
		return
	}
	if e.leaderHandThrown(pos, view) {
		return
	}
	for v := hittest.ViewCellFrontLeft; v <= hittest.ViewCellBackLeft; v++ {
		if hittest.BoxObjectPiles[v].Contains(pos) {
			e.drop(v, view)
			return
		}
	}
}

// clickableBoxes masks the view boxes down to what the current view shows:
// no floor behind a wall, no niche unless facing one, no wall ornament in
// open space.
func (e *Engine) clickableBoxes(v dungeon.View) hittest.ViewBoxes {
	boxes := e.View
	if v.SquareAhead == dungeon.ElementWall {
		boxes.Clear(hittest.ViewCellBackRight)
		boxes.Clear(hittest.ViewCellBackLeft)
	}
	if !v.FacingAlcove {
		boxes.Clear(hittest.ViewCellAlcove)
	}
	if v.SquareAhead != dungeon.ElementWall && v.SquareAhead != dungeon.ElementDoorFront {
		boxes.Clear(hittest.ViewCellDoorButtonOrWallOrnament)
	}
	return boxes
}

func (e *Engine) doorAhead(v dungeon.View) *dungeon.Door {
	h := e.store.FirstOfKind(v.AheadX, v.AheadY, dungeon.KindDoor)
	if h == dungeon.EndOfList {
		return nil
	}
	door, _ := e.store.Thing(h).Payload.(*dungeon.Door)
	return door
}

// pileCell is the square cell a view cell shows. The alcove holds its
// objects on the wall side facing the party.
func pileCell(v hittest.ViewCell, d dungeon.Direction) int {
	if v == hittest.ViewCellAlcove {
		v = hittest.ViewCellBackRight
	}
	return dungeon.NormalizeModulo4(int(d) + int(v))
}

func (e *Engine) grab(v hittest.ViewCell, view dungeon.View) {
	p := e.party
	if !p.HasLeader() {
		return
	}
	x, y := p.X, p.Y
	if v >= hittest.ViewCellBackRight {
		x, y = view.AheadX, view.AheadY
		if e.creatureOnCell(x, y, dungeon.NormalizeModulo4(int(v)+int(p.Dir))) {
			return
		}
	}
	if h := e.store.PileTop(x, y, pileCell(v, p.Dir)); h != dungeon.EndOfList {
		if err := e.store.Take(h, x, y); err != nil {
			e.contract("grab", err)
		} else {
			e.putObjectInLeaderHand(h)
			e.logger.Debug("grab", "thing", h, "x", x, "y", y, "cell", v)
		}
	}
	e.stopWaiting = true
}

// creatureOnCell reports whether a creature that does not levitate stands
// on the given cell of (x, y).
func (e *Engine) creatureOnCell(x, y, cell int) bool {
	h := e.store.FirstOfKind(x, y, dungeon.KindGroup)
	if h == dungeon.EndOfList {
		return false
	}
	g, ok := e.store.Thing(h).Payload.(*dungeon.Group)
	return ok && !g.Levitating && g.OccupiesCell(cell)
}

func (e *Engine) drop(v hittest.ViewCell, view dungeon.View) {
	p := e.party
	if !p.HasLeader() || p.LeaderEmptyHanded() {
		return
	}
	alcove := v == hittest.ViewCellAlcove
	if alcove {
		v = hittest.ViewCellBackRight
	}
	x, y := p.X, p.Y
	if v > hittest.ViewCellFrontRight {
		x, y = view.AheadX, view.AheadY
	}
	cell := dungeon.NormalizeModulo4(int(p.Dir) + int(v))
	h := e.removeObjectFromLeaderHand()
	if err := e.store.Place(h, x, y, cell); err != nil {
		e.contract("drop", err)
		e.putObjectInLeaderHand(h)
		return
	}
	e.logger.Debug("drop", "thing", h, "x", x, "y", y, "cell", cell, "alcove", alcove)
	if alcove && view.FacingViAltar {
		if j, ok := e.store.Thing(h).Payload.(*dungeon.Junk); ok && dungeon.IconIndex(j) == dungeon.IconJunkChampionBones {
			e.sched.Add(timeline.Event{
				MapIndex: e.mapIndex,
				X:        x,
				Y:        y,
				Type:     timeline.EventViAltarRebirth,
				Cell:     cell,
				Effect:   dungeon.EffectToggle,
				Time:     e.gameTime + 1,
				Priority: j.ChargeCount,
			})
		}
	}
	e.stopWaiting = true
}

// leaderHandThrown throws the held object when pos lies in a throw zone.
func (e *Engine) leaderHandThrown(pos core.Point, v dungeon.View) bool {
	if pos.Y < throwMinY || pos.Y > throwMaxY {
		return false
	}
	door := v.SquareAhead == dungeon.ElementDoorFront
	side := SideLeft
	if pos.X <= throwSplitX {
		if (door && pos.X < throwLeftDoorMinX) || (!door && pos.X < throwLeftMinX) {
			return false
		}
	} else {
		side = SideRight
		if (door && pos.X > throwRightDoorMaxX) || (!door && pos.X > throwRightMaxX) {
			return false
		}
	}
	if !e.throwLeaderHand(side) {
		return false
	}
	e.stopWaiting = true
	return true
}

func (e *Engine) throwLeaderHand(side Side) bool {
	p := e.party
	if !p.HasLeader() || p.LeaderEmptyHanded() {
		return false
	}
	x, y, cell, ok := e.thrower.Throw(side, p.LeaderHand, p.X, p.Y, p.Dir)
	if !ok {
		return false
	}
	h := e.removeObjectFromLeaderHand()
	if err := e.store.Place(h, x, y, cell); err != nil {
		e.contract("throw", err)
		e.putObjectInLeaderHand(h)
		return false
	}
	e.logger.Debug("throw", "thing", h, "side", side, "x", x, "y", y, "cell", cell)
	return true
}

// refillAtFountain fills water containers held by the leader and adjusts the
// leader's load by the weight change.
func (e *Engine) refillAtFountain(h dungeon.Handle) {
	t := e.store.Thing(h)
	if t == nil {
		return
	}
	before := dungeon.Weight(t.Payload)
	switch v := t.Payload.(type) {
	case *dungeon.Junk:
		if icon := dungeon.IconIndex(v); icon != dungeon.IconJunkWater && icon != dungeon.IconJunkWaterskin {
			return
		}
		v.SetChargeCount(3)
	case *dungeon.Potion:
		if dungeon.IconIndex(v) != dungeon.IconPotionEmptyFlask {
			return
		}
		v.Type = dungeon.PotionWaterFlask
	default:
		return
	}
	if c := e.party.LeaderChampion(); c != nil {
		c.Load += dungeon.Weight(t.Payload) - before
		c.Mark(party.AttrLoad | party.AttrActionHand)
	}
}

func (e *Engine) touchFrontWall() {
	p := e.party
	x, y := dungeon.Ahead(p.X, p.Y, p.Dir)
	if !e.store.InBounds(x, y) {
		return
	}
	e.stopWaiting = e.sensors.WallClicked(x, y, p.Dir.Opposite(), p.LeaderHand, e.gameTime)
}

func (e *Engine) putObjectInLeaderHand(h dungeon.Handle) {
	p := e.party
	p.LeaderHand = h
	if c := p.LeaderChampion(); c != nil {
		c.Load += e.weight(h)
		c.Mark(party.AttrLoad)
	}
}

func (e *Engine) removeObjectFromLeaderHand() dungeon.Handle {
	p := e.party
	h := p.LeaderHand
	if c := p.LeaderChampion(); c != nil {
		c.Load -= e.weight(h)
		c.Mark(party.AttrLoad)
	}
	p.LeaderHand = dungeon.None
	return h
}
