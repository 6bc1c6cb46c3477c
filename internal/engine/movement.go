package engine

import (
	"github.com/vovakirdan/crawlcore/internal/command"
	"github.com/vovakirdan/crawlcore/internal/dungeon"
)

// moveOffsets are the forward and rightward steps of each move command.
var moveOffsets = map[command.Type]struct{ forward, right int }{
	command.MoveForward:  {1, 0},
	command.MoveRight:    {0, 1},
	command.MoveBackward: {-1, 0},
	command.MoveLeft:     {0, -1},
}

func (e *Engine) turn(t command.Type) {
	e.stopWaiting = true
	p := e.party
	d := p.Dir.TurnRight()
	if t == command.TurnLeft {
		d = p.Dir.TurnLeft()
	}
	e.setPartyDirection(d)
	if e.sensors.PartyTurned(p.X, p.Y, d, e.gameTime) {
		e.logger.Debug("sensor fired", "on", "turn", "x", p.X, "y", p.Y, "dir", d)
	}
}

// setPartyDirection turns the party and every champion with it, keeping
// each champion's cell relative to the party facing.
func (e *Engine) setPartyDirection(d dungeon.Direction) {
	p := e.party
	delta := int(d) - int(p.Dir)
	for i := 0; i < p.Count; i++ {
		c := &p.Champions[i]
		c.Cell = dungeon.NormalizeModulo4(c.Cell + delta)
		c.Dir = dungeon.Direction(dungeon.NormalizeModulo4(int(c.Dir) + delta))
	}
	p.Dir = d
}

func (e *Engine) move(t command.Type) {
	e.stopWaiting = true
	p := e.party
	off := moveOffsets[t]
	x, y := dungeon.CoordsAfterRelMovement(p.Dir, off.forward, off.right, p.X, p.Y)
	if sq := e.store.Square(x, y); sq == nil || sq.Blocked() {
		e.logger.Debug("move blocked", "cmd", t, "x", x, "y", y)
		return
	}
	p.X, p.Y = x, y
	p.LastMovementTime = e.gameTime
	if e.sensors.PartyMoved(x, y, p.Dir, e.gameTime) {
		e.logger.Debug("sensor fired", "on", "move", "x", x, "y", y)
	}
}
