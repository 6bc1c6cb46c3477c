package scenario

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crawlcore/internal/dungeon"
	"github.com/vovakirdan/crawlcore/internal/engine"
)

// MirrorSensors offers the champion behind a mirror when the party clicks
// its face, and passes every other sensor check to Base.
type MirrorSensors struct {
	Base    engine.SensorHook
	Engine  *engine.Engine
	Mirrors []Mirror
	Logger  *log.Logger
}

// PartyTurned implements engine.SensorHook.
func (m *MirrorSensors) PartyTurned(x, y int, d dungeon.Direction, now int64) bool {
	return m.Base.PartyTurned(x, y, d, now)
}

// PartyMoved implements engine.SensorHook.
func (m *MirrorSensors) PartyMoved(x, y int, d dungeon.Direction, now int64) bool {
	return m.Base.PartyMoved(x, y, d, now)
}

// WallClicked offers a mirror's champion while the mirror sensor is still
// enabled. A dismissed candidate can be offered again; a resurrected or
// reincarnated one disables the sensor.
func (m *MirrorSensors) WallClicked(x, y int, side dungeon.Direction, held dungeon.Handle, now int64) bool {
	mr := m.at(x, y)
	if mr == nil {
		return m.Base.WallClicked(x, y, side, held, now)
	}
	if side != mr.Face || m.Engine == nil {
		return false
	}
	t := m.Engine.Store().Thing(mr.Sensor)
	if t == nil {
		return false
	}
	if sn, ok := t.Payload.(*dungeon.Sensor); !ok || sn.Disabled() {
		return false
	}

	idx, err := m.Engine.OfferCandidate(mr.Champion)
	switch {
	case err == nil:
		m.Logger.Debug("mirror touched", "x", x, "y", y, "champion", mr.Champion.Name, "index", idx)
		return true
	case errors.Is(err, engine.ErrHandNotEmpty), errors.Is(err, engine.ErrPartyFull), errors.Is(err, engine.ErrCandidatePending):
		m.Logger.Debug("mirror ignored", "x", x, "y", y, "reason", err)
	default:
		m.Logger.Error("mirror offer failed", "x", x, "y", y, "err", err)
	}
	return false
}

func (m *MirrorSensors) at(x, y int) *Mirror {
	for i := range m.Mirrors {
		if m.Mirrors[i].X == x && m.Mirrors[i].Y == y {
			return &m.Mirrors[i]
		}
	}
	return nil
}
