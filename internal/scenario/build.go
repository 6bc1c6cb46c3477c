package scenario

import (
	"fmt"

	"github.com/vovakirdan/crawlcore/internal/dungeon"
	"github.com/vovakirdan/crawlcore/internal/engine"
	"github.com/vovakirdan/crawlcore/internal/logging"
	"github.com/vovakirdan/crawlcore/internal/party"
	"github.com/vovakirdan/crawlcore/internal/timeline"
)

// World is a scenario instantiated into a level and a party.
type World struct {
	Store   *dungeon.Store
	Party   *party.Party
	Leader  int
	Mirrors []Mirror
}

// Mirror is a candidate champion waiting behind a wall square. The
// champion's slots reference items linked on the mirror square.
type Mirror struct {
	X, Y     int
	Face     dungeon.Direction
	Champion party.Champion
	Sensor   dungeon.Handle
}

// Build creates a fresh level and party. Every call returns independent
// state.
func (s *Scenario) Build() (*World, error) {
	store, err := dungeon.ParseLayout(s.Layout)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
	}

	dir, ok := dungeon.ParseDirection(s.Party.Dir)
	if !ok {
		return nil, fmt.Errorf("scenario %s: party: unknown direction %q", s.ID, s.Party.Dir)
	}
	if sq := store.Square(s.Party.X, s.Party.Y); sq == nil || sq.Blocked() {
		return nil, fmt.Errorf("scenario %s: party start (%d,%d) is not an open square", s.ID, s.Party.X, s.Party.Y)
	}
	w := &World{Store: store, Party: party.New(s.Party.X, s.Party.Y, dir), Leader: party.NoChampion}

	for i, cs := range s.Party.Champions {
		c, err := champion(cs)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: party champion %d: %w", s.ID, i, err)
		}
		err = equip(&c, cs.Items, func(p dungeon.Payload) (dungeon.Handle, error) {
			c.Load += dungeon.Weight(p)
			return store.New(dungeon.Thing{Payload: p}), nil
		})
		if err != nil {
			return nil, fmt.Errorf("scenario %s: champion %s: %w", s.ID, c.Name, err)
		}
		w.Party.Add(c)
	}
	if n := w.Party.Count; n > 0 {
		w.Leader = 0
		if s.Party.Leader != nil {
			w.Leader = *s.Party.Leader
		}
		if w.Leader >= n {
			return nil, fmt.Errorf("scenario %s: leader %d but only %d champions", s.ID, w.Leader, n)
		}
	}

	for i, ts := range s.Things {
		if !store.InBounds(ts.X, ts.Y) {
			return nil, fmt.Errorf("scenario %s: things[%d]: (%d,%d) is outside the map", s.ID, i, ts.X, ts.Y)
		}
		p, err := payload(ts)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: things[%d]: %w", s.ID, i, err)
		}
		if _, err := store.Add(ts.X, ts.Y, dungeon.Thing{Cell: ts.Cell, Payload: p}); err != nil {
			return nil, fmt.Errorf("scenario %s: things[%d]: %w", s.ID, i, err)
		}
	}

	for i, ms := range s.Mirrors {
		m, err := mirror(store, ms)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: mirrors[%d]: %w", s.ID, i, err)
		}
		w.Mirrors = append(w.Mirrors, m)
	}

	for i, ss := range s.Sensors {
		sn, cell, err := sensor(ss)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: sensors[%d]: %w", s.ID, i, err)
		}
		if !store.InBounds(ss.X, ss.Y) {
			return nil, fmt.Errorf("scenario %s: sensors[%d]: (%d,%d) is outside the map", s.ID, i, ss.X, ss.Y)
		}
		if sq := store.Square(sn.TargetX, sn.TargetY); sq == nil || sq.Element != dungeon.ElementDoor {
			return nil, fmt.Errorf("scenario %s: sensors[%d]: target (%d,%d) is not a door", s.ID, i, sn.TargetX, sn.TargetY)
		}
		if _, err := store.Add(ss.X, ss.Y, dungeon.Thing{Cell: cell, Payload: sn}); err != nil {
			return nil, fmt.Errorf("scenario %s: sensors[%d]: %w", s.ID, i, err)
		}
	}

	if err := store.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	return w, nil
}

// NewEngine builds the scenario and starts an engine on it. opts supplies
// the input source and the optional collaborators; the level, party and
// sensors come from the scenario.
func (s *Scenario) NewEngine(opts engine.Options) (*engine.Engine, error) {
	w, err := s.Build()
	if err != nil {
		return nil, err
	}
	if opts.Scheduler == nil {
		opts.Scheduler = timeline.New()
	}
	opts.Store = w.Store
	opts.Party = w.Party
	opts.MapIndex = s.MapIndex

	hook := &MirrorSensors{
		Base:    &engine.DungeonSensors{Store: w.Store, Scheduler: opts.Scheduler, MapIndex: s.MapIndex},
		Mirrors: w.Mirrors,
		Logger:  logging.OrDiscard(opts.Logger),
	}
	if opts.Sensors != nil {
		hook.Base = opts.Sensors
	}
	opts.Sensors = hook

	e, err := engine.New(opts)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	hook.Engine = e
	if w.Leader != party.NoChampion {
		e.SetLeader(w.Leader)
	}
	return e, nil
}

func champion(cs ChampionSpec) (party.Champion, error) {
	c := party.Champion{
		Name:      cs.Name,
		Title:     cs.Title,
		Health:    cs.Health,
		MaxHealth: cs.Health,
	}
	c.ClearSlots()
	for name, v := range cs.Stats {
		st, ok := parseStat(name)
		if !ok {
			return c, fmt.Errorf("unknown statistic %q", name)
		}
		c.Stats[st] = party.StatValue{Current: v, Max: v}
	}
	if len(cs.Skills) > party.SkillCount {
		return c, fmt.Errorf("%d skills, at most %d", len(cs.Skills), party.SkillCount)
	}
	copy(c.Skills[:], cs.Skills)
	return c, nil
}

func mirror(store *dungeon.Store, ms MirrorSpec) (Mirror, error) {
	face, ok := dungeon.ParseDirection(ms.Face)
	if !ok {
		return Mirror{}, fmt.Errorf("unknown face %q", ms.Face)
	}
	sq := store.Square(ms.X, ms.Y)
	if sq == nil || sq.Element != dungeon.ElementWall || sq.Ornament != dungeon.OrnamentNone {
		return Mirror{}, fmt.Errorf("(%d,%d) is not a plain wall", ms.X, ms.Y)
	}
	fx, fy := dungeon.Ahead(ms.X, ms.Y, face)
	if front := store.Square(fx, fy); front == nil || front.Blocked() {
		return Mirror{}, fmt.Errorf("(%d,%d) faces no open square", ms.X, ms.Y)
	}

	c, err := champion(ms.Champion)
	if err != nil {
		return Mirror{}, fmt.Errorf("champion: %w", err)
	}
	err = equip(&c, ms.Champion.Items, func(p dungeon.Payload) (dungeon.Handle, error) {
		return store.Add(ms.X, ms.Y, dungeon.Thing{Cell: int(face), Payload: p})
	})
	if err != nil {
		return Mirror{}, fmt.Errorf("champion %s: %w", c.Name, err)
	}

	// Resurrecting disables the first sensor of the mirror square. Mirrors
	// are built before the other sensors so this one comes first.
	sn, err := store.Add(ms.X, ms.Y, dungeon.Thing{Cell: int(face), Payload: &dungeon.Sensor{
		Type:    dungeon.SensorWallClick,
		Effect:  dungeon.EffectHold,
		TargetX: ms.X,
		TargetY: ms.Y,
	}})
	if err != nil {
		return Mirror{}, err
	}
	return Mirror{X: ms.X, Y: ms.Y, Face: face, Champion: c, Sensor: sn}, nil
}

// equip fills the champion slots named by items with objects created by
// place.
func equip(c *party.Champion, items []ThingSpec, place func(dungeon.Payload) (dungeon.Handle, error)) error {
	for _, it := range items {
		if it.Slot < 0 || it.Slot >= party.SlotChest1 {
			return fmt.Errorf("slot %d out of range", it.Slot)
		}
		if c.Slots[it.Slot] != dungeon.None {
			return fmt.Errorf("slot %d used twice", it.Slot)
		}
		p, err := payload(it)
		if err != nil {
			return err
		}
		h, err := place(p)
		if err != nil {
			return err
		}
		c.Slots[it.Slot] = h
	}
	return nil
}

func payload(ts ThingSpec) (dungeon.Payload, error) {
	k, ok := dungeon.ParseKind(ts.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", ts.Kind)
	}
	switch k {
	case dungeon.KindGroup:
		g := &dungeon.Group{CreatureType: ts.Type, Levitating: ts.Levitating}
		for _, c := range ts.Cells {
			g.Cells |= 1 << uint(dungeon.NormalizeModulo4(c))
		}
		return g, nil
	case dungeon.KindWeapon:
		return &dungeon.Weapon{Type: ts.Type, Charges: ts.Charges}, nil
	case dungeon.KindArmour:
		return &dungeon.Armour{Type: ts.Type}, nil
	case dungeon.KindScroll:
		return &dungeon.Scroll{TextIndex: ts.Type, Closed: ts.Closed}, nil
	case dungeon.KindPotion:
		return &dungeon.Potion{Type: ts.Type, Power: ts.Power}, nil
	case dungeon.KindContainer:
		return &dungeon.Container{Type: ts.Type}, nil
	case dungeon.KindJunk:
		j := &dungeon.Junk{Type: ts.Type}
		j.SetChargeCount(ts.Charges)
		return j, nil
	}
	return nil, fmt.Errorf("kind %s cannot be placed", k)
}

func sensor(ss SensorSpec) (*dungeon.Sensor, int, error) {
	sn := &dungeon.Sensor{Data: ss.Icon, Effect: dungeon.EffectToggle, TargetX: ss.Target[0], TargetY: ss.Target[1]}
	typ, ok := parseSensorType(ss.Type)
	if !ok {
		return nil, 0, fmt.Errorf("unknown type %q", ss.Type)
	}
	sn.Type = typ
	if ss.Effect != "" {
		if sn.Effect, ok = parseEffect(ss.Effect); !ok {
			return nil, 0, fmt.Errorf("unknown effect %q", ss.Effect)
		}
	}

	cell := 0
	switch typ {
	case dungeon.SensorWallClick, dungeon.SensorWallClickWithObject:
		face, ok := dungeon.ParseDirection(ss.Face)
		if !ok {
			return nil, 0, fmt.Errorf("wall sensor needs a face, got %q", ss.Face)
		}
		cell = int(face)
	}
	return sn, cell, nil
}

func parseStat(name string) (party.Stat, bool) {
	for s := party.Stat(0); s < party.StatCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

func parseSensorType(name string) (dungeon.SensorType, bool) {
	for t := dungeon.SensorWallClick; t <= dungeon.SensorFloorTurn; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return dungeon.SensorDisabled, false
}

func parseEffect(name string) (dungeon.Effect, bool) {
	for e := dungeon.EffectSet; e <= dungeon.EffectHold; e++ {
		if e.String() == name {
			return e, true
		}
	}
	return 0, false
}
