package dungeon

// ElementType is the architecture of a square.
type ElementType int

const (
	ElementWall ElementType = iota
	ElementCorridor
	ElementPit
	ElementStairs
	ElementDoor
	ElementTeleporter
	ElementFakeWall

	// ElementDoorFront is reported for the square ahead when it holds a door.
	ElementDoorFront ElementType = 17
)

func (e ElementType) String() string {
	switch e {
	case ElementWall:
		return "wall"
	case ElementCorridor:
		return "corridor"
	case ElementPit:
		return "pit"
	case ElementStairs:
		return "stairs"
	case ElementDoor:
		return "door"
	case ElementTeleporter:
		return "teleporter"
	case ElementFakeWall:
		return "fake-wall"
	case ElementDoorFront:
		return "door-front"
	default:
		return "unknown"
	}
}

// Passable reports whether the party may stand on a square of this type.
// Closed doors are checked separately.
func (e ElementType) Passable() bool {
	switch e {
	case ElementCorridor, ElementPit, ElementStairs, ElementDoor, ElementTeleporter, ElementFakeWall:
		return true
	}
	return false
}

// Ornament is a wall decoration the party can interact with.
type Ornament int

const (
	OrnamentNone Ornament = iota
	OrnamentAlcove
	OrnamentFountain
	OrnamentViAltar
)

func (o Ornament) String() string {
	switch o {
	case OrnamentNone:
		return "none"
	case OrnamentAlcove:
		return "alcove"
	case OrnamentFountain:
		return "fountain"
	case OrnamentViAltar:
		return "vi-altar"
	default:
		return "unknown"
	}
}

// DoorState is the open/closed state of a door square.
type DoorState int

const (
	DoorOpen DoorState = iota
	DoorClosed
)

func (d DoorState) String() string {
	if d == DoorClosed {
		return "closed"
	}
	return "open"
}

// Square is one map square. head is the first Thing of its chain.
type Square struct {
	Element  ElementType
	Ornament Ornament
	Door     DoorState
	head     Handle
}

// Blocked reports whether the party cannot enter the square.
func (sq *Square) Blocked() bool {
	if !sq.Element.Passable() {
		return true
	}
	return sq.Element == ElementDoor && sq.Door == DoorClosed
}

// View describes what the party sees on the square directly ahead.
type View struct {
	AheadX, AheadY int
	SquareAhead    ElementType
	FacingAlcove   bool
	FacingFountain bool
	FacingViAltar  bool
}

// ViewFrom computes the view of a party at (x, y) facing d. Out-of-map
// squares read as walls.
func (s *Store) ViewFrom(x, y int, d Direction) View {
	ax, ay := Ahead(x, y, d)
	v := View{AheadX: ax, AheadY: ay, SquareAhead: ElementWall}
	sq := s.Square(ax, ay)
	if sq == nil {
		return v
	}
	v.SquareAhead = sq.Element
	switch sq.Element {
	case ElementDoor:
		v.SquareAhead = ElementDoorFront
	case ElementWall:
		v.FacingAlcove = sq.Ornament == OrnamentAlcove || sq.Ornament == OrnamentViAltar
		v.FacingFountain = sq.Ornament == OrnamentFountain
		v.FacingViAltar = sq.Ornament == OrnamentViAltar
	}
	return v
}

// ToggleDoor flips a door square between open and closed. It reports false
// when (x, y) is not a door.
func (s *Store) ToggleDoor(x, y int) bool {
	sq := s.Square(x, y)
	if sq == nil || sq.Element != ElementDoor {
		return false
	}
	if sq.Door == DoorOpen {
		sq.Door = DoorClosed
	} else {
		sq.Door = DoorOpen
	}
	return true
}

// SetDoor applies a set/clear/toggle effect to a door square. Set opens the
// door, clear closes it.
func (s *Store) SetDoor(x, y int, e Effect) bool {
	sq := s.Square(x, y)
	if sq == nil || sq.Element != ElementDoor {
		return false
	}
	switch e {
	case EffectSet:
		sq.Door = DoorOpen
	case EffectClear:
		sq.Door = DoorClosed
	case EffectToggle:
		return s.ToggleDoor(x, y)
	}
	return true
}
