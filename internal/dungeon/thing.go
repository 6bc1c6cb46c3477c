package dungeon

// Kind is the type tag of a Thing payload.
type Kind int

const (
	KindDoor Kind = iota
	KindSensor
	KindGroup
	KindWeapon
	KindArmour
	KindScroll
	KindPotion
	KindContainer
	KindJunk
)

var kindNames = [...]string{
	KindDoor:      "door",
	KindSensor:    "sensor",
	KindGroup:     "group",
	KindWeapon:    "weapon",
	KindArmour:    "armour",
	KindScroll:    "scroll",
	KindPotion:    "potion",
	KindContainer: "container",
	KindJunk:      "junk",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Thing is one game object record: the square cell it occupies and its
// type-specific payload.
type Thing struct {
	Cell    int
	Payload Payload
}

// Kind returns the payload's type tag.
func (t Thing) Kind() Kind {
	return t.Payload.Kind()
}

// Payload is the sealed set of Thing variants. Consumers switch on the
// concrete type.
type Payload interface {
	Kind() Kind
	payload()
}

// Door occupies a door square; it is always the first thing of its chain.
type Door struct {
	Type   int
	Button bool
}

func (*Door) Kind() Kind { return KindDoor }
func (*Door) payload()   {}

// HasButton reports whether the door can be toggled by clicking its button.
func (d *Door) HasButton() bool { return d.Button }

// SensorType selects what triggers a sensor.
type SensorType int

const (
	SensorDisabled SensorType = iota
	SensorWallClick           // Click on the wall face
	SensorWallClickWithObject // Click on the wall face while holding a matching object
	SensorFloorParty          // Party enters the square
	SensorFloorTurn           // Party turns while on the square
)

func (t SensorType) String() string {
	switch t {
	case SensorDisabled:
		return "disabled"
	case SensorWallClick:
		return "wall-click"
	case SensorWallClickWithObject:
		return "wall-click-object"
	case SensorFloorParty:
		return "floor-party"
	case SensorFloorTurn:
		return "floor-turn"
	default:
		return "unknown"
	}
}

// Effect is what a triggered sensor or timed event does to its target.
type Effect int

const (
	EffectSet Effect = iota
	EffectClear
	EffectToggle
	EffectHold
)

func (e Effect) String() string {
	switch e {
	case EffectSet:
		return "set"
	case EffectClear:
		return "clear"
	case EffectToggle:
		return "toggle"
	case EffectHold:
		return "hold"
	default:
		return "unknown"
	}
}

// Sensor reacts to party actions and targets another square.
type Sensor struct {
	Type    SensorType
	Data    int // Required icon index for SensorWallClickWithObject
	Effect  Effect
	TargetX int
	TargetY int
}

func (*Sensor) Kind() Kind { return KindSensor }
func (*Sensor) payload()   {}

// Disable turns the sensor off permanently.
func (s *Sensor) Disable() { s.Type = SensorDisabled }

// Disabled reports whether the sensor no longer reacts.
func (s *Sensor) Disabled() bool { return s.Type == SensorDisabled }

// Group is a group of creatures standing on a square.
type Group struct {
	CreatureType int
	Cells        uint8 // Bit n set when a creature stands on cell n
	Levitating   bool
}

func (*Group) Kind() Kind { return KindGroup }
func (*Group) payload()   {}

// OccupiesCell reports whether a creature of the group stands on cell.
func (g *Group) OccupiesCell(cell int) bool {
	return g.Cells&(1<<uint(NormalizeModulo4(cell))) != 0
}

type Weapon struct {
	Type    int
	Charges int
}

func (*Weapon) Kind() Kind { return KindWeapon }
func (*Weapon) payload()   {}

type Armour struct {
	Type int
}

func (*Armour) Kind() Kind { return KindArmour }
func (*Armour) payload()   {}

type Scroll struct {
	TextIndex int
	Closed    bool
}

func (*Scroll) Kind() Kind { return KindScroll }
func (*Scroll) payload()   {}

// Potion types with special handling.
const (
	PotionWaterFlask = 15
	PotionEmptyFlask = 20
)

type Potion struct {
	Type  int
	Power int
}

func (*Potion) Kind() Kind { return KindPotion }
func (*Potion) payload()   {}

type Container struct {
	Type int
}

func (*Container) Kind() Kind { return KindContainer }
func (*Container) payload()   {}

// Junk types with special handling.
const (
	JunkWater          = 1
	JunkWaterskin      = 2
	JunkChampionBones  = 5
	JunkBoneOrdinary   = 6
	maxJunkChargeCount = 3
)

type Junk struct {
	Type        int
	ChargeCount int
}

func (*Junk) Kind() Kind { return KindJunk }
func (*Junk) payload()   {}

// SetChargeCount stores n clamped to the junk charge range.
func (j *Junk) SetChargeCount(n int) {
	j.ChargeCount = max(0, min(n, maxJunkChargeCount))
}

// Icon indices with special handling.
const (
	NoIcon                 = -1
	IconJunkWater          = 8
	IconJunkWaterskin      = 9
	IconJunkChampionBones  = 147
	IconPotionEmptyFlask   = 195
	iconPotionBase         = IconPotionEmptyFlask - PotionEmptyFlask
	iconJunkBase           = 150
	iconWeaponBase         = 32
	iconArmourBase         = 80
	iconScrollOpen         = 30
	iconScrollClosed       = 31
	iconContainerBase      = 130
	iconJunkBoneOrdinary   = 148
	weightWaterPerCharge   = 2
	weightPotionFull       = 3
	weightPotionEmptyFlask = 1
)

// IconIndex returns the inventory icon of an object, or NoIcon for things
// that cannot be carried.
func IconIndex(p Payload) int {
	switch v := p.(type) {
	case *Door, *Sensor, *Group:
		return NoIcon
	case *Weapon:
		return iconWeaponBase + v.Type
	case *Armour:
		return iconArmourBase + v.Type
	case *Scroll:
		if v.Closed {
			return iconScrollClosed
		}
		return iconScrollOpen
	case *Potion:
		return iconPotionBase + v.Type
	case *Container:
		return iconContainerBase + v.Type
	case *Junk:
		switch v.Type {
		case JunkWater:
			return IconJunkWater
		case JunkWaterskin:
			return IconJunkWaterskin
		case JunkChampionBones:
			return IconJunkChampionBones
		case JunkBoneOrdinary:
			return iconJunkBoneOrdinary
		}
		return iconJunkBase + v.Type
	default:
		return NoIcon
	}
}

// Weight returns the object weight in tenths of a kilogram.
func Weight(p Payload) int {
	switch v := p.(type) {
	case *Door, *Sensor, *Group:
		return 0
	case *Weapon:
		return 10 + 2*v.Type
	case *Armour:
		return 20 + 5*v.Type
	case *Scroll:
		return 1
	case *Potion:
		if v.Type == PotionEmptyFlask {
			return weightPotionEmptyFlask
		}
		return weightPotionFull
	case *Container:
		return 50
	case *Junk:
		w := 5
		if v.Type == JunkWater || v.Type == JunkWaterskin {
			w = 3 + weightWaterPerCharge*v.ChargeCount
		}
		return w
	default:
		return 0
	}
}
