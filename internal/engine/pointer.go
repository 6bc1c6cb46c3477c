package engine

import "github.com/vovakirdan/crawlcore/internal/core"

// Pointer is the cursor bitmap in use.
type Pointer int

const (
	PointerArrow Pointer = iota
	PointerObjectIcon
	PointerChampionIcon
	PointerHand
)

func (p Pointer) String() string {
	switch p {
	case PointerArrow:
		return "arrow"
	case PointerObjectIcon:
		return "object"
	case PointerChampionIcon:
		return "champion-icon"
	case PointerHand:
		return "hand"
	default:
		return "unknown"
	}
}

// PointerState is what the cursor shape depends on besides position.
type PointerState struct {
	DraggingIcon     bool // A champion icon is being moved
	HoldingObject    bool // The leader holds something
	HasLeader        bool
	ChampionCount    int
	InventoryOrdinal int // 1-based champion whose inventory is open, or 0
}

// Screen layout of the pointer areas.
const (
	statusBoxSpacing  = 69
	statusBoxNameMaxX = 42
	statusAreaMaxY    = 28
	statusNameMaxY    = 6
	iconAreaMinX      = 274
	sideAreaMinX      = 224
	bottomAreaMinY    = 169
)

// PointerAt picks the cursor for position p. The second result is false
// when a champion icon drag must be dropped because the cursor left the
// icon area.
func PointerAt(p core.Point, s PointerState) (Pointer, bool) {
	if s.DraggingIcon {
		if p.Y > statusAreaMaxY || p.X < iconAreaMinX {
			return autoPointer(s), false
		}
		return PointerChampionIcon, true
	}
	if p.Y >= bottomAreaMinY || p.X >= iconAreaMinX {
		return PointerArrow, true
	}
	if p.Y <= statusAreaMaxY {
		idx, over := p.X/statusBoxSpacing, p.X%statusBoxSpacing
		switch {
		case idx >= s.ChampionCount, over > statusBoxNameMaxX:
			return autoPointer(s), true
		case idx+1 == s.InventoryOrdinal, p.Y <= statusNameMaxY:
			return PointerArrow, true
		}
		return autoPointer(s), true
	}
	if p.X >= sideAreaMinX {
		return PointerArrow, true
	}
	return autoPointer(s), true
}

func autoPointer(s PointerState) Pointer {
	switch {
	case s.HoldingObject:
		return PointerObjectIcon
	case s.HasLeader:
		return PointerHand
	default:
		return PointerArrow
	}
}
