package hittest

import (
	"fmt"

	"github.com/vovakirdan/crawlcore/internal/core"
)

// Context identifies which screen is accepting input.
type Context int

const (
	ContextInterface Context = iota
	ContextChampionInventory
	ContextPartySleeping
	ContextFrozenGame
	ContextEntrance
	ContextRestartGame
	ContextViewportDialog
	ContextScreenDialog
)

func (c Context) String() string {
	switch c {
	case ContextInterface:
		return "interface"
	case ContextChampionInventory:
		return "inventory"
	case ContextPartySleeping:
		return "sleeping"
	case ContextFrozenGame:
		return "frozen"
	case ContextEntrance:
		return "entrance"
	case ContextRestartGame:
		return "restart"
	case ContextViewportDialog:
		return "viewport-dialog"
	case ContextScreenDialog:
		return "screen-dialog"
	default:
		return "unknown"
	}
}

// SetFor returns the tables active in ctx. choices is only used by the two
// dialog contexts and must be 1..4 there.
func SetFor(ctx Context, choices int) (Set, error) {
	switch ctx {
	case ContextInterface:
		return Set{
			PrimaryMouse:   PrimaryMouseInterface,
			SecondaryMouse: SecondaryMouseMovement,
			PrimaryKeys:    PrimaryKeysInterface,
			SecondaryKeys:  SecondaryKeysMovement,
		}, nil
	case ContextChampionInventory:
		return Set{
			PrimaryMouse:   PrimaryMouseInterface,
			SecondaryMouse: SecondaryMouseChampionInventory,
			PrimaryKeys:    PrimaryKeysInterface,
		}, nil
	case ContextPartySleeping:
		return Set{
			PrimaryMouse: PrimaryMousePartySleeping,
			PrimaryKeys:  PrimaryKeysPartySleeping,
		}, nil
	case ContextFrozenGame:
		return Set{
			PrimaryMouse: PrimaryMouseFrozenGame,
			PrimaryKeys:  PrimaryKeysFrozenGame,
		}, nil
	case ContextEntrance:
		return Set{PrimaryMouse: PrimaryMouseEntrance}, nil
	case ContextRestartGame:
		return Set{PrimaryMouse: PrimaryMouseRestartGame}, nil
	case ContextViewportDialog, ContextScreenDialog:
		if choices < 1 || choices > 4 {
			return Set{}, fmt.Errorf("hittest: %s with %d choices", ctx, choices)
		}
		if ctx == ContextViewportDialog {
			return Set{PrimaryMouse: PrimaryMouseViewportDialog[choices-1]}, nil
		}
		return Set{PrimaryMouse: PrimaryMouseScreenDialog[choices-1]}, nil
	}
	return Set{}, fmt.Errorf("hittest: unknown context %d", int(ctx))
}

// WithKeys returns a copy of s whose secondary keyboard table is replaced.
// Used to apply configured movement bindings.
func (s Set) WithKeys(secondary KeyTable) Set {
	if s.SecondaryKeys != nil && secondary != nil {
		s.SecondaryKeys = secondary
	}
	return s
}

// ViewCell indexes the clickable regions of the dungeon view.
type ViewCell int

const (
	ViewCellFrontLeft ViewCell = iota
	ViewCellFrontRight
	ViewCellBackRight
	ViewCellBackLeft
	ViewCellAlcove
	ViewCellDoorButtonOrWallOrnament

	ViewCellCount = 6
)

func (v ViewCell) String() string {
	switch v {
	case ViewCellFrontLeft:
		return "front-left"
	case ViewCellFrontRight:
		return "front-right"
	case ViewCellBackRight:
		return "back-right"
	case ViewCellBackLeft:
		return "back-left"
	case ViewCellAlcove:
		return "alcove"
	case ViewCellDoorButtonOrWallOrnament:
		return "wall-ornament"
	default:
		return "unknown"
	}
}

// ViewOffsetY is subtracted from a screen y to get a dungeon view y.
const ViewOffsetY = 33

// ViewBoxes holds the clickable box of each view cell, in dungeon view
// coordinates. The renderer updates them as it draws; a cell that was not
// drawn holds an empty box.
type ViewBoxes [ViewCellCount]core.Box

// DefaultViewBoxes returns the boxes of a plain view: the four floor piles,
// an alcove niche and the centre of the front wall.
func DefaultViewBoxes() ViewBoxes {
	var vb ViewBoxes
	for i, b := range BoxObjectPiles {
		vb[i] = b.Translate(0, -ViewOffsetY)
	}
	vb[ViewCellAlcove] = core.NewBox(80, 143, 50, 85)
	vb[ViewCellDoorButtonOrWallOrnament] = core.NewBox(80, 143, 30, 88)
	return vb
}

// Clear empties the box of v.
func (vb *ViewBoxes) Clear(v ViewCell) {
	vb[v] = core.Box{X1: 0, X2: -1, Y1: 0, Y2: -1}
}

// Hit reports whether the screen point p falls in the box of v.
func (vb *ViewBoxes) Hit(v ViewCell, p core.Point) bool {
	return vb[v].ContainsXY(p.X, p.Y-ViewOffsetY)
}
