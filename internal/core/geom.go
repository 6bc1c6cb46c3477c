// Package core provides fundamental types shared by the dungeon core: screen
// geometry, raw device events, runtime configuration and a character screen
// buffer. It has no external dependencies so the simulation stays pure and
// testable.
package core

// Point is a position in virtual screen coordinates (320x200) or, for map
// squares, in map coordinates.
type Point struct {
	X, Y int
}

// NoPoint marks a command that did not originate from the mouse.
var NoPoint = Point{X: -1, Y: -1}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Box is a rectangular screen region with inclusive bounds on both axes.
// A Box with X1 > X2 or Y1 > Y2 contains no point.
type Box struct {
	X1, X2 int // Left and right columns, inclusive
	Y1, Y2 int // Top and bottom rows, inclusive
}

// NewBox creates a box from its inclusive edges, in the x1, x2, y1, y2 order
// the region tables use.
func NewBox(x1, x2, y1, y2 int) Box {
	return Box{X1: x1, X2: x2, Y1: y1, Y2: y2}
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.X1 && p.X <= b.X2 && p.Y >= b.Y1 && p.Y <= b.Y2
}

// ContainsXY is Contains for callers holding bare coordinates.
func (b Box) ContainsXY(x, y int) bool {
	return b.Contains(Point{X: x, Y: y})
}

// Empty reports whether the box contains no point.
func (b Box) Empty() bool {
	return b.X1 > b.X2 || b.Y1 > b.Y2
}

// Width returns the number of columns covered.
func (b Box) Width() int {
	if b.Empty() {
		return 0
	}
	return b.X2 - b.X1 + 1
}

// Height returns the number of rows covered.
func (b Box) Height() int {
	if b.Empty() {
		return 0
	}
	return b.Y2 - b.Y1 + 1
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy int) Box {
	return Box{X1: b.X1 + dx, X2: b.X2 + dx, Y1: b.Y1 + dy, Y2: b.Y2 + dy}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
