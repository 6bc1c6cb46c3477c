package dungeon

// Direction is a party or champion facing. North is towards decreasing y.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Per-direction unit steps. Movement goes through these tables rather than
// literal coordinate deltas.
var (
	dirIntoStepCountEast  = [4]int{0, 1, 0, -1}
	dirIntoStepCountNorth = [4]int{-1, 0, 1, 0}
)

// NormalizeModulo4 folds any integer into 0..3.
func NormalizeModulo4(v int) int {
	return v & 3
}

// TurnLeft returns the direction 90 degrees counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return Direction(NormalizeModulo4(int(d) + 3))
}

// TurnRight returns the direction 90 degrees clockwise.
func (d Direction) TurnRight() Direction {
	return Direction(NormalizeModulo4(int(d) + 1))
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction(NormalizeModulo4(int(d) + 2))
}

// StepEast is the x delta of one step in direction d.
func (d Direction) StepEast() int {
	return dirIntoStepCountEast[NormalizeModulo4(int(d))]
}

// StepNorth is the y delta of one step in direction d.
func (d Direction) StepNorth() int {
	return dirIntoStepCountNorth[NormalizeModulo4(int(d))]
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseDirection accepts the compass names returned by String and their
// first letters.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "north", "n", "N":
		return North, true
	case "east", "e", "E":
		return East, true
	case "south", "s", "S":
		return South, true
	case "west", "w", "W":
		return West, true
	}
	return North, false
}

// Ahead returns the square one step from (x, y) in direction d.
func Ahead(x, y int, d Direction) (int, int) {
	return x + d.StepEast(), y + d.StepNorth()
}

// CoordsAfterRelMovement applies a movement expressed relative to facing d:
// forward steps along d, then right steps along d turned right. Negative
// counts move backwards or left.
func CoordsAfterRelMovement(d Direction, forward, right, x, y int) (int, int) {
	x += d.StepEast() * forward
	y += d.StepNorth() * forward
	d = d.TurnRight()
	x += d.StepEast() * right
	y += d.StepNorth() * right
	return x, y
}
