package core

// Virtual screen dimensions all hit-test regions are expressed in.
const (
	VirtualW = 320
	VirtualH = 200
)

// RuntimeConfig contains configuration passed to the engine at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic play
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  25,
		TickRate: 18,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ToVirtual maps a terminal cell to the virtual screen, using the centre of
// the cell so that every virtual pixel row/column is reachable from some cell.
func (c RuntimeConfig) ToVirtual(col, row int) Point {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return NoPoint
	}
	x := (2*col + 1) * VirtualW / (2 * c.ScreenW)
	y := (2*row + 1) * VirtualH / (2 * c.ScreenH)
	return Pt(Clamp(x, 0, VirtualW-1), Clamp(y, 0, VirtualH-1))
}

// ToCell maps a virtual point back to the terminal cell covering it.
func (c RuntimeConfig) ToCell(p Point) (col, row int) {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return 0, 0
	}
	return p.X * c.ScreenW / VirtualW, p.Y * c.ScreenH / VirtualH
}
