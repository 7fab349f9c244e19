// Package physics implements constant-speed circle motion and the
// circle-vs-point collision kernel shared by every shape in the arena.
package physics

// Direction is one of eight discretized unit directions a circle may travel.
// Y grows upward, so North moves toward the top of the arena.
type Direction int

const (
	DirNone Direction = iota
	North
	East
	South
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// Directions lists every valid direction in code order.
var Directions = []Direction{North, East, South, West, NorthEast, NorthWest, SouthEast, SouthWest}

// Valid reports whether d is one of the eight direction codes.
func (d Direction) Valid() bool {
	return d >= North && d <= SouthWest
}

// String returns the compass abbreviation.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	default:
		return "?"
	}
}

// Delta returns the per-axis sign of motion, each component in {-1, 0, 1}.
// Diagonals move a full step on both axes.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	case NorthEast:
		return 1, 1
	case NorthWest:
		return -1, 1
	case SouthEast:
		return 1, -1
	case SouthWest:
		return -1, -1
	}
	return 0, 0
}

// FlipX mirrors the horizontal component (E<->W, NE<->NW, SE<->SW).
// Purely vertical directions are unchanged.
func (d Direction) FlipX() Direction {
	switch d {
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return NorthWest
	case NorthWest:
		return NorthEast
	case SouthEast:
		return SouthWest
	case SouthWest:
		return SouthEast
	}
	return d
}

// FlipY mirrors the vertical component (N<->S, NE<->SE, NW<->SW).
// Purely horizontal directions are unchanged.
func (d Direction) FlipY() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case NorthEast:
		return SouthEast
	case SouthEast:
		return NorthEast
	case NorthWest:
		return SouthWest
	case SouthWest:
		return NorthWest
	}
	return d
}
