package world

// Direction represents a cardinal direction
type Direction int

// Direction constants, in the order exits are enumerated
const (
	West Direction = iota
	East
	North
	South
)

// AllDirections returns all valid directions for iteration.
// The order (west, east, north, south) is the exit order searches rely on.
func AllDirections() []Direction {
	return []Direction{West, East, North, South}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x/y offset for this direction
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{X: 0, Y: -1}
	case East:
		return Point{X: 1, Y: 0}
	case South:
		return Point{X: 0, Y: 1}
	case West:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}
