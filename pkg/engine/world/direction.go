package world

import "fmt"

// Direction represents a cardinal direction on the maze grid
type Direction int

// Direction constants
const (
	North Direction = iota
	South
	West
	East
)

// AllDirections returns all valid directions for iteration.
// The order is the sampling priority for held movement keys (up, down, left, right).
func AllDirections() []Direction {
	return []Direction{North, South, West, East}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "up"
	case South:
		return "down"
	case West:
		return "left"
	case East:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText lets snapshots carry directions as their names
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a direction name written by MarshalText
func (d *Direction) UnmarshalText(text []byte) error {
	for _, dir := range AllDirections() {
		if dir.String() == string(text) {
			*d = dir
			return nil
		}
	}
	return fmt.Errorf("unknown direction %q", text)
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= East
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

// Delta returns the x and y offsets for this direction (y grows downwards)
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	default:
		return 0, 0
	}
}
