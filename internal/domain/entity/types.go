package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Direction is the facing of a moving entity.
// The order matches the row order of the sprite sheets (down, left, right, up).
type Direction int

const (
	DirDown Direction = iota
	DirLeft
	DirRight
	DirUp
)

// Directions lists every facing in sheet-row order
var Directions = [4]Direction{DirDown, DirLeft, DirRight, DirUp}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirDown:
		return DirUp
	case DirUp:
		return DirDown
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Unit returns the unit vector of the direction in screen coordinates (y grows down)
func (d Direction) Unit() (dx, dy float64) {
	switch d {
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	}
	return 0, 0
}

// ParseDirection converts a config name ("down", "left", ...) to a Direction
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return DirDown, false
}

// Axis selects the horizontal or vertical component of a move
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns "x" or "y"
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Key is a logical movement key
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// KeyState is a snapshot of the held movement keys for one tick
type KeyState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// IsHeld reports whether the logical key is held in this snapshot
func (k KeyState) IsHeld(key Key) bool {
	switch key {
	case KeyLeft:
		return k.Left
	case KeyRight:
		return k.Right
	case KeyUp:
		return k.Up
	case KeyDown:
		return k.Down
	}
	return false
}

// Tick carries everything an entity may read during one update
type Tick struct {
	DT   float64 // seconds
	Keys KeyState
}
