package state

// GameState is the run state of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// TogglePause switches between playing and paused
func (s GameState) TogglePause() GameState {
	if s == StatePaused {
		return StatePlaying
	}
	return StatePaused
}

// Ticking reports whether the world advances in this state
func (s GameState) Ticking() bool {
	return s == StatePlaying
}
